// file: internal/watcher/watcher.go
// version: 3.0.0
// guid: b2c3d4e5-f6a7-8901-bcde-f23456789012

package watcher

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jdfalk/iptc-organizer/internal/fileops"
	"github.com/jdfalk/iptc-organizer/internal/metrics"
)

// jpegExtensions are the file extensions we care about.
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".jpe":  true,
	".jfif": true,
}

// DefaultDebounce is the default debounce period.
const DefaultDebounce = 500 * time.Millisecond

// Callback is invoked with the path of a JPEG once it has been quiet for
// the debounce period.
type Callback func(path string)

// Watcher monitors a directory tree for JPEG changes and invokes a
// callback per file after a debounce period. Files the callback rewrote
// itself are recognised by hash and not reported again.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	rootDir   string
	debounce  time.Duration
	callback  Callback
	stop      chan struct{}
	stopped   chan struct{}
	mu        sync.Mutex
	pending   map[string]*time.Timer
	written   map[string]string // path -> hash of our own last write
	running   bool
}

// New creates a Watcher. Pass 0 for debounce to use DefaultDebounce.
func New(callback Callback, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		callback: callback,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		pending:  make(map[string]*time.Timer),
		written:  make(map[string]string),
	}
}

// Start begins watching rootDir recursively. It is safe to call only once.
func (w *Watcher) Start(rootDir string) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsWatcher = fsw
	w.rootDir = rootDir

	// Walk the tree and add all directories.
	if err := w.addRecursive(rootDir); err != nil {
		fsw.Close()
		return err
	}

	go w.eventLoop()
	return nil
}

// Stop gracefully shuts down the watcher and waits for the event loop to exit.
// Pending callbacks are cancelled.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stop)
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	<-w.stopped

	w.mu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	metrics.SetWatchPending(0)
	w.mu.Unlock()
}

// MarkWritten records that path now holds content with the given hash
// because the callback wrote it. The resulting events are ignored.
func (w *Watcher) MarkWritten(path, hash string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written[filepath.Clean(path)] = hash
}

// Pending returns the number of files waiting for their debounce to end.
func (w *Watcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible dirs
		}
		if d.IsDir() {
			if watchErr := w.fsWatcher.Add(path); watchErr != nil {
				log.Printf("[WARN] watcher: cannot watch %s: %v", path, watchErr)
			}
		}
		return nil
	})
}

func (w *Watcher) eventLoop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ERROR] watcher: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// On Create, if it's a directory, watch it recursively.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addRecursive(event.Name)
			return
		}
	}

	if !IsJPEGFile(event.Name) {
		return
	}
	path := filepath.Clean(event.Name)

	switch {
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.cancel(path)
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		w.schedule(path)
	}
}

func (w *Watcher) cancel(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
		delete(w.pending, path)
	}
	delete(w.written, path)
	metrics.SetWatchPending(len(w.pending))
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}

	w.pending[path] = time.AfterFunc(w.debounce, func() { w.fire(path) })
	metrics.SetWatchPending(len(w.pending))
}

func (w *Watcher) fire(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	metrics.SetWatchPending(len(w.pending))
	expected, ours := w.written[path]
	running := w.running
	w.mu.Unlock()

	if !running {
		return
	}
	if ours {
		if hash, err := fileops.ComputeFileHash(path); err == nil && hash == expected {
			log.Printf("[DEBUG] watcher: skipping own write to %s", path)
			return
		}
	}

	log.Printf("[INFO] watcher: triggering callback for %s", path)
	if w.callback != nil {
		w.callback(path)
	}
}

// IsJPEGFile reports whether name has a JPEG extension. Hidden files, which
// include the temporary files of atomic writes, and backups ending in "~"
// are excluded.
func IsJPEGFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(base))
	return jpegExtensions[ext]
}
