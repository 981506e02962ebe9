// file: cmd/watch.go
// version: 1.0.0
// guid: 9aac3cd6-51af-4855-a6b7-b87fe67349e3

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	var ops *opList
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Apply operations to JPEG images as they appear in a directory",
		Long: `Watch DIR and its subdirectories. Whenever a JPEG image is created or
changed and has been quiet for the debounce period (watch.debounce), the
operations are applied to it. Images rewritten by the watcher itself are
not edited again.

  iptc-organizer watch -a Byline="Jane Doe" -a CopyrightNotice="(c) Jane Doe" ~/Pictures/incoming`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ops.Operations()
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				return errNoOperations
			}
			e, err := newEditor(config.AppConfig, parsed, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			e.showTable = false

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, args[0], e)
		},
	}
	ops = addOperationFlags(cmd)
	cmd.Flags().Duration("debounce", watcher.DefaultDebounce, "quiet period before a changed image is edited")
	viper.BindPFlag("watch.debounce", cmd.Flags().Lookup("debounce"))
	return cmd
}

// runWatch edits images under dir until ctx is done.
func runWatch(ctx context.Context, dir string, e *editor) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("failed to watch %s: not a directory", dir)
	}

	var w *watcher.Watcher
	w = watcher.New(func(path string) {
		result, err := e.editFile(path)
		if err != nil {
			log.Printf("[ERROR] watch: %v", err)
			return
		}
		if result != nil {
			w.MarkWritten(result.Path, result.Hash)
		}
	}, e.cfg.Watch.Debounce)

	if err := w.Start(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	defer w.Stop()

	log.Printf("[INFO] Watching %s for JPEG images (%d operations)", dir, len(e.ops))
	<-ctx.Done()
	if n := w.Pending(); n > 0 {
		log.Printf("[WARN] Stopped watching %s with %d images not yet edited", dir, n)
		return nil
	}
	log.Printf("[INFO] Stopped watching %s", dir)
	return nil
}
