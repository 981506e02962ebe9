// file: internal/fileops/safe_operations.go
// version: 2.0.0
// guid: f99d0781-8472-4afd-a447-35349ef4dc19

package fileops

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrChecksumMismatch is returned when a written file does not hash to
// the bytes that were meant to be written.
var ErrChecksumMismatch = errors.New("checksum mismatch: write failed integrity check")

// OperationConfig configures how a rewritten image replaces the original
type OperationConfig struct {
	// Backup keeps a copy of the previous file contents
	Backup bool
	// BackupDir stores timestamped backups; empty means a "file~" sibling
	BackupDir string
	// VerifyChecksums re-reads the written file and compares SHA256 hashes
	VerifyChecksums bool
	// MaxBackups limits the number of timestamped backups kept per file
	MaxBackups int
}

// DefaultConfig returns the default safe write configuration
func DefaultConfig() OperationConfig {
	return OperationConfig{
		Backup:          false,
		BackupDir:       "",
		VerifyChecksums: true,
		MaxBackups:      5,
	}
}

// WriteResult describes a completed write
type WriteResult struct {
	Path       string
	BackupPath string
	Hash       string
}

// WriteFile replaces path with data. The data goes to a temporary file in
// the same directory which is then renamed over path, so readers never
// see a partial image. Permissions of an existing file are kept.
func WriteFile(path string, data []byte, config OperationConfig) (*WriteResult, error) {
	result := &WriteResult{Path: path}

	mode := os.FileMode(0644)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
		if config.Backup {
			backupPath, err := backupFile(path, config)
			if err != nil {
				return nil, fmt.Errorf("failed to back up %s: %w", path, err)
			}
			result.BackupPath = backupPath
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), ulid.Make().String()))
	if err := writeSynced(tmpPath, data, mode); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to replace %s: %w", path, err)
	}

	want := HashBytes(data)
	result.Hash = want
	if config.VerifyChecksums {
		ok, err := VerifyFileIntegrity(path, want)
		if err != nil {
			return nil, fmt.Errorf("failed to verify %s: %w", path, err)
		}
		if !ok {
			if result.BackupPath != "" {
				if rbErr := result.Rollback(); rbErr != nil {
					log.Printf("[ERROR] rollback of %s failed: %v", path, rbErr)
				}
			}
			return nil, fmt.Errorf("%s: %w", path, ErrChecksumMismatch)
		}
	}
	return result, nil
}

// Rollback restores the file from the backup taken by WriteFile
func (r *WriteResult) Rollback() error {
	if r.BackupPath == "" {
		return fmt.Errorf("no backup recorded for %s", r.Path)
	}
	if err := copyFile(r.BackupPath, r.Path); err != nil {
		return fmt.Errorf("failed to restore from backup: %w", err)
	}
	return nil
}

// backupFile copies path to its backup location and returns that location
func backupFile(path string, config OperationConfig) (string, error) {
	if config.BackupDir == "" {
		backupPath := path + "~"
		return backupPath, copyFile(path, backupPath)
	}

	backupDir := config.BackupDir
	if !filepath.IsAbs(backupDir) {
		// Relative to the directory of the file being rewritten
		backupDir = filepath.Join(filepath.Dir(path), backupDir)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000000000")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s.%s.backup", filepath.Base(path), timestamp))
	if err := copyFile(path, backupPath); err != nil {
		return "", err
	}
	if err := cleanupOldBackups(backupDir, filepath.Base(path), config.MaxBackups); err != nil {
		// Non-fatal
		log.Printf("[WARN] failed to clean up old backups of %s: %v", path, err)
	}
	return backupPath, nil
}

// cleanupOldBackups removes the oldest backups beyond the limit
func cleanupOldBackups(backupDir, baseName string, maxBackups int) error {
	if maxBackups <= 0 {
		return nil // No limit
	}

	matches, err := filepath.Glob(filepath.Join(backupDir, fmt.Sprintf("%s.*.backup", baseName)))
	if err != nil {
		return err
	}
	if len(matches) <= maxBackups {
		return nil
	}

	// Timestamps sort lexically
	sort.Strings(matches)
	for _, m := range matches[:len(matches)-maxBackups] {
		if err := os.Remove(m); err != nil {
			log.Printf("[WARN] failed to remove old backup %s: %v", m, err)
		}
	}
	return nil
}

// Helper functions

func writeSynced(path string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// copyFile copies a file from src to dst, keeping its permissions
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, sourceInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
