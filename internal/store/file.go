package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/omegapc/omegacms/internal/apperr"
)

// FS implements Store as a directory of <key>.json files. Writes are atomic
// (tmp file, fsync, rename) so an interrupted write never leaves a truncated
// slot behind.
type FS struct {
	root string
}

// NewFS creates a file-backed store rooted at dir, creating it if needed.
func NewFS(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute store directory, used by the change watcher.
func (f *FS) Root() string {
	return f.root
}

// slotPath maps a key to its file, rejecting keys that would resolve outside
// the store directory.
func (f *FS) slotPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("store: empty key")
	}
	name := filepath.Clean(key) + ".json"
	if name != filepath.Base(name) || strings.Contains(key, "..") {
		return "", fmt.Errorf("store: invalid key %q", key)
	}
	return filepath.Join(f.root, name), nil
}

// Get returns the raw slot contents, or apperr.ErrNotFound.
func (f *FS) Get(key string) ([]byte, error) {
	p, err := f.slotPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, nil
}

// Set atomically replaces the slot contents.
func (f *FS) Set(key string, value []byte) error {
	p, err := f.slotPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".omega-tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (f *FS) Delete(key string) error {
	p, err := f.slotPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file driver.
func (f *FS) Close() error {
	return nil
}
