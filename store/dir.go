package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Dir stores each key in its own file, "<key>.json", in a folder.
type Dir struct {
	path string
}

// OpenDir opens the folder path as a store, creating it if needed.
func OpenDir(path string) (*Dir, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("could not create store folder %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the store folder.
func (d *Dir) Path() string { return d.path }

func (d *Dir) filename(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return filepath.Join(d.path, key+".json"), nil
}

// Get reads the file of key.
func (d *Dir) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	filename, err := d.filename(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", filename, err)
	}
	return data, true, nil
}

// Set writes value to a temporary file, then renames it to the file of key,
// so that a failed write never leaves a truncated value behind.
func (d *Dir) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("could not replace %q: %w", filename, err)
	}
	return nil
}

// Close does nothing, files are closed after each operation.
func (d *Dir) Close() error { return nil }

var _ Store = (*Dir)(nil)
