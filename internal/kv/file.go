package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores each key as <Dir>/<key>.json.
type File struct {
	Dir string
}

var _ Backend = (*File)(nil)

func NewFile(dir string) *File {
	return &File{Dir: dir}
}

func (f *File) Name() string { return "file" }

func (f *File) Path(key string) string {
	return filepath.Join(f.Dir, sanitizeKey(key)+".json")
}

func (f *File) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes through a temp file and rename so readers never see a partial blob.
func (f *File) Set(key, value string) error {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", f.Dir, err)
	}
	tmp, err := os.CreateTemp(f.Dir, "."+sanitizeKey(key)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path(key)); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }

func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, key)
}
