// Package storage implements the raw key-value persistence layer backing
// the typed store adapter. Values are opaque byte blobs; all JSON
// encoding/decoding happens one layer up.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KV is the byte-level key-value capability the store adapter is built on.
//
// Get returns (nil, nil) when the key is absent. An empty stored value is
// treated as absent as well, never as corruption. Set overwrites any
// previous value. Delete is a no-op for missing keys.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKV persists each key as its own file inside a data directory. It is
// the single-writer local store of the application: no locking across
// processes, last writer wins.
type FileKV struct {
	dir string
}

// NewFileKV opens a file-backed store rooted at dir, creating the
// directory when needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// path maps a namespaced key like "petstore:users" onto a file name.
func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, strings.ReplaceAll(key, ":", ".")+".json")
}

// Get reads the stored value for key. A missing or empty file yields
// (nil, nil).
func (f *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

// Set writes value under key, replacing any previous value.
func (f *FileKV) Set(key string, value []byte) error {
	return os.WriteFile(f.path(key), value, 0o644)
}

// Delete removes the value stored under key, if any.
func (f *FileKV) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
