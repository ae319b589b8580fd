package storage

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
)

// FileKV stores one file per key in a directory. Writes go to a temporary
// file first and are renamed into place, so a crash never leaves a torn value.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed store rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, backendErr("file", "mkdir", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

// Get retrieves a value.
func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, backendErr("file", "get", key, err)
	}
	return string(data), true, nil
}

// Set stores a value.
func (f *FileKV) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return backendErr("file", "set", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return backendErr("file", "set", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return backendErr("file", "set", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return backendErr("file", "set", key, err)
	}
	return nil
}

// Delete removes a value.
func (f *FileKV) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return backendErr("file", "delete", key, err)
}

// Close does nothing for file storage.
func (f *FileKV) Close() error {
	return nil
}

// path maps a key to a file name. Keys are hex-encoded so any key is a
// valid, collision-free file name.
func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, hex.EncodeToString([]byte(key))+".json")
}

var _ KV = (*FileKV)(nil)
