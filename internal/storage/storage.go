package storage

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"unicode/utf8"
)

// Reader loads the whole content of a named file as text.
type Reader interface {
	ReadText(path string) (string, error)
}

// FileStorage reads files from the local file system.
type FileStorage struct{}

// NewFileStorage returns a Reader backed by the local file system.
func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

// ReadText reads path in full and validates that it is UTF-8.
func (s *FileStorage) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: unwrapPathError(err)}
	}
	return decode(path, data)
}

// MemoryStorage keeps file contents in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryStorage initialises an empty storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		files: make(map[string][]byte),
	}
}

// Put stores a copy of data under path, replacing any previous content.
func (s *MemoryStorage) Put(path string, data []byte) {
	clone := make([]byte, len(data))
	copy(clone, data)

	s.mu.Lock()
	s.files[path] = clone
	s.mu.Unlock()
}

// ReadText returns the content stored under path.
func (s *MemoryStorage) ReadText(path string) (string, error) {
	s.mu.RLock()
	data, ok := s.files[path]
	s.mu.RUnlock()

	if !ok {
		return "", &FileReadError{Path: path, Err: fs.ErrNotExist}
	}
	return decode(path, data)
}

func decode(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &FileReadError{Path: path, Err: ErrInvalidEncoding}
	}
	return string(data), nil
}

// unwrapPathError drops the *fs.PathError layer since FileReadError already
// carries the path.
func unwrapPathError(err error) error {
	if pathErr, ok := err.(*fs.PathError); ok {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}
