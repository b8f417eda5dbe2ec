package storage

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding indicates the file contents are not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// FileReadError reports a file that could not be loaded as text.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
