package scan

import (
	"errors"
	"fmt"
)

// ErrNotText is wrapped by FileReadError when a file looks binary
var ErrNotText = errors.New("file is not text")

// DirectoryAccessError is returned when the root or a service directory
// cannot be listed. It always aborts the audit.
type DirectoryAccessError struct {
	Path string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("cannot access directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// FileReadError is returned when a candidate file cannot be read as text.
// It aborts the audit only in strict mode.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
