package history

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no mission is stored for a day.
	ErrNotFound = errors.New("mission not found")

	// ErrInvalidChild is returned for child ids that are unsafe as
	// directory names.
	ErrInvalidChild = errors.New("invalid child id")
)

// StorageError reports a failed read or write of a mission file.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("mission store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
