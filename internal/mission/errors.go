package mission

import "fmt"

// GenerationError wraps a failed model call for one child.
type GenerationError struct {
	ChildID string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("mission generation failed for %s: %v", e.ChildID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
