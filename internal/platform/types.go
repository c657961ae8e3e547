package platform

import (
	"fmt"

	"github.com/mj1618/winswitch/internal/model"
)

// RawWindow is an unprocessed enumeration result.
type RawWindow struct {
	Handle model.Handle
	Title  string
}

// QueryError means the OS could not be asked for its window list at all.
// It is fatal for the refresh that hit it.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("window query %s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ResolutionError means a window's owning process could not be found,
// usually because the window closed after enumeration.
type ResolutionError struct {
	Handle model.Handle
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve owner of window %s: %v", e.Handle, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ActivationError means the OS refused to activate the window, typically
// because the handle is no longer valid.
type ActivationError struct {
	Handle model.Handle
	Err    error
}

func (e *ActivationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("activate window %s failed", e.Handle)
	}
	return fmt.Sprintf("activate window %s: %v", e.Handle, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }
