package platform

import "github.com/mj1618/winswitch/internal/model"

// Enumerator lists the top-level windows known to the OS.
type Enumerator interface {
	// Enumerate returns one entry per top-level window visible to the calling
	// process, in OS order. Untitled windows are included. A failure to
	// issue the query is reported as a *QueryError.
	Enumerate() ([]RawWindow, error)
}

// ProcessResolver maps windows to their owning processes.
type ProcessResolver interface {
	// WindowPID returns the process ID owning the window. A stale handle or
	// a window without an owner is reported as a *ResolutionError.
	WindowPID(h model.Handle) (int, error)

	// Executable returns the absolute executable path of the process, or
	// false when it cannot be determined (exited, access denied, protected).
	Executable(pid int) (string, bool)
}

// Activator brings windows to the foreground.
type Activator interface {
	// Activate requests that the window be raised and given input focus.
	// The call may block for as long as the OS or target process takes.
	Activate(h model.Handle) error
}
