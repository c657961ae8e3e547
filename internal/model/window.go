package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Handle is an opaque platform window identifier (an X11 window ID or a
// Win32 HWND). It is only valid while the window exists.
type Handle uint64

// String formats the handle in hex, the way window managers print them.
func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

// ParseHandle parses a handle given in decimal or 0x-prefixed hex.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid window handle: empty")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid window handle %q: must be non-zero", s)
	}
	return Handle(v), nil
}

// Window represents one open top-level window in a snapshot.
// Exe is empty when the owning process could not be resolved.
type Window struct {
	Title  string `yaml:"title"         json:"title"`
	Handle Handle `yaml:"handle"        json:"handle"`
	Exe    string `yaml:"exe,omitempty" json:"exe,omitempty"`
}

// HasExe reports whether the executable path of the owning process is known.
func (w Window) HasExe() bool {
	return w.Exe != ""
}
