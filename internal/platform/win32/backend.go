//go:build windows

package win32

import (
	"errors"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
	"github.com/mj1618/winswitch/internal/platform/procinfo"
)

const swRestore = 9

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procShowWindow          = user32.NewProc("ShowWindow")
	procIsIconic            = user32.NewProc("IsIconic")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procGetWindowTextLength = user32.NewProc("GetWindowTextLengthW")
)

var errStaleHandle = errors.New("window no longer exists")

// Callbacks created by windows.NewCallback are never freed, so a single one
// is shared; enumMu guards the slice it appends to.
var (
	enumMu       sync.Mutex
	enumResult   []platform.RawWindow
	enumCallback = windows.NewCallback(enumProc)
)

func enumProc(hwnd windows.HWND, _ uintptr) uintptr {
	if windows.IsWindowVisible(hwnd) {
		enumResult = append(enumResult, platform.RawWindow{
			Handle: model.Handle(hwnd),
			Title:  windowText(hwnd),
		})
	}
	return 1 // continue enumeration
}

// windowText reads the title through GetWindowTextW, sized by
// GetWindowTextLengthW. Untitled or vanished windows yield "".
func windowText(hwnd windows.HWND) string {
	n, _, _ := procGetWindowTextLength.Call(uintptr(hwnd))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	copied, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if copied == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:copied])
}

// Backend implements the platform interfaces on top of user32.
type Backend struct{}

// New returns a Win32 backend.
func New() *Backend {
	return &Backend{}
}

// Enumerate lists top-level windows in Z order. Windows that are not
// IsWindowVisible (message-only, tool and hidden helper windows) are left
// out; everything else, untitled ones included, is returned.
func (b *Backend) Enumerate() ([]platform.RawWindow, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumResult = nil
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		return nil, &platform.QueryError{Op: "EnumWindows", Err: err}
	}
	result := enumResult
	enumResult = nil
	return result, nil
}

// WindowPID returns the process that created the window.
func (b *Backend) WindowPID(h model.Handle) (int, error) {
	hwnd := windows.HWND(h)
	if !windows.IsWindow(hwnd) {
		return 0, &platform.ResolutionError{Handle: h, Err: errStaleHandle}
	}
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
		return 0, &platform.ResolutionError{Handle: h, Err: err}
	}
	if pid == 0 {
		return 0, &platform.ResolutionError{Handle: h, Err: errStaleHandle}
	}
	return int(pid), nil
}

// Executable resolves pid through the process table.
func (b *Backend) Executable(pid int) (string, bool) {
	return procinfo.Executable(pid)
}

// Activate restores a minimised window and makes it the foreground window.
func (b *Backend) Activate(h model.Handle) error {
	hwnd := windows.HWND(h)
	if !windows.IsWindow(hwnd) {
		return &platform.ActivationError{Handle: h, Err: errStaleHandle}
	}

	if iconic, _, _ := procIsIconic.Call(uintptr(hwnd)); iconic != 0 {
		procShowWindow.Call(uintptr(hwnd), swRestore)
	}

	if ok, _, err := procSetForegroundWindow.Call(uintptr(hwnd)); ok == 0 {
		if errors.Is(err, windows.ERROR_SUCCESS) {
			err = nil
		}
		return &platform.ActivationError{Handle: h, Err: err}
	}
	return nil
}
