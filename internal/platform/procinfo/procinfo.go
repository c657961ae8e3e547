// Package procinfo resolves process IDs to executable paths.
package procinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Executable returns the absolute path of the executable backing pid.
// It returns false when the process has exited, access is denied, or the
// process is a protected system process; none of those are errors to callers.
func Executable(pid int) (string, bool) {
	if pid <= 0 {
		return "", false
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", false
	}
	exe, err := p.Exe()
	if err != nil {
		return "", false
	}
	// Linux reports replaced binaries as "/path (deleted)".
	exe = strings.TrimSuffix(exe, " (deleted)")
	if exe == "" {
		return "", false
	}
	return exe, true
}
