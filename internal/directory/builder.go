// Package directory builds window snapshots from a platform backend.
package directory

import (
	"errors"
	"time"

	"github.com/mj1618/winswitch/internal/logger"
	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
)

// Builder assembles snapshots from an enumerator and a process resolver.
// Builds run synchronously on the caller's goroutine: they are read-only
// local queries that finish quickly.
type Builder struct {
	enum     platform.Enumerator
	resolver platform.ProcessResolver
	log      *logger.Logger
	now      func() time.Time
}

// NewBuilder returns a Builder. A nil log discards diagnostics.
func NewBuilder(enum platform.Enumerator, resolver platform.ProcessResolver, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{enum: enum, resolver: resolver, log: log, now: time.Now}
}

// Build enumerates windows and resolves each one's executable. Only an
// enumeration failure aborts the build; per-window resolution failures leave
// that record without an executable and are counted in Snapshot.Degraded.
// Untitled windows are kept.
func (b *Builder) Build() (*model.Snapshot, error) {
	raws, err := b.enum.Enumerate()
	if err != nil {
		var qe *platform.QueryError
		if !errors.As(err, &qe) {
			err = &platform.QueryError{Op: "enumerate", Err: err}
		}
		b.log.Error("Window enumeration failed", err)
		return nil, err
	}

	windows := make([]model.Window, 0, len(raws))
	for _, raw := range raws {
		windows = append(windows, model.Window{
			Title:  raw.Title,
			Handle: raw.Handle,
			Exe:    b.resolveExe(raw.Handle),
		})
	}

	snap := model.NewSnapshot(b.now().Unix(), windows)
	if snap.Degraded > 0 {
		b.log.Info("Window snapshot built with unresolved owners", "windows", snap.Len(), "degraded", snap.Degraded)
	} else {
		b.log.Debug("Window snapshot built", "windows", snap.Len())
	}
	return snap, nil
}

func (b *Builder) resolveExe(h model.Handle) string {
	pid, err := b.resolver.WindowPID(h)
	if err != nil {
		b.log.Debug("Window owner unresolved", "handle", h.String(), "reason", err.Error())
		return ""
	}
	exe, ok := b.resolver.Executable(pid)
	if !ok {
		b.log.Debug("Executable unresolved", "handle", h.String(), "pid", pid)
		return ""
	}
	return exe
}
