// Package activation brings windows to the foreground without letting a hung
// window or window manager block the caller.
package activation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/winswitch/internal/logger"
	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
)

// TimeoutError is returned when an activation does not finish in time. The
// underlying OS call is not interrupted and may still complete later.
type TimeoutError struct {
	Handle  model.Handle
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("activation of window %s timed out after %.1f seconds", e.Handle, e.Timeout.Seconds())
}

// Service serialises activation requests through a single Runner so at most
// one activation is in flight, in submission order.
type Service struct {
	activator platform.Activator
	runner    Runner
	log       *logger.Logger
}

type Option func(*Service)

// WithRunner replaces the default single worker.
func WithRunner(r Runner) Option {
	return func(s *Service) { s.runner = r }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service backed by a single worker with a queue depth
// of one, unless WithRunner is given.
func NewService(activator platform.Activator, opts ...Option) *Service {
	s := &Service{activator: activator}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = NewWorker(1)
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	return s
}

// Activate asks the OS to bring the window forward and waits up to timeout
// for the request to finish. It returns true on success. Failures are:
//   - *TimeoutError when timeout elapses first (the request is cancelled
//     best-effort);
//   - *platform.ActivationError when the OS rejects the handle;
//   - ctx.Err() when ctx ends first;
//   - ErrClosed after Close.
//
// A non-positive timeout waits on ctx alone.
func (s *Service) Activate(ctx context.Context, h model.Handle, timeout time.Duration) (bool, error) {
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	job := NewJob(func() error { return s.activator.Activate(h) })

	if err := s.runner.Submit(waitCtx, job); err != nil {
		job.Cancel()
		return false, s.stopped(ctx, h, timeout, err)
	}

	select {
	case err := <-job.Done():
		if errors.Is(err, ErrClosed) {
			return false, err
		}
		if err != nil {
			var ae *platform.ActivationError
			if !errors.As(err, &ae) {
				err = &platform.ActivationError{Handle: h, Err: err}
			}
			s.log.Debug("Window activation failed", "handle", h.String(), "reason", err.Error())
			return false, err
		}
		s.log.Debug("Window activated", "handle", h.String())
		return true, nil
	case <-waitCtx.Done():
		job.Cancel()
		return false, s.stopped(ctx, h, timeout, waitCtx.Err())
	}
}

// stopped maps a wait that ended early to the error the caller should see.
func (s *Service) stopped(parent context.Context, h model.Handle, timeout time.Duration, err error) error {
	if parent.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		s.log.Warn("Window activation timed out", "handle", h.String(), "timeout", timeout.String())
		return &TimeoutError{Handle: h, Timeout: timeout}
	}
	return err
}

// Close stops the runner. Queued activations fail with ErrClosed; a running
// one is left to finish on its own.
func (s *Service) Close() error {
	return s.runner.Close()
}
