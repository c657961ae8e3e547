package activation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when submitting to a runner that has been closed.
var ErrClosed = errors.New("activation worker closed")

// errSkipped is delivered to jobs cancelled before they started.
var errSkipped = errors.New("activation cancelled before it started")

// Job is one queued unit of work. Cancellation is cooperative: a cancelled
// job that has not started is skipped, one that is running completes and its
// result is discarded.
type Job struct {
	run       func() error
	done      chan error
	cancelled atomic.Bool
}

// NewJob wraps fn in a Job.
func NewJob(fn func() error) *Job {
	return &Job{run: fn, done: make(chan error, 1)}
}

// Cancel marks the job as no longer wanted.
func (j *Job) Cancel() { j.cancelled.Store(true) }

// Cancelled reports whether Cancel was called.
func (j *Job) Cancelled() bool { return j.cancelled.Load() }

// Done delivers the job's result exactly once.
func (j *Job) Done() <-chan error { return j.done }

// execute runs the job unless it was cancelled first. It never blocks on
// delivery since done is buffered.
func (j *Job) execute() {
	if j.Cancelled() {
		j.done <- errSkipped
		return
	}
	j.done <- j.run()
}

// Runner executes jobs. Implementations decide where and when.
type Runner interface {
	Submit(ctx context.Context, job *Job) error
	Close() error
}

// Worker runs jobs one at a time, in submission order, on a single goroutine.
type Worker struct {
	jobs chan *Job
	quit chan struct{}
	once sync.Once
}

// NewWorker starts a worker. depth is how many jobs may wait behind the one
// running; Submit blocks once the queue is full.
func NewWorker(depth int) *Worker {
	if depth < 0 {
		depth = 0
	}
	w := &Worker{
		jobs: make(chan *Job, depth),
		quit: make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	for {
		// quit wins over pending jobs once Close has been called.
		select {
		case <-w.quit:
			w.reject()
			return
		default:
		}

		select {
		case job := <-w.jobs:
			job.execute()
		case <-w.quit:
			w.reject()
			return
		}
	}
}

// reject fails every job still waiting in the queue with ErrClosed.
func (w *Worker) reject() {
	for {
		select {
		case job := <-w.jobs:
			job.done <- ErrClosed
		default:
			return
		}
	}
}

func (w *Worker) isClosed() bool {
	select {
	case <-w.quit:
		return true
	default:
		return false
	}
}

// Submit queues job, waiting for queue space until ctx is done or the
// worker is closed.
func (w *Worker) Submit(ctx context.Context, job *Job) error {
	if w.isClosed() {
		return ErrClosed
	}
	select {
	case w.jobs <- job:
	case <-w.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	// A send that raced with Close may land after the loop has already
	// emptied the queue; nobody else would ever pick it up.
	if w.isClosed() {
		w.reject()
	}
	return nil
}

// Close stops accepting jobs and fails those still queued with ErrClosed.
// It does not wait for a running job, since a hung OS call may never return.
func (w *Worker) Close() error {
	w.once.Do(func() {
		close(w.quit)
		w.reject()
	})
	return nil
}

// Inline runs each job synchronously inside Submit. It has no queue and
// cannot enforce timeouts against a job that blocks; tests use it when
// determinism matters more than isolation.
type Inline struct{}

// Submit runs job immediately on the caller's goroutine.
func (Inline) Submit(ctx context.Context, job *Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	job.execute()
	return nil
}

// Close is a no-op.
func (Inline) Close() error { return nil }
