package activation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
)

// fakeActivator records activations. Handles in stale fail; handles in block
// wait for the release channel to close.
type fakeActivator struct {
	mu      sync.Mutex
	calls   []model.Handle
	stale   map[model.Handle]bool
	block   map[model.Handle]bool
	release chan struct{}
	started chan model.Handle
	active  atomic.Int32
	maxSeen atomic.Int32
	delay   time.Duration
}

func newFakeActivator() *fakeActivator {
	return &fakeActivator{
		stale:   map[model.Handle]bool{},
		block:   map[model.Handle]bool{},
		release: make(chan struct{}),
		started: make(chan model.Handle, 16),
	}
}

func (f *fakeActivator) Activate(h model.Handle) error {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		m := f.maxSeen.Load()
		if n <= m || f.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, h)
	f.mu.Unlock()
	f.started <- h

	if f.block[h] {
		<-f.release
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.stale[h] {
		return &platform.ActivationError{Handle: h, Err: errors.New("bad window")}
	}
	return nil
}

func (f *fakeActivator) recorded() []model.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Handle(nil), f.calls...)
}

func TestActivate_Success(t *testing.T) {
	act := newFakeActivator()
	svc := NewService(act)
	defer svc.Close()

	ok, err := svc.Activate(context.Background(), 0x2a, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected success")
	}
	if got := act.recorded(); len(got) != 1 || got[0] != 0x2a {
		t.Errorf("calls = %v", got)
	}
}

func TestActivate_StaleHandle(t *testing.T) {
	act := newFakeActivator()
	act.stale[7] = true
	svc := NewService(act)
	defer svc.Close()

	ok, err := svc.Activate(context.Background(), 7, time.Second)
	if ok {
		t.Error("expected failure")
	}
	var ae *platform.ActivationError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActivationError, got %T: %v", err, err)
	}
	if ae.Handle != 7 {
		t.Errorf("handle = %s, want 0x7", ae.Handle)
	}
}

type plainErrActivator struct{}

func (plainErrActivator) Activate(model.Handle) error { return errors.New("refused") }

func TestActivate_PlainErrorWrapped(t *testing.T) {
	svc := NewService(plainErrActivator{})
	defer svc.Close()

	_, err := svc.Activate(context.Background(), 9, time.Second)
	var ae *platform.ActivationError
	if !errors.As(err, &ae) || ae.Handle != 9 {
		t.Fatalf("expected ActivationError for handle 9, got %v", err)
	}
}

func TestActivate_TimeoutBounded(t *testing.T) {
	act := newFakeActivator()
	act.block[1] = true
	defer close(act.release)
	svc := NewService(act)
	defer svc.Close()

	const timeout = 100 * time.Millisecond
	start := time.Now()
	ok, err := svc.Activate(context.Background(), 1, timeout)
	elapsed := time.Since(start)

	if ok {
		t.Error("expected failure on timeout")
	}
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %T: %v", err, err)
	}
	if te.Timeout != timeout || te.Handle != 1 {
		t.Errorf("timeout error = %+v", te)
	}
	if elapsed > timeout+500*time.Millisecond {
		t.Errorf("activate blocked for %s, timeout was %s", elapsed, timeout)
	}
}

func TestActivate_TimedOutQueuedJobSkipped(t *testing.T) {
	act := newFakeActivator()
	act.block[1] = true
	svc := NewService(act)
	defer svc.Close()

	// First activation hangs in the worker.
	go svc.Activate(context.Background(), 1, 50*time.Millisecond)
	<-act.started

	// Second waits in the queue behind it and times out there.
	_, err := svc.Activate(context.Background(), 2, 50*time.Millisecond)
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}

	close(act.release)

	ok, err := svc.Activate(context.Background(), 3, time.Second)
	if err != nil || !ok {
		t.Fatalf("activation after release failed: %v", err)
	}

	got := act.recorded()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("calls = %v, want [0x1 0x3] (cancelled 0x2 skipped)", got)
	}
}

func TestActivate_ParentContextCancelled(t *testing.T) {
	act := newFakeActivator()
	act.block[1] = true
	defer close(act.release)
	svc := NewService(act)
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-act.started
		cancel()
	}()

	_, err := svc.Activate(ctx, 1, 10*time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var te *TimeoutError
	if errors.As(err, &te) {
		t.Error("caller cancellation should not be reported as a timeout")
	}
}

func TestActivate_NoOverlap(t *testing.T) {
	act := newFakeActivator()
	act.delay = 10 * time.Millisecond
	svc := NewService(act)
	defer svc.Close()

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(h model.Handle) {
			defer wg.Done()
			if _, err := svc.Activate(context.Background(), h, 5*time.Second); err != nil {
				t.Errorf("activate %s: %v", h, err)
			}
		}(model.Handle(i))
	}
	wg.Wait()

	if peak := act.maxSeen.Load(); peak != 1 {
		t.Errorf("max concurrent activations = %d, want 1", peak)
	}
	if got := len(act.recorded()); got != 5 {
		t.Errorf("activations = %d, want 5", got)
	}
}

func TestActivate_AfterClose(t *testing.T) {
	svc := NewService(newFakeActivator())
	svc.Close()

	_, err := svc.Activate(context.Background(), 1, time.Second)
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestActivate_InlineRunner(t *testing.T) {
	act := newFakeActivator()
	svc := NewService(act, WithRunner(Inline{}))

	ok, err := svc.Activate(context.Background(), 5, time.Second)
	if err != nil || !ok {
		t.Fatalf("inline activation failed: %v", err)
	}
	if got := act.recorded(); len(got) != 1 || got[0] != 5 {
		t.Errorf("calls = %v", got)
	}
}

func TestTimeoutError_Message(t *testing.T) {
	err := &TimeoutError{Handle: 0x10, Timeout: 10 * time.Second}
	if got, want := err.Error(), "activation of window 0x10 timed out after 10.0 seconds"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestActivate_CloseReleasesWaitingCaller(t *testing.T) {
	act := newFakeActivator()
	act.block[1] = true
	defer close(act.release)
	svc := NewService(act, WithRunner(NewWorker(0)))

	go svc.Activate(context.Background(), 1, 0)
	<-act.started

	result := make(chan error, 1)
	go func() {
		_, err := svc.Activate(context.Background(), 2, 0)
		result <- err
	}()
	time.Sleep(20 * time.Millisecond)

	closed := make(chan struct{})
	go func() {
		svc.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close hung behind a stuck activation")
	}

	select {
	case err := <-result:
		if !errors.Is(err, ErrClosed) {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("waiting activation was not released by Close")
	}
	if got := act.recorded(); len(got) != 1 {
		t.Errorf("only the hung activation should have run, got %v", got)
	}
}
