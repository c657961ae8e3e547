// Package switcher wires the window directory and the activation service
// together for the CLI and the MCP server.
package switcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/winswitch/internal/activation"
	"github.com/mj1618/winswitch/internal/config"
	"github.com/mj1618/winswitch/internal/directory"
	"github.com/mj1618/winswitch/internal/logger"
	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
)

// ErrNoMatch is returned when a query matches no listed window.
var ErrNoMatch = errors.New("no window matches")

// Switcher lists windows and activates them.
type Switcher struct {
	builder    *directory.Builder
	activation *activation.Service
	exclude    []string
	timeout    time.Duration
	log        *logger.Logger
}

// New builds a Switcher over provider. Extra activation options (for
// instance a custom runner) are applied after the configured queue depth.
func New(provider *platform.Provider, cfg *config.Config, log *logger.Logger, opts ...activation.Option) *Switcher {
	if log == nil {
		log = logger.Nop()
	}
	actOpts := append([]activation.Option{
		activation.WithRunner(activation.NewWorker(cfg.QueueDepth)),
		activation.WithLogger(log),
	}, opts...)

	return &Switcher{
		builder:    directory.NewBuilder(provider.Enumerator, provider.Resolver, log),
		activation: activation.NewService(provider.Activator, actOpts...),
		exclude:    cfg.ExcludeTitles,
		timeout:    cfg.ActivationTimeout,
		log:        log,
	}
}

// Refresh takes a new snapshot of open windows.
func (s *Switcher) Refresh() (*model.Snapshot, error) {
	return s.builder.Build()
}

// Visible filters snap by query and hides excluded titles.
func (s *Switcher) Visible(snap *model.Snapshot, query string) []model.Window {
	return model.ExcludeTitles(snap.Filter(query), s.exclude)
}

// Activate brings h forward. A non-positive timeout uses the configured one.
func (s *Switcher) Activate(ctx context.Context, h model.Handle, timeout time.Duration) (bool, error) {
	if timeout <= 0 {
		timeout = s.timeout
	}
	ok, err := s.activation.Activate(ctx, h, timeout)
	if err != nil {
		s.log.Error("Failed to activate window", err, "handle", h.String())
		return false, err
	}
	s.log.Info("Activated window", "handle", h.String())
	return ok, nil
}

// ActivateMatch activates the first visible window in snap matching query,
// the same window a list would show at the top.
func (s *Switcher) ActivateMatch(ctx context.Context, snap *model.Snapshot, query string, timeout time.Duration) (model.Window, error) {
	matches := s.Visible(snap, query)
	if len(matches) == 0 {
		return model.Window{}, fmt.Errorf("%w %q", ErrNoMatch, query)
	}
	target := matches[0]
	if _, err := s.Activate(ctx, target.Handle, timeout); err != nil {
		return target, err
	}
	return target, nil
}

// Close stops the activation worker.
func (s *Switcher) Close() error {
	return s.activation.Close()
}
