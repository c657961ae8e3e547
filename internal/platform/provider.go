package platform

import (
	"fmt"
	"io"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Name       string
	Enumerator Enumerator
	Resolver   ProcessResolver
	Activator  Activator
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("winswitch is not supported on %s/%s; supported: linux (X11), windows", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11/init.go and internal/platform/win32/init.go.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// Close releases backend resources such as display connections. Backends
// that hold nothing open are skipped.
func (p *Provider) Close() error {
	if p == nil {
		return nil
	}
	seen := make(map[any]bool)
	var firstErr error
	for _, b := range []any{p.Enumerator, p.Resolver, p.Activator} {
		c, ok := b.(io.Closer)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
