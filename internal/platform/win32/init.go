//go:build windows

package win32

import "github.com/mj1618/winswitch/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		backend := New()
		return &platform.Provider{
			Name:       "win32",
			Enumerator: backend,
			Resolver:   backend,
			Activator:  backend,
		}, nil
	}
}
