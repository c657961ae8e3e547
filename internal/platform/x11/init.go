//go:build linux || freebsd || openbsd || netbsd

package x11

import (
	"os"

	"github.com/mj1618/winswitch/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		client, err := Dial(os.Getenv("DISPLAY"))
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Name:       "x11",
			Enumerator: client,
			Resolver:   client,
			Activator:  client,
		}, nil
	}
}
