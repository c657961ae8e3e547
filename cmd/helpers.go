package cmd

import (
	"context"
	"time"

	"github.com/mj1618/winswitch/internal/activation"
	"github.com/mj1618/winswitch/internal/config"
	"github.com/mj1618/winswitch/internal/platform"
	"github.com/mj1618/winswitch/internal/switcher"
	"github.com/spf13/cobra"
)

// newProvider is swapped out in tests.
var newProvider = platform.NewProvider

// activationOptions are appended to the switcher's defaults; tests use it
// to run activations inline.
var activationOptions []activation.Option

// openSwitcher connects to the platform backend. The returned func releases
// both the activation worker and the backend connection.
func openSwitcher() (*switcher.Switcher, func(), error) {
	provider, err := newProvider()
	if err != nil {
		return nil, nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	sw := switcher.New(provider, cfg, log, activationOptions...)
	return sw, func() {
		sw.Close()
		provider.Close()
	}, nil
}

// addTimeoutFlag registers --timeout in seconds; 0 means the configured value.
func addTimeoutFlag(cmd *cobra.Command) {
	cmd.Flags().Float64("timeout", 0, "Seconds to wait for activation (0 = activation_timeout from config)")
}

func getTimeoutFlag(cmd *cobra.Command) time.Duration {
	secs, _ := cmd.Flags().GetFloat64("timeout")
	return time.Duration(secs * float64(time.Second))
}

// commandContext returns the command's context, or Background when the
// command was invoked without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
