package cmd

import (
	"fmt"

	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/output"
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Bring a window to the foreground",
	Long: `Activate a window by handle (as printed by list) or by the first window
whose title contains --match. Fails if the window does not respond before
the timeout.`,
	RunE: runActivate,
}

func init() {
	rootCmd.AddCommand(activateCmd)
	activateCmd.Flags().String("handle", "", "Window handle, decimal or 0x hex")
	activateCmd.Flags().String("match", "", "Activate the first window whose title contains this text")
	addTimeoutFlag(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	handleArg, _ := cmd.Flags().GetString("handle")
	match, _ := cmd.Flags().GetString("match")

	if (handleArg == "") == (match == "") {
		return fmt.Errorf("exactly one of --handle or --match is required")
	}

	var h model.Handle
	if handleArg != "" {
		var err error
		if h, err = model.ParseHandle(handleArg); err != nil {
			return err
		}
	}

	sw, done, err := openSwitcher()
	if err != nil {
		return err
	}
	defer done()

	if match != "" {
		return activateMatch(cmd, sw, match, "activate")
	}

	result := output.ActivateResult{Action: "activate", Window: model.Window{Handle: h}}
	if snap, err := sw.Refresh(); err == nil {
		if w, ok := snap.Lookup(h); ok {
			result.Window = w
		}
	}
	if _, err := sw.Activate(commandContext(cmd), h, getTimeoutFlag(cmd)); err != nil {
		return err
	}
	result.OK = true
	return output.Print(result)
}
