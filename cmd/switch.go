package cmd

import (
	"strings"

	"github.com/mj1618/winswitch/internal/output"
	"github.com/mj1618/winswitch/internal/switcher"
	"github.com/spf13/cobra"
)

var switchCmd = &cobra.Command{
	Use:   "switch QUERY",
	Short: "Activate the first window whose title matches QUERY",
	Long: `Switch to a window in one step: list the open windows, keep those whose
title contains QUERY, and activate the first of them.

Examples:
  winswitch switch firefox
  winswitch switch "visual studio" --timeout 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
	addTimeoutFlag(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	sw, done, err := openSwitcher()
	if err != nil {
		return err
	}
	defer done()

	return activateMatch(cmd, sw, strings.Join(args, " "), "switch")
}

func activateMatch(cmd *cobra.Command, sw *switcher.Switcher, query, action string) error {
	snap, err := sw.Refresh()
	if err != nil {
		return err
	}
	w, err := sw.ActivateMatch(commandContext(cmd), snap, query, getTimeoutFlag(cmd))
	if err != nil {
		return err
	}
	return output.Print(output.ActivateResult{OK: true, Action: action, Window: w})
}
