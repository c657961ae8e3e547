package cmd

import (
	"strings"

	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List open windows",
	Long: `List open top-level windows with their title, handle and executable.
An optional query keeps only windows whose title contains it, ignoring case.
Windows without a title are never listed.`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "Include windows hidden by exclude_titles")
	listCmd.Flags().Bool("titles", false, "Print titles only")
	listCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	titles, _ := cmd.Flags().GetBool("titles")
	pretty, _ := cmd.Flags().GetBool("pretty")
	output.PrettyOutput = pretty
	query := strings.Join(args, " ")

	sw, done, err := openSwitcher()
	if err != nil {
		return err
	}
	defer done()

	snap, err := sw.Refresh()
	if err != nil {
		return err
	}

	var windows []model.Window
	if all {
		windows = snap.Filter(query)
	} else {
		windows = sw.Visible(snap, query)
	}

	if titles {
		return output.Print(model.NewSnapshot(snap.TS, windows).Titles())
	}
	return output.Print(output.NewListResult(snap, query, windows))
}
