package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mj1618/winswitch/internal/config"
	"github.com/mj1618/winswitch/internal/logger"
	"github.com/mj1618/winswitch/internal/output"
	"github.com/mj1618/winswitch/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "winswitch",
	Short: "List open windows and switch between them",
	Long: `winswitch lists the open top-level windows on the desktop, filters them by
title, and brings the chosen one to the foreground. Activation is bounded by a
timeout so a hung window manager never freezes the caller.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, disabled")
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return log.Close()
	}
}

// setup loads configuration, then applies flag overrides on top of it.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := rootCmd.PersistentFlags().GetString("log-level"); lvl != "" {
		c.LogLevel = lvl
	}
	cfg = c

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	opts := []logger.Option{logger.WithLevel(level)}
	switch {
	case cfg.LogFile != "":
		opts = append(opts, logger.WithFile(cfg.LogFile))
	case useConsoleLog(cfg, isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())):
		opts = append(opts, logger.WithConsole())
	}
	l, err := logger.New(opts...)
	if err != nil {
		return err
	}
	log = l

	format, _ := rootCmd.PersistentFlags().GetString("format")
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f
	return nil
}

// useConsoleLog reports whether logs should be human-readable: only when a
// person is watching stderr and nothing is being written to a log file.
func useConsoleLog(c *config.Config, stderrTTY bool) bool {
	return stderrTTY && c.LogFile == ""
}
