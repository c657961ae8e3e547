package cmd

import (
	"time"

	"github.com/mj1618/winswitch/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing winswitch tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the list_windows and
activate_window tools. Defaults come from the server section of the config.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  winswitch serve
  winswitch serve --transport streamable-http --port 8080
  winswitch serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", -1, "Window snapshot cache TTL in milliseconds (0 to disable)")
}

// serverConfig merges serve flags over the loaded config.
func serverConfig(cmd *cobra.Command) server.Config {
	sc := server.Config{
		Transport: cfg.Server.Transport,
		Port:      cfg.Server.Port,
		CacheTTL:  cfg.Server.CacheTTL,
	}
	if cmd.Flags().Changed("transport") {
		sc.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("port") {
		sc.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("cache-ttl") {
		ms, _ := cmd.Flags().GetInt("cache-ttl")
		sc.CacheTTL = time.Duration(ms) * time.Millisecond
	}
	return sc
}

func runServe(cmd *cobra.Command, args []string) error {
	sw, done, err := openSwitcher()
	if err != nil {
		return err
	}
	defer done()

	sc := serverConfig(cmd)
	return server.New(sw, sc, log).Serve(sc)
}
