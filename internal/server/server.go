// Package server exposes window listing and activation as MCP tools.
package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/winswitch/internal/logger"
	"github.com/mj1618/winswitch/internal/switcher"
	"github.com/mj1618/winswitch/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the switcher and a snapshot cache.
type Server struct {
	switcher   *switcher.Switcher
	cache      *SnapshotCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
	log        *logger.Logger
}

// New creates an MCP server with the winswitch tools registered.
func New(sw *switcher.Switcher, cfg Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		switcher: sw,
		cache:    NewSnapshotCache(cfg.CacheTTL),
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer("winswitch", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.log.Info("Starting MCP server", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open top-level windows with their handle and executable. Optionally filter by a case-insensitive title substring."),
			mcp.WithString("query", mcp.Description("Title substring to filter by")),
			mcp.WithBoolean("all", mcp.Description("Include windows hidden by exclude_titles")),
			mcp.WithBoolean("refresh", mcp.Description("Ignore the cached snapshot")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("activate_window",
			mcp.WithDescription("Bring a window to the foreground, by handle or by the first window whose title matches."),
			mcp.WithString("handle", mcp.Description("Window handle, decimal or 0x hex")),
			mcp.WithString("match", mcp.Description("Activate the first window whose title contains this text")),
			mcp.WithNumber("timeout", mcp.Description("Seconds to wait for activation (default from config)")),
		),
		s.handleActivateWindow,
	)
}
