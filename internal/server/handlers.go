package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/output"
	"github.com/mj1618/winswitch/internal/switcher"
	"gopkg.in/yaml.v3"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := stringParam(params, "query", "")
	all := boolParam(params, "all", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if boolParam(params, "refresh", false) {
		s.cache.Invalidate()
	}
	snap, err := s.cache.Get(s.switcher.Refresh)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var windows []model.Window
	if all {
		windows = snap.Filter(query)
	} else {
		windows = s.switcher.Visible(snap, query)
	}
	return mcp.NewToolResultText(toText(output.NewListResult(snap, query, windows))), nil
}

func (s *Server) handleActivateWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	handleArg := stringParam(params, "handle", "")
	match := stringParam(params, "match", "")
	timeout := time.Duration(floatParam(params, "timeout", 0) * float64(time.Second))

	if handleArg == "" && match == "" {
		return mcp.NewToolResultError("one of handle or match is required"), nil
	}

	result, errText := s.resolveTarget(handleArg, match)
	if errText != "" {
		return mcp.NewToolResultError(errText), nil
	}

	// Runs outside providerMu; the activation worker already serialises.
	_, err := s.switcher.Activate(ctx, result.Window.Handle, timeout)
	s.cache.Invalidate()
	if err != nil {
		return mcp.NewToolResultError(toText(errorResult(result, err))), nil
	}

	result.OK = true
	return mcp.NewToolResultText(toText(result)), nil
}

// resolveTarget picks the window to activate under the provider lock. A
// non-empty string is the tool error to report instead.
func (s *Server) resolveTarget(handleArg, match string) (output.ActivateResult, string) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result := output.ActivateResult{Action: "activate"}
	if handleArg != "" {
		h, err := model.ParseHandle(handleArg)
		if err != nil {
			return result, err.Error()
		}
		result.Window = model.Window{Handle: h}
		if w, ok := s.cache.Last().Lookup(h); ok {
			result.Window = w
		}
		return result, ""
	}

	snap, err := s.cache.Get(s.switcher.Refresh)
	if err != nil {
		return result, err.Error()
	}
	matches := s.switcher.Visible(snap, match)
	if len(matches) == 0 {
		err := fmt.Errorf("%w %q", switcher.ErrNoMatch, match)
		return result, toText(errorResult(result, err))
	}
	result.Window = matches[0]
	return result, ""
}

type activateError struct {
	output.ActivateResult `yaml:",inline"`
	Error                 string `yaml:"error"`
}

func errorResult(r output.ActivateResult, err error) activateError {
	r.OK = false
	return activateError{ActivateResult: r, Error: err.Error()}
}
