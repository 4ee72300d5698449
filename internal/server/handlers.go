package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/pcremote/internal/protocol"
	"gopkg.in/yaml.v3"
)

// stringParam extracts a string argument, falling back to def.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key]; ok {
		switch t := v.(type) {
		case string:
			return t
		case float64:
			return fmt.Sprintf("%g", t)
		}
	}
	return def
}

// commandHandler dispatches the command exactly as if its line had arrived
// over serial. ERROR lines become tool errors.
func (s *Server) commandHandler(name string, parameterized bool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := name
		if parameterized {
			line += ":" + stringParam(request.GetArguments(), "parameter", "")
		}

		resp := s.dispatcher.Handle(ctx, line)
		s.cache.Invalidate()

		if protocol.IsError(resp) {
			return mcp.NewToolResultError(resp), nil
		}
		return mcp.NewToolResultText(resp), nil
	}
}

func (s *Server) handleListTargets(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.cache.Snapshot(ctx, s.inspector, s.cfg.TVMonitor)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := yaml.Marshal(snap)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
