// Package server exposes the command registry as MCP tools.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/pcremote/internal/dispatch"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	// TVMonitor is reported by list_targets.
	TVMonitor int
}

// Server wraps the MCP server around a dispatcher. Tool calls share the
// dispatcher's lock with any other caller, so they never overlap a command
// arriving over serial.
type Server struct {
	dispatcher *dispatch.Dispatcher
	inspector  Inspector
	cache      *TargetCache
	cfg        Config
	logger     *log.Logger
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with one tool per registered command plus
// list_targets.
func New(cfg Config, d *dispatch.Dispatcher, in Inspector, version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		dispatcher: d,
		inspector:  in,
		cache:      NewTargetCache(cfg.CacheTTL),
		cfg:        cfg,
		logger:     logger,
	}
	s.mcp = mcpserver.NewMCPServer(
		"pcremote",
		version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Serve runs the configured transport until it stops or ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	switch s.cfg.Transport {
	case "stdio":
		s.logger.Info("serving MCP", "transport", "stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Warn("MCP shutdown", "err", err)
			}
		}()
		s.logger.Info("serving MCP", "transport", "streamable-http", "addr", addr)
		err := httpServer.Start(addr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

// ToolName is the MCP tool name for a command.
func ToolName(command string) string {
	return strings.ToLower(command)
}

func (s *Server) registerTools() {
	for _, e := range s.dispatcher.Registry().Entries() {
		opts := []mcp.ToolOption{
			mcp.WithDescription(e.Description + " (" + string(e.Category) + ")"),
		}
		if e.Parameterized {
			opts = append(opts, mcp.WithString("parameter",
				mcp.Required(),
				mcp.Description("Command parameter, sent after the colon"),
			))
		}
		s.mcp.AddTool(mcp.NewTool(ToolName(e.Name), opts...), s.commandHandler(e.Name, e.Parameterized))
	}

	s.mcp.AddTool(
		mcp.NewTool("list_targets",
			mcp.WithDescription("List the browser windows commands would target, in order, and the monitor layout"),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.handleListTargets,
	)
}
