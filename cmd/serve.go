package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/pcremote/internal/server"
	"github.com/mj1618/pcremote/internal/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing every remote command as a tool",
	Long: `Start a Model Context Protocol (MCP) server that exposes each remote
command as a tool (volume_set, smart_tv_mode, ...) plus list_targets.
Tool calls go through the same dispatcher as serial commands.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  pcremote serve
  pcremote serve --transport streamable-http --http-port 8080
  pcremote serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("http-port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "list_targets cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("http-port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	eng, err := newEngine()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		TVMonitor: appConfig.Targets.MonitorIndex,
	}
	srv := server.New(cfg, eng.dispatcher, eng.executor, version.Version, appLogger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Serve(ctx)
}
