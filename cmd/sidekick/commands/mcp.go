// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to run inference and manage rules via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/sidekick/internal/mcp"
)

// NewMCPCmd creates the MCP command.
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs sidekick as an MCP (Model Context Protocol) server, exposing
inference, rule management, and suggestion mining over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  sidekick mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "sidekick": {
  #       "command": "sidekick",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP wires the core and serves MCP over stdio.
func runMCP(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	defer c.Close()

	server := mcpserver.NewMCPServer(
		"Sidekick Assistant Core",
		"0.1.0",
	)

	mcp.RegisterTools(server, c.kb, c.store, c.engine, c.suggester, c.collector)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		c.logger.Info("sidekick MCP server starting on stdio")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			c.logger.Info("shutdown signal received")
		}
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	}
}
