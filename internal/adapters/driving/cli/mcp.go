package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textlens-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  textlens mcp serve

  # HTTP mode
  textlens mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Analysis: analysisService,
		Document: documentService,
		Search:   searchService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// Long-running server: pick up settings edits without a restart.
	if settingsStore != nil {
		go func() {
			err := settingsStore.Watch(cmd.Context(), func(s domain.Settings) {
				logger.SetVerbose(s.Verbose)
				if analysisImpl != nil {
					analysisImpl.SetKeywordLimit(s.KeywordLimit)
				}
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("settings watch stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
