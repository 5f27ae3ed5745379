package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhbw-labs/academic-assistant/internal/adapters/driving/mcp"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
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

By default, the server communicates over stdio using JSON-RPC. Use --port
(or server.port in the config file) to serve streamable HTTP instead.

Examples:
  # Stdio mode (default)
  academic-assistant mcp serve

  # HTTP mode
  academic-assistant mcp serve --port 8080

Host configuration:
  {
    "mcpServers": {
      "dhbw": {
        "command": "/path/to/academic-assistant",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port := settings.Server.Port
	if cmd.Flags().Changed("port") {
		var err error
		if port, err = cmd.Flags().GetInt("port"); err != nil {
			return fmt.Errorf("getting port flag: %w", err)
		}
	}

	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	logger.Section(mcp.Name + " " + mcp.Version)
	stats := queryService.Stats(cmd.Context())
	logger.Debug("dataset: %d students, %d professors, %d grades, %d lectures",
		stats.Students, stats.Professors, stats.Grades, stats.Lectures)

	ports := &mcp.Ports{
		Query:    queryService,
		Resource: resourceService,
	}

	server, err := mcp.NewServer(cmd.Context(), ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		// stdout stays clean for stdio mode; the HTTP banner goes to stderr.
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
