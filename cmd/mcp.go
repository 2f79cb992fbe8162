package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/adapters/mcp"
	"github.com/xvierd/vessel-cli/internal/theme"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server runs a headless countdown and provides tools to drive it, change
durations and render scenes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "🚀 Starting MCP server...")
		fmt.Fprintln(errOut, "   The server will communicate via stdio")
		fmt.Fprintln(errOut, "   Press Ctrl+C to stop")

		ctx := setupSignalHandler()

		prefs, err := app.prefs.Load(ctx)
		if err != nil {
			app.log.Warn("failed to load preferences, using defaults", "error", err)
		}

		svc := newTimerService(ctx, prefs.Durations)
		defer svc.Close()

		// Create and start the MCP server
		server := mcp.NewServer(svc, app.prefs, theme.ID(prefs.Theme), app.log)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
