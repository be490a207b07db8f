// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/rigbook/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to interact with your rig and training data
through a standardized protocol. The server communicates via stdin/stdout.

CLIENT CONFIGURATION:

  Add this to your MCP client config:

  {
    "mcpServers": {
      "rigbook": {
        "command": "rigbook",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_boat        Add a boat, optionally with seeded defaults
  list_boats      List all boats
  rig_draft       Preview the carried-forward values for a new log
  save_rig_log    Save a rig log with optional overrides
  safety_score    Get a boat's equipment safety score
  rig_stats       Statistics for one rig parameter
  list_checklist  Checklist items grouped by category
  check_item      Mark a checklist item done or not done
  log_session     Record a training session
  list_sessions   List sessions including shared ones

AVAILABLE RESOURCES:

  rigbook://fleet     All boats with safety scores
  rigbook://today     Today's training sessions
  rigbook://summary   Latest rig state plus recent sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
