package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/Midas1080/ukato/internal/logger"
	ukatomcp "github.com/Midas1080/ukato/internal/mcp"
	"github.com/Midas1080/ukato/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run ukato as a Model Context Protocol (MCP) server over stdio.

This exposes the notes directory as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "ukato": {
        "command": "ukato",
        "args": ["serve"]
      }
    }
  }

Available tools: list_notes, list_templates, recent_note, read_note, create_note`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the protocol, so errors go to stderr only
			printer := output.NewPrinter(cmd.ErrOrStderr(), false, false)
			cfg, err := loadConfig(printer)
			if err != nil {
				return err
			}
			logger.L().Info("mcp server starting", "directory", cfg.Directory)
			server := ukatomcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
