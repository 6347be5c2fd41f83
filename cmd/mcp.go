package cmd

import (
	"github.com/spf13/cobra"
)

var (
	mcpProject string

	mcpCmd = &cobra.Command{
		GroupID: groupIntegrations,
		Use:     "mcp",
		Short:   "Manage Model Context Protocol (MCP) configuration",
		Long:    "Commands for installing and managing the MCP server registration used by design tool integrations.",
	}
)

func init() {
	flags := mcpCmd.PersistentFlags()
	flags.StringVar(&mcpProject, "project", ".", "path to the project directory")
	rootCmd.AddCommand(mcpCmd)
}
