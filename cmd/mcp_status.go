package cmd

import (
	"github.com/atelier-dev/cli/internal/mcp/status"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	statusOutput = utils.OutputFlag(true)

	mcpStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show resolved MCP settings and registration state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return status.Run(cmd.Context(), mcpProject, statusOutput.Value, afero.NewOsFs())
		},
	}
)

func init() {
	flags := mcpStatusCmd.Flags()
	flags.Var(&statusOutput, "output", "output format of status variables")
	mcpCmd.AddCommand(mcpStatusCmd)
}
