package cmd

import (
	"fmt"
	"os"

	"github.com/atelier-dev/cli/internal/mcp/install"
	"github.com/atelier-dev/cli/internal/project"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	mcpInstallCmd = &cobra.Command{
		Use:   "install",
		Short: "Install the MCP server config for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := afero.NewOsFs()
			proj, err := project.Load(mcpProject, fsys)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					utils.CmdSuggestion = fmt.Sprintf("Run %s to create a new project.", utils.Aqua("atelier create"))
					return errors.Errorf("Cannot find %s in %s", utils.Bold(utils.ManifestPath), utils.Bold(mcpProject))
				}
				return err
			}
			result := install.InstallForProject(cmd.Context(), mcpProject, proj, fsys)
			if result.Err != nil {
				return result.Err
			}
			if !result.Installed {
				fmt.Fprintln(os.Stderr, "MCP install is disabled in your Atelier settings.")
				return nil
			}
			fmt.Println("Finished " + utils.Aqua("atelier mcp install") + ".")
			return nil
		},
	}
)

func init() {
	mcpCmd.AddCommand(mcpInstallCmd)
}
