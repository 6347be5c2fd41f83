package cmd

import (
	"github.com/atelier-dev/cli/internal/mcp/remove"
	"github.com/atelier-dev/cli/internal/settings"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	removeScope = utils.EnumFlag{
		Allowed: []string{string(settings.ScopeProject), string(settings.ScopeUser)},
		Value:   string(settings.ScopeProject),
	}
	removeConfirm bool

	mcpRemoveCmd = &cobra.Command{
		Use:   "remove",
		Short: "Remove the MCP server config",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := afero.NewOsFs()
			scope := resolveScope(cmd.Flags(), fsys)
			return remove.Run(cmd.Context(), scope, mcpProject, removeConfirm, fsys)
		},
	}
)

// resolveScope falls back to the persisted install scope when --scope is omitted.
func resolveScope(flagSet *pflag.FlagSet, fsys afero.Fs) settings.Scope {
	if !flagSet.Changed("scope") {
		return settings.NewStore(fsys).Resolve().Scope
	}
	return settings.Scope(removeScope.Value)
}

func init() {
	flags := mcpRemoveCmd.Flags()
	flags.Var(&removeScope, "scope", "scope of the config to remove")
	flags.BoolVarP(&removeConfirm, "yes", "y", false, "answer yes to all prompts")
	mcpCmd.AddCommand(mcpRemoveCmd)
}
