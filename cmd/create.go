package cmd

import (
	"fmt"

	"github.com/atelier-dev/cli/internal/create"
	"github.com/atelier-dev/cli/internal/notify"
	"github.com/atelier-dev/cli/internal/settings"
	"github.com/atelier-dev/cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	createCmd = &cobra.Command{
		GroupID: groupProjects,
		Use:     "create <name>",
		Short:   "Create a new project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := afero.NewOsFs()
			store := settings.NewStore(fsys)
			reporter := notify.NewReporter(store.EventsURL())
			defer reporter.Flush()
			if err := create.Run(cmd.Context(), args[0], store, reporter, fsys); err != nil {
				return err
			}
			fmt.Println("Finished " + utils.Aqua("atelier create") + ".")
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(createCmd)
}
