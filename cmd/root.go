package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atelier-dev/cli/internal/utils"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	groupProjects     = "projects"
	groupIntegrations = "integrations"
)

var (
	sentryOpts = sentry.ClientOptions{
		Dsn:        utils.SentryDsn,
		Release:    utils.Version,
		ServerName: "<redacted>",
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1.0,
	}

	reportCrash bool

	rootCmd = &cobra.Command{
		Use:     "atelier",
		Short:   "Atelier CLI " + utils.Version,
		Version: utils.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			// Change workdir
			fsys := afero.NewOsFs()
			if err := changeWorkDir(fsys); err != nil {
				return err
			}
			if viper.GetBool("DEBUG") {
				fmt.Fprintln(os.Stderr, cmd.Root().Short)
			} else {
				utils.CmdSuggestion = utils.SuggestDebugFlag
			}
			// Setup sentry last to ignore errors from parsing cli flags
			return sentry.Init(sentryOpts)
		},
		SilenceErrors: true,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.Red(err.Error()))
		if len(utils.CmdSuggestion) > 0 {
			fmt.Fprintln(os.Stderr, utils.CmdSuggestion)
		}
		if reportCrash && len(utils.SentryDsn) > 0 {
			if event := sentry.CaptureException(err); event != nil && sentry.Flush(2*time.Second) {
				fmt.Fprintln(os.Stderr, "Sent crash report:", *event)
			}
		}
		os.Exit(1)
	}
	if utils.CmdSuggestion != utils.SuggestDebugFlag {
		fmt.Fprintln(os.Stderr, utils.CmdSuggestion)
	}
}

func init() {
	cobra.OnInitialize(func() {
		viper.SetEnvPrefix("ATELIER")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		viper.AutomaticEnv()
	})

	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "output debug logs to stderr")
	flags.String("workdir", "", "path to an Atelier project directory")
	flags.BoolVar(&reportCrash, "report-crash", false, "send a crash report for any CLI error")
	cobra.CheckErr(viper.BindPFlags(flags))

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddGroup(&cobra.Group{ID: groupProjects, Title: "Project Management:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupIntegrations, Title: "Integrations:"})
}

func changeWorkDir(fsys afero.Fs) error {
	workdir := viper.GetString("WORKDIR")
	if workdir == "" {
		var err error
		if workdir, err = utils.GetProjectRoot(fsys); err != nil {
			return err
		}
	}
	return os.Chdir(workdir)
}
