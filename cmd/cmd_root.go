package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"

	"github.com/zbiljic/gitcz/internal/buildinfo"
	"github.com/zbiljic/gitcz/internal/config"
	"github.com/zbiljic/gitcz/internal/log"
	"github.com/zbiljic/gitcz/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "gitcz"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Manage commit types and prompts for conventional commit wizards",
	Long: `Inspect, initialise and validate the commit type configuration
(types, scopes, questions and subject length bounds) read by commit
message wizards and linters.`,
	Version: versioninfo.Info{
		Version:   buildinfo.Version,
		Commit:    buildinfo.GitCommit,
		BuildDate: buildinfo.BuildDate,
		BuiltBy:   buildinfo.BuiltBy,
	}.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootFlags.Debug {
			log.Configure(log.Config{Level: "debug"})
		}
	},
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = rootOptions{}

type rootOptions struct {
	ConfigPath string
	Debug      bool
}

func rootAddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&rootFlags.ConfigPath, "config", "c", "", "Use this config file instead of searching for one (also "+config.EnvConfigPath+")")
	cmd.PersistentFlags().BoolVar(&rootFlags.Debug, "debug", false, "Print debug logs to stderr")
}

func init() {
	rootAddFlags(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cmd, err := rootCmd.ExecuteContextC(ctx); err != nil {
		// both exit paths below call os.Exit, which skips deferred calls
		stop()

		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	cmd.Usage() //nolint:errcheck
	return nil
}
