package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/gitcz/internal/config"
	"github.com/zbiljic/gitcz/pkg/promptsx"
)

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a configuration file",
	Long:  `Loads the given file, or the resolved configuration, and reports every structural problem: unknown or duplicate types in the list, bad length bounds, unknown questions, duplicate scopes and incomplete type definitions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigValidateE,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidateE(cmd *cobra.Command, args []string) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)

	if len(args) > 0 {
		path = args[0]
		cfg, err = config.LoadFile(path)
	} else {
		cfg, path, err = loadConfig()
	}
	if path == "" {
		path = "built-in defaults"
	}

	if err != nil {
		problems := validateSplitErrors(err)
		validateReportProblems(cmd, problems)
		return fmt.Errorf("%s: %d problem(s) found", path, len(problems))
	}

	mismatched := cfg.MismatchedValues()

	if isNotTerminal {
		out := cmd.OutOrStdout()
		for _, key := range mismatched {
			fmt.Fprintf(out, "warning: type %q has value %q\n", key, cfg.Types[key].Value)
		}
		fmt.Fprintf(out, "%s: ok\n", path)
		return nil
	}

	for _, key := range mismatched {
		promptsx.Warn(fmt.Sprintf("Type %s has value %s", picocolors.Cyan(key), picocolors.Yellow(cfg.Types[key].Value)))
	}
	prompts.Success(fmt.Sprintf("%s is valid", path))

	return nil
}

// validateSplitErrors unpacks joined validation errors so each violation
// can be reported on its own line.
func validateSplitErrors(err error) []error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
	}
	return []error{err}
}

func validateReportProblems(cmd *cobra.Command, problems []error) {
	if isNotTerminal {
		out := cmd.ErrOrStderr()
		for _, problem := range problems {
			fmt.Fprintf(out, "error: %s\n", problem)
		}
		return
	}

	for _, problem := range problems {
		prompts.Error(strings.TrimSpace(problem.Error()))
	}
}
