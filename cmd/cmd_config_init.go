package cmd

import (
	"fmt"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/gitcz/internal/config"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  `Writes the built-in configuration as a versioned file, by default to ~/.config/gitcz/gitcz.json. Existing files are kept unless --force is given.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInitE,
}

var configInitFlags = configInitOptions{
	Output: "",
	Force:  false,
	Yes:    false,
}

func configInitAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configInitFlags.Output, "output", "o", "", "File to write (defaults to the user config path)")
	cmd.Flags().BoolVar(&configInitFlags.Force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVarP(&configInitFlags.Yes, "yes", "y", false, "Do not ask for confirmation")
}

func init() {
	configInitAddFlags(configInitCmd)

	configCmd.AddCommand(configInitCmd)
}

type configInitOptions struct {
	Output string
	Force  bool
	Yes    bool
}

func runConfigInitE(cmd *cobra.Command, args []string) error {
	target := configInitFlags.Output
	if target == "" {
		target = config.GetDefaultPath()
	}

	if fileExists(target) && !configInitFlags.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", target)
	}

	interactive := !configInitFlags.Yes && canPrompt()
	if interactive {
		setupCommandClackIntro(cmd)

		confirmed, err := prompts.Confirm(prompts.ConfirmParams{
			Message: fmt.Sprintf("Write default configuration to %s?", picocolors.Cyan(target)),
		})
		if err != nil {
			if prompts.IsCancel(err) {
				prompts.Outro("Cancelled")
				return nil
			}
			return fmt.Errorf("failed to get confirmation: %w", err)
		}

		if !confirmed {
			prompts.Outro("Nothing written")
			return nil
		}
	}

	if err := config.Save(config.NewDefault(), target); err != nil {
		return err
	}

	if interactive {
		prompts.Outro(fmt.Sprintf("%s Wrote %s", picocolors.Green("✔"), target))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
	}

	return nil
}
