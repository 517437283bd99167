package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbiljic/gitcz/internal/config"
	"github.com/zbiljic/gitcz/pkg/commit"
)

var configCmd = &cobra.Command{
	Use: "config",
	Aliases: []string{
		"cfg",
	},
	Short:       "Show, locate, create and validate the configuration",
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long:  `Prints the configuration a wizard would read, after search, migration and validation. Built-in defaults are printed when no file is found.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShowE,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPathE,
}

var configShowFlags = configShowOptions{
	Format: commit.JSONFormat,
}

var configPathFlags = configPathOptions{
	All: false,
}

func configAddFlags() {
	addFormatFlag(configShowCmd, &configShowFlags.Format)
	configPathCmd.Flags().BoolVarP(&configPathFlags.All, "all", "a", false, "List every search path, marking the existing ones")
}

func init() {
	configAddFlags()

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

type configShowOptions struct {
	Format commit.Format
}

type configPathOptions struct {
	All bool
}

func runConfigShowE(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	return commit.Encode(cmd.OutOrStdout(), configShowFlags.Format, cfg.Commit())
}

func runConfigPathE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configPathFlags.All {
		paths := config.GetSearchPaths()
		if rootFlags.ConfigPath != "" {
			paths = []string{rootFlags.ConfigPath}
		}
		for _, path := range paths {
			marker := " "
			if fileExists(path) {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, path)
		}
		return nil
	}

	if rootFlags.ConfigPath != "" {
		if !fileExists(rootFlags.ConfigPath) {
			return fmt.Errorf("config file %s does not exist", rootFlags.ConfigPath)
		}
		fmt.Fprintln(out, rootFlags.ConfigPath)
		return nil
	}

	path, err := config.FindFile()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && os.Getenv(config.EnvConfigPath) == "" {
			fmt.Fprintln(out, "(defaults)")
			return nil
		}
		return err
	}

	fmt.Fprintln(out, path)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
