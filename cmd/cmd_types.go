package cmd

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/zbiljic/gitcz/pkg/commit"
	"github.com/zbiljic/gitcz/pkg/promptsx"
)

var typesCmd = &cobra.Command{
	Use: "types",
	Aliases: []string{
		"t",
		"ls",
	},
	Short:       "List commit types in menu order",
	Long:        `Lists the commit types in the order a wizard shows them. Types that are defined but left out of the menu list are shown with --all.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runTypesE,
}

var typesFlags = typesOptions{
	All: false,
}

func typesAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&typesFlags.All, "all", "a", false, "Include types missing from the menu list")
}

func init() {
	typesAddFlags(typesCmd)

	rootCmd.AddCommand(typesCmd)
}

type typesOptions struct {
	All bool
}

func runTypesE(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	choices := cfg.Choices()
	if typesFlags.All {
		choices = cfg.AllChoices()
	}

	if isNotTerminal {
		out := cmd.OutOrStdout()
		for _, choice := range choices {
			line := choice.Key + "\t" + choice.Description
			if choice.Hidden {
				line += "\thidden"
			}
			fmt.Fprintln(out, line)
		}
		return nil
	}

	promptsx.Note(typesFormatChoices(choices))
	promptsx.InfoWithLastLine(typesFormatSummary(cfg.Commit()))

	return nil
}

// typesFormatChoices renders the menu with aligned keys.
func typesFormatChoices(choices []commit.Choice) string {
	width := lo.Max(lo.Map(choices, func(c commit.Choice, _ int) int {
		return len(c.Key)
	}))

	lines := make([]string, 0, len(choices))
	for _, choice := range choices {
		line := picocolors.Cyan(strutil.PadEnd(choice.Key, width, " ")) + "  " + choice.Description
		if choice.Value != choice.Key {
			line += " " + picocolors.Dim("(value: "+choice.Value+")")
		}
		if choice.Hidden {
			line += " " + picocolors.Gray("(hidden)")
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func typesFormatSummary(cfg *commit.Config) string {
	scopes := "any"
	if cfg.ScopesRestricted() {
		scopes = strings.Join(cfg.Scopes, ", ")
	}

	return fmt.Sprintf(
		"Questions: %s\nScopes: %s\nSubject length: %d-%d",
		strings.Join(cfg.QuestionNames(), ", "),
		scopes,
		cfg.MinMessageLength,
		cfg.MaxMessageLength,
	)
}
