package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/gitcz/pkg/commit"
)

// addFormatFlag adds the output format flag to a command
func addFormatFlag(cmd *cobra.Command, format *commit.Format) {
	cmd.Flags().VarP(enumflag.New(format, "format", commit.FormatIds, enumflag.EnumCaseInsensitive), "format", "f", "Output format (json, yaml)")
}
