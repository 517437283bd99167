package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// isNotTerminal defines if the output is going into terminal or not.
// It's dynamically set to false or true based on the stdout's file
// descriptor referring to a terminal or not.
var isNotTerminal = os.Getenv("TERM") == "dumb" ||
	(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))

// canPrompt reports whether interactive questions can be asked.
func canPrompt() bool {
	return !isNotTerminal && term.IsTerminal(int(os.Stdin.Fd()))
}
