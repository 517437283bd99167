package promptsx

import (
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/prompts/symbols"
	"github.com/orochaa/go-clack/third_party/picocolors"
)

// Note displays a formatted note box with a message and borders.
func Note(msg string) {
	prompts.Note(msg, prompts.NoteOptions{})
}

// InfoWithLastLine displays an informational message with a blue info symbol
// and a closing bar line.
func InfoWithLastLine(msg string) {
	message(picocolors.Blue(symbols.INFO), msg)
}

// Warn displays a message with a yellow warning symbol.
func Warn(msg string) {
	message(picocolors.Yellow(symbols.WARN), msg)
}

func message(start, msg string) {
	prompts.Message(msg, prompts.MessageOptions{
		FirstLine: prompts.MessageLineOptions{
			Start: start,
		},
		NewLine: prompts.MessageLineOptions{
			Start: picocolors.Gray(symbols.BAR),
		},
		LastLine: prompts.MessageLineOptions{
			Start: picocolors.Gray(symbols.BAR),
		},
	})
}
