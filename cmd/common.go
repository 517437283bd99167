package cmd

import (
	"context"
	"fmt"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/gitcz/internal/config"
)

type (
	ctxKeyClackPromptStarted struct{}
)

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// setupCommandClackIntro shows the clack intro and marks the context so
// errors are rendered by clack.
func setupCommandClackIntro(cmd *cobra.Command) {
	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)
}

// loadConfig resolves the configuration, honoring the --config flag. The
// returned path is empty when built-in defaults are used.
func loadConfig() (*config.Config, string, error) {
	if rootFlags.ConfigPath != "" {
		cfg, err := config.LoadFile(rootFlags.ConfigPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, rootFlags.ConfigPath, nil
	}

	path, _ := config.GetPath()

	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}
