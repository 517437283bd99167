package config

import (
	"strings"

	"github.com/zbiljic/gitexec"
)

// gitWorkingTreeDir returns the top level directory of the git worktree
// containing path, or an empty string outside of a repository.
func gitWorkingTreeDir(path string) string {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(out))
}
