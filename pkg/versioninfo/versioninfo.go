package versioninfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// shortCommitLen is the number of commit hash characters shown.
const shortCommitLen = 7

// A Info contains a version.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	BuiltBy   string
}

// SemVer parses the version, tolerating a leading "v".
func (vi Info) SemVer() (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
}

func (vi Info) String() string {
	if vi.Version == "" {
		return vi.join("dev")
	}

	version, err := vi.SemVer()
	if err != nil {
		return vi.Version
	}

	return vi.join("v" + version.String())
}

func (vi Info) join(version string) string {
	elems := []string{version}

	if commit := vi.Commit; commit != "" {
		if len(commit) > shortCommitLen {
			commit = commit[:shortCommitLen]
		}
		elems = append(elems, "commit "+commit)
	}
	if vi.BuildDate != "" {
		elems = append(elems, "built at "+vi.BuildDate)
	}
	if vi.BuiltBy != "" {
		elems = append(elems, "built by "+vi.BuiltBy)
	}

	return strings.Join(elems, ", ")
}
