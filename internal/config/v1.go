package config

import (
	"fmt"

	"github.com/zbiljic/gitcz/pkg/commit"
)

const configVersionV1 = "1"

// configV1 keeps the commit settings inline next to the version key, so a
// versioned file reads like a changelog config with an extra "version".
type configV1 struct {
	Version string `json:"version"` // required by vconfig-go
	commit.Config
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version: configVersionV1,
		Config:  *commit.DefaultConfig(),
	}
}

func (c *configV1) validateV1() error {
	if c.Version != configVersionV1 {
		return fmt.Errorf("unsupported config version '%s', expected '%s'", c.Version, configVersionV1)
	}

	return c.Config.Validate()
}
