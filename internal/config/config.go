package config

import (
	"github.com/zbiljic/gitcz/pkg/commit"
)

// Config represents the current version of configuration
type Config = configV1

// NewDefault creates a new configuration
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// Commit returns the commit type configuration held by the file.
func (c *Config) Commit() *commit.Config {
	return &c.Config
}

// fromCommit wraps unversioned commit configuration into the latest version.
func fromCommit(cc *commit.Config) *Config {
	return &Config{
		Version: configVersionV1,
		Config:  *cc,
	}
}

// normalize replaces omitted sequences with empty ones so they encode as
// lists rather than null.
func (c *Config) normalize() {
	if c.List == nil {
		c.List = []string{}
	}
	if c.Questions == nil {
		c.Questions = []commit.Question{}
	}
	if c.Scopes == nil {
		c.Scopes = []string{}
	}
	if c.Types == nil {
		c.Types = map[string]commit.TypeInfo{}
	}
}
