package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/zbiljic/vconfig-go"

	"github.com/zbiljic/gitcz/internal/log"
	"github.com/zbiljic/gitcz/pkg/commit"
)

// loadCreateMigrate loads existing config or falls back to defaults, handling migrations
func loadCreateMigrate() (*Config, error) {
	logger := log.WithComponent("config")

	configPath, err := FindFile()
	if err != nil {
		if os.IsNotExist(err) {
			// no config file found, return default configuration
			logger.Debug().Msg("no config file found, using defaults")
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	logger.Debug().Str("path", configPath).Msg("loading config file")

	return loadFile(configPath)
}

// loadFile reads a single file, detecting versioned and legacy layouts.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errFailedToReadConfig(configPath, err)
	}

	format, err := commit.FormatFromPath(configPath)
	if err != nil {
		return nil, errFailedToReadConfig(configPath, err)
	}

	logger := log.WithComponent("config")

	var config *Config
	if format == commit.JSONFormat && gjson.GetBytes(data, "version").Exists() {
		config, err = loadVersioned(logger, configPath, data)
	} else {
		config, err = loadLegacy(logger, data, format)
	}
	if err != nil {
		return nil, errFailedToReadConfig(configPath, err)
	}

	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, errInvalidConfig(configPath, err)
	}

	return config, nil
}

func loadVersioned(logger zerolog.Logger, configPath string, data []byte) (*Config, error) {
	version, err := vconfig.GetVersion(configPath)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", configPath).
		Str("version", version).
		Msg("detected config version")

	switch version {
	case configVersionV0:
		config, err := vconfig.LoadConfig[configV0](configPath)
		if err != nil {
			return nil, errLoadVersion(version, err)
		}
		return config.migrateV0(), nil
	case configVersionV1:
		// decoded here rather than by vconfig so misspelled keys are rejected
		var config configV1
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&config); err != nil {
			return nil, errLoadVersion(version, err)
		}
		return &config, nil
	default:
		return nil, errUnknownVersion(version)
	}
}

// loadLegacy reads an unversioned changelog config and upgrades it in memory.
func loadLegacy(logger zerolog.Logger, data []byte, format commit.Format) (*Config, error) {
	logger.Debug().
		Str("format", format.ToString()).
		Msg("loading unversioned config")

	cc, err := commit.Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}

	return fromCommit(cc), nil
}
