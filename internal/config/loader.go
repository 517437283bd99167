package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	"github.com/zbiljic/vconfig-go"
)

// EnvConfigPath names the environment variable that pins the config file.
const EnvConfigPath = "GITCZ_CONFIG"

const (
	fileName       = "gitcz.json"
	hiddenFileName = ".gitcz.json"
)

// legacyFileNames are unversioned changelog configs read from the current directory.
var legacyFileNames = []string{
	"changelog.config.json",
	"changelog.config.yaml",
	"changelog.config.yml",
}

var (
	// Cached configuration to avoid loading multiple times
	cachedConfig *Config
	// Mutex for thread-safe access to config file
	configMutex = &sync.Mutex{}
)

// Load loads configuration using the migration system
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadCreateMigrate()
	if err != nil {
		return nil, err
	}

	cachedConfig = config
	return config, nil
}

// LoadFile loads and validates the configuration stored at filename,
// bypassing the search paths and the cache.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, errInvalidArgument
	}

	return loadFile(filename)
}

// Save saves configuration to a file
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errInvalidArgument
	}

	if err := config.Validate(); err != nil {
		return errInvalidConfig(filename, err)
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	// ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errFailedToCreateDirectory(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errFailedToSaveConfig(filename, err)
	}

	// update the cached config so subsequent loads see saved state
	cachedConfig = config

	return nil
}

// FindFile searches for configuration file in hierarchical order
func FindFile() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s points to %s: %w", EnvConfigPath, path, err)
		}
		return path, nil
	}

	for _, path := range GetSearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths returns the list of paths to search for configuration files
func GetSearchPaths() []string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return []string{path}
	}

	var paths []string

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// 1. ./.gitcz.json and ./gitcz.json (current directory)
	paths = append(paths, filepath.Join(cwd, hiddenFileName))
	paths = append(paths, filepath.Join(cwd, fileName))

	// 2. unversioned changelog configs (current directory)
	for _, name := range legacyFileNames {
		paths = append(paths, filepath.Join(cwd, name))
	}

	// 3. Walk up directories looking for gitcz.json, not leaving the worktree
	dir := cwd
	homeDir := lo.Must(os.UserHomeDir())
	worktree := gitWorkingTreeDir(cwd)
	for dir != worktree {
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break // reached root or home directory
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, fileName))
	}

	// 4. ~/.config/gitcz/gitcz.json (user config)
	paths = append(paths, GetDefaultPath())

	// 5. ~/.gitcz.json (user home fallback)
	paths = append(paths, filepath.Join(homeDir, hiddenFileName))

	return paths
}

// GetPath returns the path where configuration would be loaded from
func GetPath() (string, bool) {
	path, err := FindFile()
	return path, err == nil
}

// GetDefaultPath returns the default path for user configuration
func GetDefaultPath() string {
	homeDir := lo.Must(os.UserHomeDir())

	// Prefer ~/.config/gitcz/gitcz.json
	configDir := filepath.Join(homeDir, ".config", "gitcz")
	return filepath.Join(configDir, fileName)
}

// ResetCache clears the cached configuration (useful for testing)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
