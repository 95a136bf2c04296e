package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/stencil-labs/stencil/internal/branding"
	"github.com/stencil-labs/stencil/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyInstallTool      = "install.tool"
	KeyInstallTimeout   = "install.timeout"
	KeyPathRequirements = "paths.requirements"
	KeyPathManifest     = "paths.manifest"
)

// Built-in defaults, applied when neither the config file nor the
// environment provides a value.
const (
	DefaultTool         = "uv"
	DefaultRequirements = "requirements.txt"
	DefaultManifest     = "pyproject.toml"
)

// Dir returns the path to the Stencil config directory (~/.stencil/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.stencil/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	return platform.Chmod(dir, 0755)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyInstallTool, DefaultTool)
	viper.SetDefault(KeyPathRequirements, DefaultRequirements)
	viper.SetDefault(KeyPathManifest, DefaultManifest)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetDuration returns a config value parsed as a duration. Returns zero if
// the key is not set or does not parse.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
