package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/xrpicker/xrpicker/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyLogLevel   = "log_level"
	KeySysConfDir = "sysconfdir"
	KeyStateFile  = "state_file"
)

// DefaultLogLevel is used when log_level is unset.
const DefaultLogLevel = "warn"

var keys = []string{KeyLogLevel, KeySysConfDir, KeyStateFile}

// Keys returns the recognized configuration keys.
func Keys() []string {
	return slices.Clone(keys)
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	return slices.Contains(keys, key)
}

// Dir returns the xrpicker config directory ($XDG_CONFIG_HOME/xrpicker).
func Dir() string {
	return filepath.Join(xdg.ConfigHome, branding.ConfigDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, keys)
	}
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

// LogLevel returns the configured log level name.
func LogLevel() string {
	return Get(KeyLogLevel)
}

// SysConfDir returns the sysconfdir override, or "" for the default.
func SysConfDir() string {
	return Get(KeySysConfDir)
}

// StateFile returns the persistent state path override, or "" for the default.
func StateFile() string {
	return Get(KeyStateFile)
}
