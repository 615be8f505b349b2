package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bootware/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/bootware"
	configFileName = "config.yaml"
)

// osUserHomeDir is a variable to allow mocking in tests
var osUserHomeDir = os.UserHomeDir

// GetDefaultConfigPath returns ~/.config/bootware.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}

	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads config.yaml from the given directory on top of the defaults.
// A missing file is not an error.
func LoadConfig(configPath string) (BootwareConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return BootwareConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "io",
			Message:   "failed to read configuration file",
			Details:   err.Error(),
			Err:       err,
		}
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return BootwareConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "parse",
			Message:   "malformed YAML",
			Details:   err.Error(),
			Err:       err,
		}
	}

	if err := ValidateConfig(config); err != nil {
		return BootwareConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "validation",
			Message:   err.Error(),
			Err:       err,
		}
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
