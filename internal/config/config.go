package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the settings read from .statstable.yaml.
// Zero values mean "not set".
type AppConfig struct {
	MaxRows   *int   `yaml:"max_rows"`
	Format    string `yaml:"format"`
	Theme     string `yaml:"theme"`
	Query     string `yaml:"query"`
	Debug     bool   `yaml:"debug"`
	LogFormat string `yaml:"log_format"`
}

// Constants for default values.
const (
	DefaultMaxRows   = 50
	DefaultFormat    = "auto"
	DefaultTheme     = "default"
	DefaultLogFormat = "text"

	configFileName = ".statstable.yaml"
	appDirName     = "statstable"
)

// LoadConfig reads the config file at path. An empty path searches the
// working directory and then the user config directory; finding nothing
// yields an empty AppConfig.
func LoadConfig(path string) (*AppConfig, error) {
	explicit := path != ""
	if !explicit {
		path = getConfigPath()
	}
	if path == "" {
		slog.Debug("no config file found, using defaults")
		return &AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	slog.Debug("loaded config file", "path", path)
	return &cfg, nil
}

// getConfigPath finds the config file: local directory first, then the
// user config directory.
func getConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		slog.Debug("user config dir unavailable", "error", err, "path", configHome)
		return ""
	}
	xdgPath := filepath.Join(configHome, appDirName, configFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
