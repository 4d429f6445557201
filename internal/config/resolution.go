package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/dkoosis/statstable/pkg/render"
)

// Formats lists the accepted values of the format setting.
var Formats = []string{"auto", "text", "terminal", "json", "yaml"}

// LogFormats lists the accepted values of the log_format setting.
var LogFormats = []string{"text", "json"}

// Source names where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	MaxRows    int
	Format     string
	Theme      string
	Query      string
	Debug      bool
	LogFormat  string

	// Flags to track if they were explicitly set by the user
	MaxRowsSet   bool
	FormatSet    bool
	ThemeSet     bool
	QuerySet     bool
	DebugSet     bool
	LogFormatSet bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	MaxRows   int
	Format    string
	Theme     string
	Query     string
	Debug     bool
	LogFormat string

	// Resolution metadata (for debugging)
	MaxRowsSource   string
	FormatSource    string
	ThemeSource     string
	LogFormatSource string
}

// ResolveConfig resolves configuration from all sources with explicit priority order:
// CLI flags, then environment, then the config file, then defaults.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, err := LoadConfig(cliFlags.ConfigPath)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		MaxRows:         DefaultMaxRows,
		Format:          DefaultFormat,
		Theme:           DefaultTheme,
		LogFormat:       DefaultLogFormat,
		MaxRowsSource:   SourceDefault,
		FormatSource:    SourceDefault,
		ThemeSource:     SourceDefault,
		LogFormatSource: SourceDefault,
	}

	// File
	if appCfg.MaxRows != nil {
		resolved.MaxRows, resolved.MaxRowsSource = *appCfg.MaxRows, SourceFile
	}
	if appCfg.Format != "" {
		resolved.Format, resolved.FormatSource = appCfg.Format, SourceFile
	}
	if appCfg.Theme != "" {
		resolved.Theme, resolved.ThemeSource = appCfg.Theme, SourceFile
	}
	if appCfg.LogFormat != "" {
		resolved.LogFormat, resolved.LogFormatSource = appCfg.LogFormat, SourceFile
	}
	resolved.Query = appCfg.Query
	resolved.Debug = appCfg.Debug

	// Environment
	if v := os.Getenv("STATSTABLE_MAX_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("STATSTABLE_MAX_ROWS: %q is not an integer", v)
		}
		resolved.MaxRows, resolved.MaxRowsSource = n, SourceEnv
	}
	if v := os.Getenv("STATSTABLE_FORMAT"); v != "" {
		resolved.Format, resolved.FormatSource = v, SourceEnv
	}
	if v := os.Getenv("STATSTABLE_THEME"); v != "" {
		resolved.Theme, resolved.ThemeSource = v, SourceEnv
	}
	if termenv.EnvNoColor() {
		resolved.Theme, resolved.ThemeSource = "mono", SourceEnv
	}
	if v := os.Getenv("STATSTABLE_LOG_FORMAT"); v != "" {
		resolved.LogFormat, resolved.LogFormatSource = v, SourceEnv
	}
	if b := getEnvBool("STATSTABLE_DEBUG"); b != nil {
		resolved.Debug = *b
	}

	// CLI
	if cliFlags.MaxRowsSet {
		resolved.MaxRows, resolved.MaxRowsSource = cliFlags.MaxRows, SourceCLI
	}
	if cliFlags.FormatSet {
		resolved.Format, resolved.FormatSource = cliFlags.Format, SourceCLI
	}
	if cliFlags.ThemeSet {
		resolved.Theme, resolved.ThemeSource = cliFlags.Theme, SourceCLI
	}
	if cliFlags.QuerySet {
		resolved.Query = cliFlags.Query
	}
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	}
	if cliFlags.LogFormatSet {
		resolved.LogFormat, resolved.LogFormatSource = cliFlags.LogFormat, SourceCLI
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a parseable value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.MaxRows < 0 {
		return fmt.Errorf("max_rows must be >= 0, got %d (from %s)", cfg.MaxRows, cfg.MaxRowsSource)
	}
	if !slices.Contains(Formats, cfg.Format) {
		return fmt.Errorf("invalid format %q (from %s; must be one of %v)", cfg.Format, cfg.FormatSource, Formats)
	}
	if !slices.Contains(render.ThemeNames, cfg.Theme) {
		return fmt.Errorf("invalid theme %q (from %s; must be one of %v)", cfg.Theme, cfg.ThemeSource, render.ThemeNames)
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log_format %q (from %s; must be one of %v)", cfg.LogFormat, cfg.LogFormatSource, LogFormats)
	}
	return nil
}
