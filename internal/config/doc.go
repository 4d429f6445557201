// Package config handles configuration loading and merging for statstable.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--max-rows, --format, --theme, --query, --debug, --log-format)
//  2. Environment variables (STATSTABLE_MAX_ROWS, STATSTABLE_FORMAT, STATSTABLE_THEME, STATSTABLE_DEBUG,
//     STATSTABLE_LOG_FORMAT, NO_COLOR)
//  3. YAML config file (.statstable.yaml in the working directory or ~/.config/statstable/.statstable.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # NO_COLOR
//
// When NO_COLOR is set (or CLICOLOR=0), the mono theme is used unless the theme
// was given explicitly on the command line.
package config
