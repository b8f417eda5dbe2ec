package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "warn"
	defaultLogEncoding = "console"

	logLevelEnv    = "MILLIGREP_LOG_LEVEL"
	logEncodingEnv = "MILLIGREP_LOG_ENCODING"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogEncodings = []string{"console", "json"}
)

// Settings aggregates ambient runtime settings resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Settings struct {
	LogLevel    string
	LogEncoding string
	IgnoreCase  bool
}

// yamlSettings represents the YAML configuration file structure.
type yamlSettings struct {
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
	IgnoreCase  *bool  `yaml:"ignore_case"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
	IgnoreCase  *bool
}

// LoadSettings resolves Settings from defaults, environment, an optional YAML
// file and CLI overrides, in increasing order of precedence.
func LoadSettings(overrides *CLIOverrides, lookupEnv LookupEnvFunc) (Settings, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	settings := defaultSettings()

	applyEnvSettings(&settings, lookupEnv)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Settings{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLSettings(&settings, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&settings, overrides)
	}

	if err := validateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// defaultSettings returns Settings with default values.
func defaultSettings() Settings {
	return Settings{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlSettings
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyEnvSettings applies environment variable configuration.
func applyEnvSettings(settings *Settings, lookupEnv LookupEnvFunc) {
	if level, ok := lookupEnv(logLevelEnv); ok && strings.TrimSpace(level) != "" {
		settings.LogLevel = normalize(level)
	}

	if encoding, ok := lookupEnv(logEncodingEnv); ok && strings.TrimSpace(encoding) != "" {
		settings.LogEncoding = normalize(encoding)
	}
}

// applyYAMLSettings applies YAML configuration to the Settings struct.
func applyYAMLSettings(settings *Settings, yamlCfg *yamlSettings) {
	if strings.TrimSpace(yamlCfg.LogLevel) != "" {
		settings.LogLevel = normalize(yamlCfg.LogLevel)
	}

	if strings.TrimSpace(yamlCfg.LogEncoding) != "" {
		settings.LogEncoding = normalize(yamlCfg.LogEncoding)
	}

	if yamlCfg.IgnoreCase != nil {
		settings.IgnoreCase = *yamlCfg.IgnoreCase
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(settings *Settings, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && strings.TrimSpace(*overrides.LogLevel) != "" {
		settings.LogLevel = normalize(*overrides.LogLevel)
	}

	if overrides.LogEncoding != nil && strings.TrimSpace(*overrides.LogEncoding) != "" {
		settings.LogEncoding = normalize(*overrides.LogEncoding)
	}

	// A flag can only switch ignore-case on; its absence keeps the YAML value.
	if overrides.IgnoreCase != nil && *overrides.IgnoreCase {
		settings.IgnoreCase = true
	}
}

// validateSettings validates the final settings.
func validateSettings(settings Settings) error {
	if !slices.Contains(validLogLevels, settings.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(validLogLevels, ", "), settings.LogLevel)
	}
	if !slices.Contains(validLogEncodings, settings.LogEncoding) {
		return fmt.Errorf("log encoding must be one of %s, got %q", strings.Join(validLogEncodings, ", "), settings.LogEncoding)
	}
	return nil
}

// normalize trims and lowercases a raw setting value.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
