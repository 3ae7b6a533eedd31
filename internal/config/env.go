package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/helixml/isocal/temporal"
)

// EnvPrefix is the prefix of every environment variable read by LoadFromEnv.
const EnvPrefix = "ISOCAL"

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the ISOCAL_ prefix.
type EnvConfig struct {
	// FirstDayOfWeek is the first day of the week, as an English day name.
	// Env: ISOCAL_FIRST_DAY_OF_WEEK (default: MONDAY)
	FirstDayOfWeek string `envconfig:"FIRST_DAY_OF_WEEK" default:"MONDAY"`

	// MinDays is the minimal number of days in the first week, 1 to 7.
	// Env: ISOCAL_MIN_DAYS (default: 4)
	MinDays int `envconfig:"MIN_DAYS" default:"4"`

	// Locale is a BCP 47 tag whose region selects the week definition.
	// Env: ISOCAL_LOCALE
	Locale string `envconfig:"LOCALE"`

	// ResolverStyle is strict, smart or lenient.
	// Env: ISOCAL_RESOLVER_STYLE (default: smart)
	ResolverStyle string `envconfig:"RESOLVER_STYLE" default:"smart"`

	// Output is the output format (text, json or yaml).
	// Env: ISOCAL_OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`

	// LogLevel is the log verbosity level.
	// Env: ISOCAL_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: ISOCAL_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadFromEnv loads configuration from ISOCAL_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(EnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig, validating each value.
func (e EnvConfig) ToAppConfig() (AppConfig, error) {
	cfg := NewAppConfig()

	if e.FirstDayOfWeek != "" {
		dow, err := temporal.ParseDayOfWeek(e.FirstDayOfWeek)
		if err != nil {
			return AppConfig{}, fmt.Errorf("first day of week: %w", err)
		}
		cfg = applyOption(cfg, WithFirstDayOfWeek(dow))
	}
	if e.MinDays != 0 {
		if e.MinDays < 1 || e.MinDays > 7 {
			return AppConfig{}, fmt.Errorf("minimal days must be 1 to 7, got %d", e.MinDays)
		}
		cfg = applyOption(cfg, WithMinimalDays(e.MinDays))
	}
	if e.Locale != "" {
		cfg = applyOption(cfg, WithLocale(e.Locale))
	}
	if e.ResolverStyle != "" {
		style, err := temporal.ParseResolverStyle(e.ResolverStyle)
		if err != nil {
			return AppConfig{}, fmt.Errorf("resolver style: %w", err)
		}
		cfg = applyOption(cfg, WithResolverStyle(style))
	}
	if e.Output != "" {
		output, err := ParseOutputFormat(e.Output)
		if err != nil {
			return AppConfig{}, err
		}
		cfg = applyOption(cfg, WithOutput(output))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	return cfg, nil
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
