// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/helixml/isocal/locale"
	"github.com/helixml/isocal/temporal"
)

// Default configuration values.
const (
	DefaultLogLevel       = "INFO"
	DefaultFirstDayOfWeek = temporal.Monday
	DefaultMinimalDays    = 4
	DefaultResolverStyle  = temporal.Smart
	DefaultOutput         = OutputText
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OutputFormat is the format command results are written in.
type OutputFormat string

// OutputFormat values.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat parses text, json or yaml in any case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case OutputText, "":
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML, "yml":
		return OutputYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	firstDayOfWeek temporal.DayOfWeek
	minimalDays    int
	locale         string
	resolverStyle  temporal.ResolverStyle
	output         OutputFormat
	logLevel       string
	logFormat      LogFormat
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		firstDayOfWeek: DefaultFirstDayOfWeek,
		minimalDays:    DefaultMinimalDays,
		resolverStyle:  DefaultResolverStyle,
		output:         DefaultOutput,
		logLevel:       DefaultLogLevel,
		logFormat:      LogFormatPretty,
	}
}

// FirstDayOfWeek returns the configured first day of the week.
func (c AppConfig) FirstDayOfWeek() temporal.DayOfWeek { return c.firstDayOfWeek }

// MinimalDays returns the configured minimal days in the first week.
func (c AppConfig) MinimalDays() int { return c.minimalDays }

// Locale returns the BCP 47 locale tag, empty when unset.
func (c AppConfig) Locale() string { return c.locale }

// ResolverStyle returns the resolver style.
func (c AppConfig) ResolverStyle() temporal.ResolverStyle { return c.resolverStyle }

// Output returns the output format.
func (c AppConfig) Output() OutputFormat { return c.output }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// WeekFields returns the week definition. A locale takes precedence over
// the explicit first day of week and minimal days.
func (c AppConfig) WeekFields() (*temporal.WeekFields, error) {
	if c.locale != "" {
		return locale.Parse(c.locale)
	}
	return temporal.WeekFieldsOf(c.firstDayOfWeek, c.minimalDays)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithFirstDayOfWeek sets the first day of the week.
func WithFirstDayOfWeek(dow temporal.DayOfWeek) AppConfigOption {
	return func(c *AppConfig) { c.firstDayOfWeek = dow }
}

// WithMinimalDays sets the minimal days in the first week.
func WithMinimalDays(n int) AppConfigOption {
	return func(c *AppConfig) { c.minimalDays = n }
}

// WithLocale sets the locale tag.
func WithLocale(tag string) AppConfigOption {
	return func(c *AppConfig) { c.locale = tag }
}

// WithResolverStyle sets the resolver style.
func WithResolverStyle(style temporal.ResolverStyle) AppConfigOption {
	return func(c *AppConfig) { c.resolverStyle = style }
}

// WithOutput sets the output format.
func WithOutput(format OutputFormat) AppConfigOption {
	return func(c *AppConfig) { c.output = format }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("first_day_of_week", c.firstDayOfWeek.String()),
		slog.Int("minimal_days", c.minimalDays),
		slog.String("locale", c.locale),
		slog.String("resolver_style", c.resolverStyle.String()),
		slog.String("output", string(c.output)),
		slog.String("log_level", c.logLevel),
	}
}
