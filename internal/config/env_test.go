package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal/temporal"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "MONDAY", cfg.FirstDayOfWeek)
	assert.Equal(t, 4, cfg.MinDays)
	assert.Equal(t, "", cfg.Locale)
	assert.Equal(t, "smart", cfg.ResolverStyle)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestEnvDefaults_MatchConfigDefaults(t *testing.T) {
	// Struct tag defaults must be literals, so keep them in sync with config.go.
	clearEnvVars(t)

	env, err := LoadFromEnv()
	require.NoError(t, err)
	cfg, err := env.ToAppConfig()
	require.NoError(t, err)

	defaults := NewAppConfig()
	assert.Equal(t, defaults.FirstDayOfWeek(), cfg.FirstDayOfWeek(), "FirstDayOfWeek struct tag default should match DefaultFirstDayOfWeek")
	assert.Equal(t, DefaultMinimalDays, env.MinDays, "MinDays struct tag default should match DefaultMinimalDays")
	assert.Equal(t, DefaultResolverStyle.String(), env.ResolverStyle, "ResolverStyle struct tag default should match DefaultResolverStyle")
	assert.Equal(t, string(DefaultOutput), env.Output, "Output struct tag default should match DefaultOutput")
	assert.Equal(t, DefaultLogLevel, env.LogLevel, "LogLevel struct tag default should match DefaultLogLevel")
	assert.Equal(t, defaults, cfg)
}

func TestLoadFromEnv_OverrideValues(t *testing.T) {
	clearEnvVars(t)

	t.Setenv("ISOCAL_FIRST_DAY_OF_WEEK", "sunday")
	t.Setenv("ISOCAL_MIN_DAYS", "1")
	t.Setenv("ISOCAL_LOCALE", "en-US")
	t.Setenv("ISOCAL_RESOLVER_STYLE", "strict")
	t.Setenv("ISOCAL_OUTPUT", "yaml")
	t.Setenv("ISOCAL_LOG_LEVEL", "DEBUG")
	t.Setenv("ISOCAL_LOG_FORMAT", "json")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "sunday", cfg.FirstDayOfWeek)
	assert.Equal(t, 1, cfg.MinDays)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "strict", cfg.ResolverStyle)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnv_InvalidMinDays(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ISOCAL_MIN_DAYS", "four")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CAL_MIN_DAYS", "2")

	cfg, err := LoadFromEnvWithPrefix("CAL")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MinDays)
}

func TestEnvConfig_ToAppConfig(t *testing.T) {
	env := EnvConfig{
		FirstDayOfWeek: "Sun",
		MinDays:        1,
		Locale:         "en-GB",
		ResolverStyle:  "lenient",
		Output:         "JSON",
		LogLevel:       "WARN",
		LogFormat:      "json",
	}

	cfg, err := env.ToAppConfig()
	require.NoError(t, err)

	assert.Equal(t, temporal.Sunday, cfg.FirstDayOfWeek())
	assert.Equal(t, 1, cfg.MinimalDays())
	assert.Equal(t, "en-GB", cfg.Locale())
	assert.Equal(t, temporal.Lenient, cfg.ResolverStyle())
	assert.Equal(t, OutputJSON, cfg.Output())
	assert.Equal(t, "WARN", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
}

func TestEnvConfig_ToAppConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  EnvConfig
	}{
		{"unknown day", EnvConfig{FirstDayOfWeek: "Funday"}},
		{"min days too small", EnvConfig{MinDays: -1}},
		{"min days too large", EnvConfig{MinDays: 8}},
		{"unknown resolver style", EnvConfig{ResolverStyle: "loose"}},
		{"unknown output", EnvConfig{Output: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.env.ToAppConfig()
			assert.Error(t, err)
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"json", LogFormatJSON},
		{"JSON", LogFormatJSON},
		{"pretty", LogFormatPretty},
		{"PRETTY", LogFormatPretty},
		{"unknown", LogFormatPretty},
		{"", LogFormatPretty},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogFormat(tt.input))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	content := `ISOCAL_LOCALE=de-DE
ISOCAL_LOG_LEVEL=DEBUG
`
	err := os.WriteFile(envFile, []byte(content), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)

	err = LoadDotEnv(envFile)
	require.NoError(t, err)

	assert.Equal(t, "de-DE", os.Getenv("ISOCAL_LOCALE"))
	assert.Equal(t, "DEBUG", os.Getenv("ISOCAL_LOG_LEVEL"))
}

func TestLoadDotEnv_NonExistent(t *testing.T) {
	clearEnvVars(t)

	err := LoadDotEnv("/nonexistent/.env")
	assert.NoError(t, err)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	err := os.WriteFile(envFile, []byte("ISOCAL_OUTPUT=yaml\n"), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)
	t.Setenv("ISOCAL_OUTPUT", "json")

	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "json", os.Getenv("ISOCAL_OUTPUT"))
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	content := `ISOCAL_FIRST_DAY_OF_WEEK=SUNDAY
ISOCAL_MIN_DAYS=1
ISOCAL_LOG_LEVEL=WARN
`
	err := os.WriteFile(envFile, []byte(content), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, temporal.Sunday, cfg.FirstDayOfWeek())
	assert.Equal(t, 1, cfg.MinimalDays())
	assert.Equal(t, "WARN", cfg.LogLevel())

	wf, err := cfg.WeekFields()
	require.NoError(t, err)
	assert.Same(t, temporal.SundayStartWeekFields, wf)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	err := os.WriteFile(envFile, []byte("ISOCAL_RESOLVER_STYLE=fuzzy\n"), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)

	_, err = LoadConfig(envFile)
	assert.Error(t, err)
}

// clearEnvVars unsets every ISOCAL_ variable for the duration of the test.
// t.Setenv registers the cleanup that restores the previous values.
func clearEnvVars(t *testing.T) {
	t.Helper()

	vars := []string{
		"ISOCAL_FIRST_DAY_OF_WEEK",
		"ISOCAL_MIN_DAYS",
		"ISOCAL_LOCALE",
		"ISOCAL_RESOLVER_STYLE",
		"ISOCAL_OUTPUT",
		"ISOCAL_LOG_LEVEL",
		"ISOCAL_LOG_FORMAT",
	}

	for _, v := range vars {
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}
}
