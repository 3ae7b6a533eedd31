package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal/temporal"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, v := range []string{
		"ISOCAL_FIRST_DAY_OF_WEEK", "ISOCAL_MIN_DAYS", "ISOCAL_LOCALE",
		"ISOCAL_RESOLVER_STYLE", "ISOCAL_OUTPUT", "ISOCAL_LOG_LEVEL", "ISOCAL_LOG_FORMAT",
	} {
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}

	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestWeekCommand_JSON(t *testing.T) {
	out, _, err := run(t, "week", "2008-12-29", "-o", "json")
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	assert.Equal(t, "WeekFields[Monday,4]", data["week_fields"])
	assert.Equal(t, float64(2009), data["week_based_year"])
	assert.Equal(t, float64(1), data["week_of_week_based_year"])
}

func TestWeekCommand_Locale(t *testing.T) {
	out, _, err := run(t, "--locale", "en-US", "week", "2008-12-28")
	require.NoError(t, err)

	assert.Contains(t, out, "WeekFields[Sunday,1]")
	assert.Contains(t, out, "2008-W52-7")
}

func TestWeekCommand_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ISOCAL_OUTPUT", "json")

	var stdout bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "none"), "--first-day", "sat", "--min-days", "1", "-o", "yaml", "week", "2024-03-01"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "week_fields: WeekFields[Saturday,1]")
}

func TestWeekCommand_SeveralDates(t *testing.T) {
	out, _, err := run(t, "week", "2008-12-29", "2010-01-03", "-o", "json")
	require.NoError(t, err)

	var data []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	require.Len(t, data, 2)
	assert.Equal(t, "2008-12-29", data[0]["date"])
	assert.Equal(t, float64(53), data[1]["week_of_week_based_year"])
}

func TestWeekCommand_InvalidDate(t *testing.T) {
	_, _, err := run(t, "week", "2009-02-29")
	assert.ErrorIs(t, err, temporal.ErrDateTime)
}

func TestWeekCommand_InvalidMinDays(t *testing.T) {
	_, _, err := run(t, "--min-days", "8", "week", "2009-01-01")
	assert.ErrorIs(t, err, temporal.ErrInvalidArgument)
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"year month day", []string{"Year=2009", "MonthOfYear=2", "DayOfMonth=28"}, "2009-02-28"},
		{"smart clamps day of month", []string{"Year=2009", "MonthOfYear=2", "DayOfMonth=30"}, "2009-02-28"},
		{"lenient rolls over", []string{"--style", "lenient", "Year=2009", "MonthOfYear=2", "DayOfMonth=30"}, "2009-03-02"},
		{"iso week date", []string{"iso.WeekBasedYear=2009", "iso.WeekOfWeekBasedYear=1", "DayOfWeek=1"}, "2008-12-29"},
		{"localized week date", []string{"week.WeekBasedYear=2009", "week.WeekOfWeekBasedYear=1", "week.DayOfWeek=1"}, "2008-12-29"},
		{"julian day", []string{"JulianDay=2440588"}, "1970-01-01"},
		{"case insensitive", []string{"year=2012", "dayofyear=60"}, "2012-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"resolve", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)

			var data map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &data))
			assert.Equal(t, true, data["resolved"])
			assert.Equal(t, tt.expected, data["date"])
		})
	}
}

func TestResolveCommand_StrictRejects(t *testing.T) {
	_, _, err := run(t, "resolve", "--style", "strict", "Year=2009", "MonthOfYear=2", "DayOfMonth=29")
	assert.ErrorIs(t, err, temporal.ErrDateTime)
}

func TestResolveCommand_StyleFromEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ISOCAL_RESOLVER_STYLE=strict\n"), 0o644))

	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	t.Setenv("ISOCAL_RESOLVER_STYLE", "")
	_ = os.Unsetenv("ISOCAL_RESOLVER_STYLE")
	cmd.SetArgs([]string{"--env-file", envFile, "resolve", "Year=2009", "MonthOfYear=2", "DayOfMonth=30"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, temporal.ErrDateTime)
}

func TestResolveCommand_Unresolved(t *testing.T) {
	out, _, err := run(t, "resolve", "MonthOfYear=2")
	require.NoError(t, err)
	assert.Contains(t, out, "(unresolved)")
	assert.Contains(t, out, "MonthOfYear=2")
}

func TestResolveCommand_BadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing value", []string{"Year"}},
		{"unknown field", []string{"Fortnight=2"}},
		{"not a number", []string{"Year=twenty"}},
		{"duplicate", []string{"Year=2009", "year=2010"}},
		{"unknown style", []string{"--style", "fuzzy", "Year=2009"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"resolve"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestAdjustCommand(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"2011-12-15", "next", "monday"}, "2011-12-19"},
		{[]string{"2011-12-15", "previous-or-same", "thu"}, "2011-12-15"},
		{[]string{"2011-12-15", "last-day-of-month"}, "2011-12-31"},
		{[]string{"2011-12-15", "first-day-of-next-year"}, "2012-01-01"},
		{[]string{"2011-12-15", "last-in-month", "monday"}, "2011-12-26"},
		{[]string{"2011-12-15", "day-of-week-in-month", "2", "friday"}, "2011-12-09"},
		{[]string{"--", "2011-12-15", "day-of-week-in-month", "-1", "friday"}, "2011-12-30"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, append([]string{"adjust", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)

			var data map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &data))
			assert.Equal(t, tt.expected, data["result"])
		})
	}
}

func TestAdjustCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown adjuster", []string{"2011-12-15", "someday"}},
		{"missing day", []string{"2011-12-15", "next"}},
		{"extra argument", []string{"2011-12-15", "first-day-of-month", "monday"}},
		{"bad day", []string{"2011-12-15", "next", "moonday"}},
		{"bad ordinal", []string{"2011-12-15", "day-of-week-in-month", "x", "friday"}},
		{"bad date", []string{"2011-13-15", "next", "monday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"adjust"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "adjust", "2011-12-15", "next", "monday")
	require.NoError(t, err)

	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "command=adjust")
	assert.Contains(t, stderr, "result=2011-12-19")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "isocal version dev")
}

func TestParseField(t *testing.T) {
	wf := temporal.SundayStartWeekFields

	tests := []struct {
		name     string
		expected temporal.Field
	}{
		{"DayOfWeek", temporal.DayOfWeekField},
		{"EpochDay", temporal.EpochDay},
		{"ModifiedJulianDay", temporal.ModifiedJulianDay},
		{"iso.WeekBasedYear", temporal.WeekBasedYear},
		{"ISO.quarterofyear", temporal.QuarterOfYear},
		{"week.DayOfWeek", wf.DayOfWeek()},
		{"week.WeekOfMonth", wf.WeekOfMonth()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseField(tt.name, wf)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := parseField("WeekBasedYear", wf)
	assert.Error(t, err, "week-based-year needs a prefix")
}
