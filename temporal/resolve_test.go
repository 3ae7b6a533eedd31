package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/temporal"
)

func TestFieldValues(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(temporal.Year, 2009)
	values.Put(temporal.MonthOfYear, 2)
	values.Put(temporal.DayOfMonth, 28)
	values.Put(temporal.Year, 2010)

	assert.Equal(t, 3, values.Len())
	assert.Equal(t, []temporal.Field{temporal.Year, temporal.MonthOfYear, temporal.DayOfMonth}, values.Fields())
	assert.Equal(t, "{Year=2010, MonthOfYear=2, DayOfMonth=28}", values.String())

	v, ok := values.Remove(temporal.MonthOfYear)
	assert.True(t, ok)
	assert.Equal(t, int64(2), v)
	assert.False(t, values.Contains(temporal.MonthOfYear))
	assert.Equal(t, []temporal.Field{temporal.Year, temporal.DayOfMonth}, values.Fields())

	_, ok = values.Remove(temporal.MonthOfYear)
	assert.False(t, ok)

	values.Put(temporal.MonthOfYear, 3)
	assert.Equal(t, []temporal.Field{temporal.Year, temporal.DayOfMonth, temporal.MonthOfYear}, values.Fields())
}

func TestFieldValues_FieldsIsSnapshot(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(temporal.Year, 2009)
	fields := values.Fields()
	values.Put(temporal.MonthOfYear, 1)

	assert.Len(t, fields, 1)
}

func TestResolve_ChronoFields(t *testing.T) {
	type entry struct {
		field temporal.Field
		value int64
	}
	tests := []struct {
		name     string
		entries  []entry
		style    temporal.ResolverStyle
		expected string
		err      error
	}{
		{
			name:     "year month day",
			entries:  []entry{{temporal.Year, 2009}, {temporal.MonthOfYear, 2}, {temporal.DayOfMonth, 28}},
			style:    temporal.Strict,
			expected: "2009-02-28",
		},
		{
			name:    "strict rejects february 29",
			entries: []entry{{temporal.Year, 2009}, {temporal.MonthOfYear, 2}, {temporal.DayOfMonth, 29}},
			style:   temporal.Strict,
			err:     temporal.ErrDateTime,
		},
		{
			name:     "epoch day",
			entries:  []entry{{temporal.EpochDay, 14242}},
			style:    temporal.Strict,
			expected: "2008-12-29",
		},
		{
			name:     "day of year checks month",
			entries:  []entry{{temporal.Year, 2012}, {temporal.DayOfYear, 60}, {temporal.MonthOfYear, 2}},
			style:    temporal.Smart,
			expected: "2012-02-29",
		},
		{
			name:    "day of year conflicts with month",
			entries: []entry{{temporal.Year, 2012}, {temporal.DayOfYear, 60}, {temporal.MonthOfYear, 3}},
			style:   temporal.Smart,
			err:     temporal.ErrConflict,
		},
		{
			name:     "day of week agrees",
			entries:  []entry{{temporal.Year, 2012}, {temporal.DayOfYear, 60}, {temporal.DayOfWeekField, 3}},
			style:    temporal.Smart,
			expected: "2012-02-29",
		},
		{
			name:    "day of week conflicts",
			entries: []entry{{temporal.Year, 2012}, {temporal.DayOfYear, 60}, {temporal.DayOfWeekField, 4}},
			style:   temporal.Smart,
			err:     temporal.ErrConflict,
		},
		{
			name:    "julian day conflicts with epoch day",
			entries: []entry{{temporal.EpochDay, 0}, {temporal.JulianDay, 2440589}},
			style:   temporal.Smart,
			err:     temporal.ErrConflict,
		},
		{
			name:     "julian day agrees with epoch day",
			entries:  []entry{{temporal.EpochDay, 0}, {temporal.JulianDay, 2440588}},
			style:    temporal.Smart,
			expected: "1970-01-01",
		},
		{
			name:     "iso week date agrees with epoch day",
			entries:  []entry{{temporal.WeekBasedYear, 2009}, {temporal.WeekOfWeekBasedYear, 1}, {temporal.DayOfWeekField, 1}, {temporal.EpochDay, 14242}},
			style:    temporal.Strict,
			expected: "2008-12-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := temporal.NewFieldValues()
			for _, e := range tt.entries {
				values.Put(e.field, e.value)
			}

			date, err := temporal.Resolve(values, isocal.ISO, tt.style)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, date)
			assert.Equal(t, tt.expected, date.(isocal.LocalDate).String())
			assert.Equal(t, 0, values.Len(), "%v", values)
		})
	}
}

func TestResolve_NothingToResolve(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(temporal.MonthOfYear, 2)
	values.Put(temporal.DayOfMonth, 3)

	date, err := temporal.Resolve(values, isocal.ISO, temporal.Smart)
	require.NoError(t, err)
	assert.Nil(t, date)
	assert.Equal(t, 2, values.Len())
}

func TestResolve_TimeFieldsRemain(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(temporal.Year, 2009)
	values.Put(temporal.DayOfYear, 1)
	values.Put(temporal.HourOfDay, 13)

	date, err := temporal.Resolve(values, isocal.ISO, temporal.Smart)
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, int64(14245), date.ToEpochDay())

	hour, ok := values.Get(temporal.HourOfDay)
	assert.True(t, ok)
	assert.Equal(t, int64(13), hour)
}

// restlessField replaces itself on every resolve pass.
type restlessField struct {
	temporal.ChronoField
	generation int
}

func (f restlessField) Resolve(values *temporal.FieldValues, _ temporal.Chronology, _ temporal.ResolverStyle) (temporal.Date, error) {
	v, _ := values.Remove(f)
	values.Put(restlessField{f.ChronoField, f.generation + 1}, v)
	return nil, nil
}

func TestResolve_DoesNotConverge(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(restlessField{ChronoField: temporal.DayOfMonth}, 1)

	_, err := temporal.Resolve(values, isocal.ISO, temporal.Smart)
	require.ErrorIs(t, err, temporal.ErrDateTime)
	assert.Contains(t, err.Error(), "did not converge")
}
