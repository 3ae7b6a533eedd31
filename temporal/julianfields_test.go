package temporal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/temporal"
)

func TestJulianFields_GetFrom(t *testing.T) {
	tests := []struct {
		date     isocal.LocalDate
		field    temporal.JulianField
		expected int64
	}{
		{isocal.MustDate(1970, temporal.January, 1), temporal.JulianDay, 2440588},
		{isocal.MustDate(1970, temporal.January, 1), temporal.ModifiedJulianDay, 40587},
		{isocal.MustDate(1970, temporal.January, 1), temporal.RataDie, 719163},
		{isocal.MustDate(2000, temporal.January, 1), temporal.JulianDay, 2451545},
		{isocal.MustDate(1858, temporal.November, 17), temporal.ModifiedJulianDay, 0},
		{isocal.MustDate(1, temporal.January, 1), temporal.RataDie, 1},
		{isocal.MustDate(-4713, temporal.November, 24), temporal.JulianDay, 0},
	}

	for _, tt := range tests {
		t.Run(tt.field.String()+" "+tt.date.String(), func(t *testing.T) {
			got, err := tt.date.GetLong(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJulianFields_Properties(t *testing.T) {
	for _, f := range []temporal.JulianField{temporal.JulianDay, temporal.ModifiedJulianDay, temporal.RataDie} {
		assert.Equal(t, temporal.Days, f.BaseUnit())
		assert.Equal(t, temporal.Forever, f.RangeUnit())
		assert.True(t, f.IsDateBased())
		assert.False(t, f.IsTimeBased())
	}
	assert.Equal(t, "ModifiedJulianDay", temporal.ModifiedJulianDay.String())
	assert.Equal(t, temporal.EpochDay.Range().Minimum()+2440588, temporal.JulianDay.Range().Minimum())
}

func TestJulianFields_Unsupported(t *testing.T) {
	year, err := isocal.YearOf(2000)
	require.NoError(t, err)

	assert.False(t, year.IsSupported(temporal.JulianDay))
	_, err = year.GetLong(temporal.JulianDay)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
	_, err = temporal.RataDie.RangeRefinedBy(year)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
}

func TestJulianFields_AdjustInto(t *testing.T) {
	date := isocal.MustDate(2011, temporal.December, 15)

	got, err := date.WithField(temporal.JulianDay, 2440588)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01", got.String())

	got, err = date.WithField(temporal.ModifiedJulianDay, 0)
	require.NoError(t, err)
	assert.Equal(t, "1858-11-17", got.String())

	_, err = date.WithField(temporal.RataDie, math.MaxInt64)
	assert.ErrorIs(t, err, temporal.ErrOutOfRange)
}

func TestJulianFields_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		field    temporal.JulianField
		value    int64
		style    temporal.ResolverStyle
		expected string
	}{
		{"julian day smart", temporal.JulianDay, 2451545, temporal.Smart, "2000-01-01"},
		{"julian day strict", temporal.JulianDay, 2440588, temporal.Strict, "1970-01-01"},
		{"modified julian day", temporal.ModifiedJulianDay, 40587, temporal.Smart, "1970-01-01"},
		{"rata die lenient", temporal.RataDie, 1, temporal.Lenient, "0001-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := temporal.NewFieldValues()
			values.Put(tt.field, tt.value)

			date, ok, err := isocal.ResolveDate(values, tt.style)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.expected, date.String())
			assert.Equal(t, 0, values.Len())
		})
	}
}

func TestJulianFields_ResolveOutOfRange(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(temporal.JulianDay, math.MaxInt64)

	_, _, err := isocal.ResolveDate(values, temporal.Smart)
	assert.ErrorIs(t, err, temporal.ErrOutOfRange)
}

func TestJulianFields_ResolveCrossCheck(t *testing.T) {
	values := temporal.NewFieldValues()
	values.Put(temporal.JulianDay, 2440588)
	values.Put(temporal.Year, 1970)

	date, ok, err := isocal.ResolveDate(values, temporal.Smart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1970-01-01", date.String())

	values = temporal.NewFieldValues()
	values.Put(temporal.JulianDay, 2440588)
	values.Put(temporal.Year, 1971)

	_, _, err = isocal.ResolveDate(values, temporal.Smart)
	assert.ErrorIs(t, err, temporal.ErrConflict)
}
