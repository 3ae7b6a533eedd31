package isocal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal/temporal"
)

func TestYear(t *testing.T) {
	y, err := YearOf(2012)
	require.NoError(t, err)

	assert.Equal(t, 2012, y.Value())
	assert.True(t, y.IsLeap())
	assert.Equal(t, 366, y.Length())
	assert.Equal(t, "2012", y.String())
	assert.True(t, y.IsValidMonthDay(MonthDay{temporal.February, 29}))
	assert.False(t, Year{2011}.IsValidMonthDay(MonthDay{temporal.February, 29}))
	assert.True(t, IsLeapYear(2000))

	_, err = YearOf(temporal.MaxYear + 1)
	assert.ErrorIs(t, err, temporal.ErrOutOfRange)
}

func TestYear_Fields(t *testing.T) {
	tests := []struct {
		year      int
		yearOfEra int64
		era       int64
		yoeRange  string
	}{
		{2012, 2012, 1, "1 - 999999999"},
		{0, 1, 0, "1 - 1000000000"},
		{-2011, 2012, 0, "1 - 1000000000"},
	}

	for _, tt := range tests {
		y := Year{tt.year}
		yoe, err := y.GetLong(temporal.YearOfEra)
		require.NoError(t, err)
		assert.Equal(t, tt.yearOfEra, yoe)

		era, err := y.Get(temporal.Era)
		require.NoError(t, err)
		assert.Equal(t, tt.era, int64(era))

		r, err := y.Range(temporal.YearOfEra)
		require.NoError(t, err)
		assert.Equal(t, tt.yoeRange, r.String())
	}

	y := Year{2012}
	assert.True(t, y.IsSupported(temporal.Era))
	assert.False(t, y.IsSupported(temporal.MonthOfYear))
	_, err := y.Get(temporal.MonthOfYear)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
	_, err = y.Range(temporal.DayOfYear)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
}

func TestYear_WithField(t *testing.T) {
	y := Year{2012}

	got, err := y.WithField(temporal.Era, 0)
	require.NoError(t, err)
	assert.Equal(t, Year{-2011}, got)

	got, err = Year{-2011}.WithField(temporal.YearOfEra, 5)
	require.NoError(t, err)
	assert.Equal(t, Year{-4}, got)

	got, err = y.WithField(temporal.Year, 1999)
	require.NoError(t, err)
	assert.Equal(t, Year{1999}, got)

	_, err = y.WithField(temporal.MonthOfYear, 1)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
}

func TestYear_Plus(t *testing.T) {
	y := Year{2012}

	tests := []struct {
		amount   int64
		unit     temporal.Unit
		expected int
	}{
		{1, temporal.Years, 2013},
		{-2, temporal.Decades, 1992},
		{1, temporal.Centuries, 2112},
		{1, temporal.Millennia, 3012},
		{-1, temporal.Eras, -2011},
	}

	for _, tt := range tests {
		got, err := y.PlusUnit(tt.amount, tt.unit)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got.Value(), "%d %v", tt.amount, tt.unit)
	}

	got, err := y.MinusUnit(12, temporal.Years)
	require.NoError(t, err)
	assert.Equal(t, 2000, got.Value())

	_, err = y.PlusUnit(1, temporal.Months)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedUnit)

	_, err = Year{temporal.MaxYear}.PlusYears(1)
	assert.ErrorIs(t, err, temporal.ErrOutOfRange)
}

func TestYear_Until(t *testing.T) {
	y := Year{2012}

	n, err := y.Until(Year{2031}, temporal.Decades)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = y.Until(MustDate(2000, temporal.June, 1), temporal.Years)
	require.NoError(t, err)
	assert.Equal(t, int64(-12), n)

	_, err = y.Until(Year{2031}, temporal.Days)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedUnit)
}

func TestYear_At(t *testing.T) {
	y := Year{2011}

	d, err := y.AtDay(365)
	require.NoError(t, err)
	assert.Equal(t, "2011-12-31", d.String())

	_, err = y.AtDay(366)
	assert.ErrorIs(t, err, temporal.ErrDateTime)

	ym, err := y.AtMonth(temporal.June)
	require.NoError(t, err)
	assert.Equal(t, "2011-06", ym.String())

	assert.Equal(t, "2011-02-28", y.AtMonthDay(MonthDay{temporal.February, 29}).String())
}

func TestYear_AdjustInto(t *testing.T) {
	got, err := MustDate(2012, temporal.February, 29).Adjust(Year{2011})
	require.NoError(t, err)
	assert.Equal(t, "2011-02-28", got.String())
}

func TestYearFrom(t *testing.T) {
	y, err := YearFrom(MustDate(2011, temporal.December, 15))
	require.NoError(t, err)
	assert.Equal(t, Year{2011}, y)

	_, err = YearFrom(MonthDay{temporal.May, 1})
	assert.ErrorIs(t, err, temporal.ErrDateTime)
}

func TestYear_Compare(t *testing.T) {
	assert.Equal(t, -1, Year{2011}.Compare(Year{2012}))
	assert.True(t, Year{2011}.IsBefore(Year{2012}))
	assert.True(t, Year{2012}.IsAfter(Year{2011}))
	assert.False(t, Year{2012}.IsAfter(Year{2012}))
}
