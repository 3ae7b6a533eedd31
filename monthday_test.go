package isocal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/isocal/temporal"
)

func TestMonthDayOf(t *testing.T) {
	tests := []struct {
		name  string
		month temporal.Month
		day   int
		err   error
	}{
		{name: "december 3", month: temporal.December, day: 3},
		{name: "february 29", month: temporal.February, day: 29},
		{name: "february 30", month: temporal.February, day: 30, err: temporal.ErrDateTime},
		{name: "april 31", month: temporal.April, day: 31, err: temporal.ErrDateTime},
		{name: "january 32", month: temporal.January, day: 32, err: temporal.ErrOutOfRange},
		{name: "month 13", month: 13, day: 1, err: temporal.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := MonthDayOf(tt.month, tt.day)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.month, md.Month())
			assert.Equal(t, tt.day, md.DayOfMonth())
		})
	}
}

func TestMonthDay_LeapDay(t *testing.T) {
	md := MonthDay{temporal.February, 29}

	assert.True(t, md.IsValidYear(2012))
	assert.False(t, md.IsValidYear(2011))
	assert.True(t, MonthDay{temporal.February, 28}.IsValidYear(2011))

	d, err := md.AtYear(2011)
	require.NoError(t, err)
	assert.Equal(t, "2011-02-28", d.String())

	d, err = md.AtYear(2012)
	require.NoError(t, err)
	assert.Equal(t, "2012-02-29", d.String())

	_, err = md.AtYear(temporal.MaxYear + 1)
	assert.ErrorIs(t, err, temporal.ErrOutOfRange)
}

func TestMonthDay_With(t *testing.T) {
	md := MonthDay{temporal.March, 31}

	got, err := md.WithMonth(temporal.February)
	require.NoError(t, err)
	assert.Equal(t, MonthDay{temporal.February, 29}, got)

	got, err = md.WithMonth(temporal.April)
	require.NoError(t, err)
	assert.Equal(t, MonthDay{temporal.April, 30}, got)

	_, err = md.WithMonth(0)
	assert.ErrorIs(t, err, temporal.ErrOutOfRange)

	got, err = md.WithDayOfMonth(1)
	require.NoError(t, err)
	assert.Equal(t, MonthDay{temporal.March, 1}, got)

	_, err = MonthDay{temporal.February, 1}.WithDayOfMonth(31)
	assert.ErrorIs(t, err, temporal.ErrDateTime)
}

func TestMonthDay_Range(t *testing.T) {
	tests := []struct {
		md       MonthDay
		field    temporal.Field
		expected string
	}{
		{MonthDay{temporal.February, 1}, temporal.DayOfMonth, "1 - 28/29"},
		{MonthDay{temporal.January, 1}, temporal.DayOfMonth, "1 - 31"},
		{MonthDay{temporal.April, 1}, temporal.DayOfMonth, "1 - 30"},
		{MonthDay{temporal.April, 1}, temporal.MonthOfYear, "1 - 12"},
	}

	for _, tt := range tests {
		r, err := tt.md.Range(tt.field)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, r.String(), "%v %v", tt.md, tt.field)
	}

	_, err := MonthDay{temporal.April, 1}.Range(temporal.Year)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
}

func TestMonthDay_Fields(t *testing.T) {
	md := MonthDay{temporal.December, 3}

	v, err := md.Get(temporal.DayOfMonth)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = md.Get(temporal.MonthOfYear)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	assert.False(t, md.IsSupported(temporal.DayOfYear))
	_, err = md.GetLong(temporal.DayOfYear)
	assert.ErrorIs(t, err, temporal.ErrUnsupportedField)
}

func TestMonthDay_AdjustInto(t *testing.T) {
	tests := []struct {
		date     LocalDate
		md       MonthDay
		expected string
	}{
		{MustDate(2011, temporal.January, 15), MonthDay{temporal.February, 29}, "2011-02-28"},
		{MustDate(2012, temporal.January, 15), MonthDay{temporal.February, 29}, "2012-02-29"},
		{MustDate(2011, temporal.January, 15), MonthDay{temporal.December, 3}, "2011-12-03"},
	}

	for _, tt := range tests {
		got, err := tt.date.Adjust(tt.md)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got.String())
	}
}

func TestMonthDay_Compare(t *testing.T) {
	a := MonthDay{temporal.February, 29}
	b := MonthDay{temporal.March, 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.Equal(t, "--02-29", a.String())
}

func TestMonthDayFrom(t *testing.T) {
	md, err := MonthDayFrom(MustDate(2012, temporal.February, 29))
	require.NoError(t, err)
	assert.Equal(t, MonthDay{temporal.February, 29}, md)

	_, err = MonthDayFrom(Year{2012})
	assert.ErrorIs(t, err, temporal.ErrDateTime)
}
