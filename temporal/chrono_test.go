package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChronoField_Catalog(t *testing.T) {
	tests := []struct {
		field     ChronoField
		name      string
		baseUnit  Unit
		rangeUnit Unit
		rng       string
	}{
		{NanoOfSecond, "NanoOfSecond", Nanos, Seconds, "0 - 999999999"},
		{HourOfDay, "HourOfDay", Hours, Days, "0 - 23"},
		{ClockHourOfAmPm, "ClockHourOfAmPm", Hours, HalfDays, "1 - 12"},
		{DayOfWeekField, "DayOfWeek", Days, Weeks, "1 - 7"},
		{DayOfMonth, "DayOfMonth", Days, Months, "1 - 28/31"},
		{DayOfYear, "DayOfYear", Days, Years, "1 - 365/366"},
		{EpochDay, "EpochDay", Days, Forever, "-365243219162 - 365241780471"},
		{AlignedWeekOfMonth, "AlignedWeekOfMonth", Weeks, Months, "1 - 4/5"},
		{AlignedWeekOfYear, "AlignedWeekOfYear", Weeks, Years, "1 - 53"},
		{MonthOfYear, "MonthOfYear", Months, Years, "1 - 12"},
		{ProlepticMonth, "ProlepticMonth", Months, Forever, "-11999999988 - 11999999999"},
		{YearOfEra, "YearOfEra", Years, Forever, "1 - 999999999/1000000000"},
		{Year, "Year", Years, Forever, "-999999999 - 999999999"},
		{Era, "Era", Eras, Forever, "0 - 1"},
		{OffsetSeconds, "OffsetSeconds", Seconds, Forever, "-64800 - 64800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.field.String())
			assert.Equal(t, tt.baseUnit, tt.field.BaseUnit())
			assert.Equal(t, tt.rangeUnit, tt.field.RangeUnit())
			assert.Equal(t, tt.rng, tt.field.Range().String())
		})
	}
}

func TestChronoField_Classification(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, 30)

	var dateBased, timeBased int
	for _, f := range fields {
		if f.IsDateBased() {
			dateBased++
		}
		if f.IsTimeBased() {
			timeBased++
		}
		assert.False(t, f.IsDateBased() && f.IsTimeBased(), "%v", f)
	}
	assert.Equal(t, 13, dateBased)
	assert.Equal(t, 15, timeBased)

	assert.False(t, InstantSeconds.IsDateBased())
	assert.False(t, InstantSeconds.IsTimeBased())
	assert.True(t, Era.IsDateBased())
	assert.True(t, AmPmOfDay.IsTimeBased())
}

func TestChronoUnit_Catalog(t *testing.T) {
	units := Units()
	require.Len(t, units, 16)

	tests := []struct {
		unit      ChronoUnit
		name      string
		seconds   int64
		estimated bool
	}{
		{Seconds, "Seconds", 1, false},
		{HalfDays, "HalfDays", 43200, false},
		{Days, "Days", 86400, true},
		{Weeks, "Weeks", 604800, true},
		{Months, "Months", 2629746, true},
		{Years, "Years", 31556952, true},
		{Decades, "Decades", 315569520, true},
		{Eras, "Eras", 31556952000000000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.unit.String())
			assert.Equal(t, tt.seconds, tt.unit.Duration().Seconds())
			assert.Equal(t, tt.estimated, tt.unit.IsDurationEstimated())
		})
	}

	assert.Equal(t, int32(1), Nanos.Duration().Nanos())
	assert.Equal(t, int32(999_999_999), Forever.Duration().Nanos())
	assert.False(t, Forever.IsDateBased())
	assert.False(t, Forever.IsTimeBased())
	assert.True(t, Days.IsDateBased())
	assert.True(t, HalfDays.IsTimeBased())
}

func TestDuration(t *testing.T) {
	d := DurationOf(1, -1)
	assert.Equal(t, int64(0), d.Seconds())
	assert.Equal(t, int32(999_999_999), d.Nanos())
	assert.Equal(t, "PT0.999999999S", d.String())
	assert.Equal(t, "PT86400S", Days.Duration().String())

	assert.Equal(t, -1, Hours.Duration().Compare(Days.Duration()))
	assert.Equal(t, 1, Forever.Duration().Compare(Eras.Duration()))
	assert.Equal(t, 0, DurationOf(2, 0).Compare(DurationOf(1, 1_000_000_000)))

	std, ok := Weeks.Duration().Std()
	require.True(t, ok)
	assert.Equal(t, "168h0m0s", std.String())

	_, ok = Forever.Duration().Std()
	assert.False(t, ok)
}

func TestMonth(t *testing.T) {
	assert.Equal(t, "February", February.String())
	assert.Equal(t, 29, February.Length(true))
	assert.Equal(t, 28, February.Length(false))
	assert.Equal(t, 30, April.MaxLength())
	assert.Equal(t, January, December.Plus(1))
	assert.Equal(t, November, January.Minus(2))
	assert.Equal(t, March, March.Plus(-24))
	assert.Equal(t, 61, March.FirstDayOfYear(true))
	assert.Equal(t, 60, March.FirstDayOfYear(false))
	assert.Equal(t, October, December.FirstMonthOfQuarter())

	m, err := ParseMonth("sep")
	require.NoError(t, err)
	assert.Equal(t, September, m)

	_, err = MonthOf(13)
	assert.ErrorIs(t, err, ErrOutOfRange)

	v, err := June.Get(MonthOfYear)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = June.GetLong(DayOfMonth)
	assert.ErrorIs(t, err, ErrUnsupportedField)
	assert.False(t, June.IsSupported(Year))
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, Monday, Sunday.Plus(1))
	assert.Equal(t, Saturday, Monday.Minus(2))
	assert.Equal(t, Wednesday, Wednesday.Plus(-700))

	d, err := ParseDayOfWeek("THU")
	require.NoError(t, err)
	assert.Equal(t, Thursday, d)

	_, err = ParseDayOfWeek("Funday")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = DayOfWeekOf(0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, Sunday, DayOfWeekFromWeekday(Sunday.Weekday()))
	assert.Equal(t, Friday, DayOfWeekFromWeekday(Friday.Weekday()))

	v, err := Friday.Get(DayOfWeekField)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	got, err := DayOfWeekFrom(Tuesday)
	require.NoError(t, err)
	assert.Equal(t, Tuesday, got)
}

func TestResolverStyle(t *testing.T) {
	for _, style := range []ResolverStyle{Strict, Smart, Lenient} {
		parsed, err := ParseResolverStyle(style.String())
		require.NoError(t, err)
		assert.Equal(t, style, parsed)
	}

	_, err := ParseResolverStyle("fuzzy")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
