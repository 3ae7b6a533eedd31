package isocal

import (
	"cmp"
	"fmt"
	"time"

	"github.com/helixml/isocal/temporal"
)

// LocalDate is a date without a time-zone in the ISO-8601 calendar system,
// such as 2007-12-03. The zero value is not a valid date.
type LocalDate struct {
	year  int
	month temporal.Month
	day   int
}

var _ temporal.Date = LocalDate{}

// Date range bounds.
var (
	MinDate = LocalDate{temporal.MinYear, temporal.January, 1}
	MaxDate = LocalDate{temporal.MaxYear, temporal.December, 31}
)

// OfDate returns the date for a year, month and day-of-month.
func OfDate(year int, month temporal.Month, day int) (LocalDate, error) {
	if _, err := temporal.Year.CheckValidValue(int64(year)); err != nil {
		return LocalDate{}, err
	}
	if _, err := temporal.MonthOfYear.CheckValidValue(int64(month)); err != nil {
		return LocalDate{}, err
	}
	if _, err := temporal.DayOfMonth.CheckValidValue(int64(day)); err != nil {
		return LocalDate{}, err
	}
	if day > 28 && day > month.Length(temporal.IsLeapYear(int64(year))) {
		if day == 29 {
			return LocalDate{}, fmt.Errorf("%w: invalid date 'February 29' as '%d' is not a leap year",
				temporal.ErrDateTime, year)
		}
		return LocalDate{}, fmt.Errorf("%w: invalid date '%v %d'", temporal.ErrDateTime, month, day)
	}
	return LocalDate{year, month, day}, nil
}

// MustDate is like OfDate but panics on an invalid date.
func MustDate(year int, month temporal.Month, day int) LocalDate {
	d, err := OfDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// OfYearDay returns the date for a year and day-of-year.
func OfYearDay(year, dayOfYear int) (LocalDate, error) {
	if _, err := temporal.Year.CheckValidValue(int64(year)); err != nil {
		return LocalDate{}, err
	}
	if _, err := temporal.DayOfYear.CheckValidValue(int64(dayOfYear)); err != nil {
		return LocalDate{}, err
	}
	leap := temporal.IsLeapYear(int64(year))
	if dayOfYear == 366 && !leap {
		return LocalDate{}, fmt.Errorf("%w: invalid date 'DayOfYear 366' as '%d' is not a leap year",
			temporal.ErrDateTime, year)
	}
	moy := temporal.Month((dayOfYear-1)/31 + 1)
	monthEnd := moy.FirstDayOfYear(leap) + moy.Length(leap) - 1
	if dayOfYear > monthEnd {
		moy = moy.Plus(1)
	}
	dom := dayOfYear - moy.FirstDayOfYear(leap) + 1
	return LocalDate{year, moy, dom}, nil
}

// OfEpochDay returns the date the given number of days after 1970-01-01.
func OfEpochDay(epochDay int64) (LocalDate, error) {
	if _, err := temporal.EpochDay.CheckValidValue(epochDay); err != nil {
		return LocalDate{}, err
	}
	y, m, d := temporal.CivilFromEpochDay(epochDay)
	return LocalDate{y, temporal.Month(m), d}, nil
}

// FromTime returns the date of t in its location.
func FromTime(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{y, temporal.MonthFromTime(m), d}
}

// Today returns the current date in the local time-zone.
func Today() LocalDate { return FromTime(time.Now()) }

// LocalDateFrom obtains a date from any accessor supporting EpochDay.
func LocalDateFrom(acc temporal.Accessor) (LocalDate, error) {
	if d, ok := acc.(LocalDate); ok {
		return d, nil
	}
	if acc == nil || !acc.IsSupported(temporal.EpochDay) {
		return LocalDate{}, fmt.Errorf("%w: unable to obtain LocalDate from %T", temporal.ErrDateTime, acc)
	}
	ed, err := acc.GetLong(temporal.EpochDay)
	if err != nil {
		return LocalDate{}, err
	}
	return OfEpochDay(ed)
}

// Year returns the proleptic year.
func (d LocalDate) Year() int { return d.year }

// Month returns the month-of-year.
func (d LocalDate) Month() temporal.Month { return d.month }

// MonthValue returns the month-of-year from 1 to 12.
func (d LocalDate) MonthValue() int { return d.month.Value() }

// DayOfMonth returns the day-of-month.
func (d LocalDate) DayOfMonth() int { return d.day }

// DayOfYear returns the day-of-year from 1 to 366.
func (d LocalDate) DayOfYear() int {
	return d.month.FirstDayOfYear(d.IsLeapYear()) + d.day - 1
}

// DayOfWeek returns the ISO day-of-week.
func (d LocalDate) DayOfWeek() temporal.DayOfWeek {
	return temporal.DayOfWeekOfEpochDay(d.ToEpochDay())
}

// IsLeapYear reports whether the year is a leap year.
func (d LocalDate) IsLeapYear() bool { return temporal.IsLeapYear(int64(d.year)) }

// LengthOfMonth returns the number of days in the month.
func (d LocalDate) LengthOfMonth() int { return d.month.Length(d.IsLeapYear()) }

// LengthOfYear returns 365 or 366.
func (d LocalDate) LengthOfYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// ToEpochDay returns the number of days since 1970-01-01.
func (d LocalDate) ToEpochDay() int64 {
	return temporal.EpochDayOf(d.year, d.month.Value(), d.day)
}

// Chronology returns ISO.
func (d LocalDate) Chronology() temporal.Chronology { return ISO }

func (d LocalDate) prolepticMonth() int64 {
	return int64(d.year)*12 + int64(d.month) - 1
}

// IsSupported reports whether field can be read from the date.
func (d LocalDate) IsSupported(field temporal.Field) bool {
	if cf, ok := field.(temporal.ChronoField); ok {
		return cf.IsDateBased()
	}
	return field != nil && field.IsSupportedBy(d)
}

// IsUnitSupported reports whether unit can be added to the date.
func (d LocalDate) IsUnitSupported(unit temporal.Unit) bool {
	if cu, ok := unit.(temporal.ChronoUnit); ok {
		return cu.IsDateBased()
	}
	return unit != nil && unit.IsSupportedBy(d)
}

// Range returns the range of field refined by this date, for example
// DayOfMonth is 1 to 30 in April.
func (d LocalDate) Range(field temporal.Field) (temporal.ValueRange, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return field.RangeRefinedBy(d)
	}
	if !cf.IsDateBased() {
		return temporal.ValueRange{}, temporal.UnsupportedField(cf)
	}
	switch cf {
	case temporal.DayOfMonth:
		return temporal.RangeOf(1, int64(d.LengthOfMonth()))
	case temporal.DayOfYear:
		return temporal.RangeOf(1, int64(d.LengthOfYear()))
	case temporal.AlignedWeekOfMonth:
		if d.month == temporal.February && !d.IsLeapYear() {
			return temporal.RangeOf(1, 4)
		}
		return temporal.RangeOf(1, 5)
	case temporal.YearOfEra:
		if d.year <= 0 {
			return temporal.RangeOf(1, temporal.MaxYear+1)
		}
		return temporal.RangeOf(1, temporal.MaxYear)
	}
	return cf.Range(), nil
}

// Get returns the value of field as an int.
func (d LocalDate) Get(field temporal.Field) (int, error) {
	if cf, ok := field.(temporal.ChronoField); ok {
		return d.get(cf)
	}
	return temporal.GetInt(d, field)
}

// GetLong returns the value of field.
func (d LocalDate) GetLong(field temporal.Field) (int64, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return field.GetFrom(d)
	}
	switch cf {
	case temporal.EpochDay:
		return d.ToEpochDay(), nil
	case temporal.ProlepticMonth:
		return d.prolepticMonth(), nil
	}
	v, err := d.get(cf)
	return int64(v), err
}

func (d LocalDate) get(field temporal.ChronoField) (int, error) {
	switch field {
	case temporal.DayOfWeekField:
		return d.DayOfWeek().Value(), nil
	case temporal.AlignedDayOfWeekInMonth:
		return (d.day-1)%7 + 1, nil
	case temporal.AlignedDayOfWeekInYear:
		return (d.DayOfYear()-1)%7 + 1, nil
	case temporal.DayOfMonth:
		return d.day, nil
	case temporal.DayOfYear:
		return d.DayOfYear(), nil
	case temporal.EpochDay, temporal.ProlepticMonth:
		return 0, fmt.Errorf("%w: invalid field %v for Get, use GetLong instead",
			temporal.ErrUnsupportedField, field)
	case temporal.AlignedWeekOfMonth:
		return (d.day-1)/7 + 1, nil
	case temporal.AlignedWeekOfYear:
		return (d.DayOfYear()-1)/7 + 1, nil
	case temporal.MonthOfYear:
		return d.month.Value(), nil
	case temporal.YearOfEra:
		if d.year >= 1 {
			return d.year, nil
		}
		return 1 - d.year, nil
	case temporal.Year:
		return d.year, nil
	case temporal.Era:
		if d.year >= 1 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, temporal.UnsupportedField(field)
}

// With returns a copy of the date with field set to newValue.
func (d LocalDate) With(field temporal.Field, newValue int64) (temporal.Temporal, error) {
	return d.WithField(field, newValue)
}

// WithField is With returning a LocalDate.
func (d LocalDate) WithField(field temporal.Field, newValue int64) (LocalDate, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return toLocalDate(field.AdjustInto(d, newValue))
	}
	if !cf.IsDateBased() {
		return LocalDate{}, temporal.UnsupportedField(cf)
	}
	if _, err := cf.CheckValidValue(newValue); err != nil {
		return LocalDate{}, err
	}
	switch cf {
	case temporal.DayOfWeekField:
		return d.PlusDays(newValue - int64(d.DayOfWeek().Value()))
	case temporal.AlignedDayOfWeekInMonth, temporal.AlignedDayOfWeekInYear:
		cur, err := d.get(cf)
		if err != nil {
			return LocalDate{}, err
		}
		return d.PlusDays(newValue - int64(cur))
	case temporal.DayOfMonth:
		return d.WithDayOfMonth(int(newValue))
	case temporal.DayOfYear:
		return d.WithDayOfYear(int(newValue))
	case temporal.EpochDay:
		return OfEpochDay(newValue)
	case temporal.AlignedWeekOfMonth, temporal.AlignedWeekOfYear:
		cur, err := d.get(cf)
		if err != nil {
			return LocalDate{}, err
		}
		return d.PlusWeeks(newValue - int64(cur))
	case temporal.MonthOfYear:
		return d.WithMonth(temporal.Month(newValue))
	case temporal.ProlepticMonth:
		return d.PlusMonths(newValue - d.prolepticMonth())
	case temporal.YearOfEra:
		if d.year >= 1 {
			return d.WithYear(int(newValue))
		}
		return d.WithYear(int(1 - newValue))
	case temporal.Year:
		return d.WithYear(int(newValue))
	case temporal.Era:
		era, _ := d.get(temporal.Era)
		if int64(era) == newValue {
			return d, nil
		}
		return d.WithYear(1 - d.year)
	}
	return LocalDate{}, temporal.UnsupportedField(cf)
}

// WithYear changes the year, moving February 29 to February 28 when needed.
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	if d.year == year {
		return d, nil
	}
	if _, err := temporal.Year.CheckValidValue(int64(year)); err != nil {
		return LocalDate{}, err
	}
	return previousValid(year, d.month, d.day), nil
}

// WithMonth changes the month, clamping the day to the month's length.
func (d LocalDate) WithMonth(month temporal.Month) (LocalDate, error) {
	if d.month == month {
		return d, nil
	}
	if _, err := temporal.MonthOfYear.CheckValidValue(int64(month)); err != nil {
		return LocalDate{}, err
	}
	return previousValid(d.year, month, d.day), nil
}

// WithDayOfMonth changes the day-of-month.
func (d LocalDate) WithDayOfMonth(day int) (LocalDate, error) {
	if d.day == day {
		return d, nil
	}
	return OfDate(d.year, d.month, day)
}

// WithDayOfYear changes the day-of-year.
func (d LocalDate) WithDayOfYear(dayOfYear int) (LocalDate, error) {
	if d.DayOfYear() == dayOfYear {
		return d, nil
	}
	return OfYearDay(d.year, dayOfYear)
}

func previousValid(year int, month temporal.Month, day int) LocalDate {
	return LocalDate{year, month, min(day, month.Length(temporal.IsLeapYear(int64(year))))}
}

// Adjust applies the adjusters in order.
func (d LocalDate) Adjust(adjusters ...temporal.Adjuster) (LocalDate, error) {
	return toLocalDate(temporal.Adjust(d, adjusters...))
}

// Plus returns a copy of the date with amount of unit added.
func (d LocalDate) Plus(amount int64, unit temporal.Unit) (temporal.Temporal, error) {
	return d.PlusUnit(amount, unit)
}

// PlusUnit is Plus returning a LocalDate.
func (d LocalDate) PlusUnit(amount int64, unit temporal.Unit) (LocalDate, error) {
	cu, ok := unit.(temporal.ChronoUnit)
	if !ok {
		return toLocalDate(unit.AddTo(d, amount))
	}
	switch cu {
	case temporal.Days:
		return d.PlusDays(amount)
	case temporal.Weeks:
		return d.PlusWeeks(amount)
	case temporal.Months:
		return d.PlusMonths(amount)
	case temporal.Years:
		return d.PlusYears(amount)
	case temporal.Decades, temporal.Centuries, temporal.Millennia:
		years, err := temporal.MultiplyExact(amount, yearsPerUnit[cu])
		if err != nil {
			return LocalDate{}, err
		}
		return d.PlusYears(years)
	case temporal.Eras:
		era, _ := d.get(temporal.Era)
		newEra, err := temporal.AddExact(int64(era), amount)
		if err != nil {
			return LocalDate{}, err
		}
		return d.WithField(temporal.Era, newEra)
	}
	return LocalDate{}, temporal.UnsupportedUnit(cu)
}

var yearsPerUnit = map[temporal.ChronoUnit]int64{
	temporal.Years:     1,
	temporal.Decades:   10,
	temporal.Centuries: 100,
	temporal.Millennia: 1000,
}

// MinusUnit returns a copy of the date with amount of unit subtracted.
func (d LocalDate) MinusUnit(amount int64, unit temporal.Unit) (LocalDate, error) {
	return toLocalDate(temporal.Minus(d, amount, unit))
}

// PlusDays adds days.
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := temporal.AddExact(d.ToEpochDay(), days)
	if err != nil {
		return LocalDate{}, err
	}
	return OfEpochDay(ed)
}

// PlusWeeks adds weeks.
func (d LocalDate) PlusWeeks(weeks int64) (LocalDate, error) {
	days, err := temporal.MultiplyExact(weeks, 7)
	if err != nil {
		return LocalDate{}, err
	}
	return d.PlusDays(days)
}

// PlusMonths adds months, clamping the day to the end of the resulting month.
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	calc, err := temporal.AddExact(d.prolepticMonth(), months)
	if err != nil {
		return LocalDate{}, err
	}
	year, err := temporal.Year.CheckValidIntValue(temporal.FloorDiv(calc, 12))
	if err != nil {
		return LocalDate{}, err
	}
	month := temporal.Month(temporal.FloorMod(calc, 12) + 1)
	return previousValid(year, month, d.day), nil
}

// PlusYears adds years, moving February 29 to February 28 when needed.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	calc, err := temporal.AddExact(int64(d.year), years)
	if err != nil {
		return LocalDate{}, err
	}
	year, err := temporal.Year.CheckValidIntValue(calc)
	if err != nil {
		return LocalDate{}, err
	}
	return previousValid(year, d.month, d.day), nil
}

// Until returns the amount of unit from this date to end, truncated toward zero.
func (d LocalDate) Until(end temporal.Temporal, unit temporal.Unit) (int64, error) {
	other, err := LocalDateFrom(end)
	if err != nil {
		return 0, err
	}
	cu, ok := unit.(temporal.ChronoUnit)
	if !ok {
		return unit.Between(d, other)
	}
	switch cu {
	case temporal.Days:
		return d.DaysUntil(other), nil
	case temporal.Weeks:
		return d.DaysUntil(other) / 7, nil
	case temporal.Months:
		return d.MonthsUntil(other), nil
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		return d.MonthsUntil(other) / (12 * yearsPerUnit[cu]), nil
	case temporal.Eras:
		a, _ := d.get(temporal.Era)
		b, _ := other.get(temporal.Era)
		return int64(b - a), nil
	}
	return 0, temporal.UnsupportedUnit(cu)
}

// DaysUntil returns the signed number of days to end.
func (d LocalDate) DaysUntil(end LocalDate) int64 {
	return end.ToEpochDay() - d.ToEpochDay()
}

// MonthsUntil returns the number of complete months to end.
func (d LocalDate) MonthsUntil(end LocalDate) int64 {
	packed1 := d.prolepticMonth()*32 + int64(d.day)
	packed2 := end.prolepticMonth()*32 + int64(end.day)
	return (packed2 - packed1) / 32
}

// AdjustInto sets the EpochDay of t to this date.
func (d LocalDate) AdjustInto(t temporal.Temporal) (temporal.Temporal, error) {
	return t.With(temporal.EpochDay, d.ToEpochDay())
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d LocalDate) Compare(o LocalDate) int {
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// IsBefore reports whether d is before o.
func (d LocalDate) IsBefore(o LocalDate) bool { return d.Compare(o) < 0 }

// IsAfter reports whether d is after o.
func (d LocalDate) IsAfter(o LocalDate) bool { return d.Compare(o) > 0 }

// Time returns midnight of the date in loc.
func (d LocalDate) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month.Time(), d.day, 0, 0, 0, 0, loc)
}

// String formats the date as uuuu-MM-dd, with a sign on years beyond four digits.
func (d LocalDate) String() string {
	return FormatYear(d.year, true) + fmt.Sprintf("-%02d-%02d", int(d.month), d.day)
}

func toLocalDate(t temporal.Temporal, err error) (LocalDate, error) {
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateFrom(t)
}
