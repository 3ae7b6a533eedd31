package isocal

import (
	"cmp"
	"fmt"

	"github.com/helixml/isocal/temporal"
)

// YearMonth is a year and month in the ISO-8601 calendar system, such as
// 2007-12. The zero value is not valid.
type YearMonth struct {
	year  int
	month temporal.Month
}

// YearMonthOf returns the year-month for a proleptic year and month.
func YearMonthOf(year int, month temporal.Month) (YearMonth, error) {
	if _, err := temporal.Year.CheckValidValue(int64(year)); err != nil {
		return YearMonth{}, err
	}
	if _, err := temporal.MonthOfYear.CheckValidValue(int64(month)); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year, month}, nil
}

// YearMonthFrom obtains a year-month from any accessor supporting Year and
// MonthOfYear. Accessors in another chronology are converted through
// LocalDate first.
func YearMonthFrom(acc temporal.Accessor) (YearMonth, error) {
	if ym, ok := acc.(YearMonth); ok {
		return ym, nil
	}
	if !temporal.IsISO(acc) {
		d, err := LocalDateFrom(acc)
		if err != nil {
			return YearMonth{}, err
		}
		acc = d
	}
	y, err := acc.Get(temporal.Year)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: unable to obtain YearMonth from %T: %w", temporal.ErrDateTime, acc, err)
	}
	m, err := acc.Get(temporal.MonthOfYear)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: unable to obtain YearMonth from %T: %w", temporal.ErrDateTime, acc, err)
	}
	return YearMonthOf(y, temporal.Month(m))
}

// Year returns the proleptic year.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month-of-year.
func (ym YearMonth) Month() temporal.Month { return ym.month }

// MonthValue returns the month-of-year from 1 to 12.
func (ym YearMonth) MonthValue() int { return ym.month.Value() }

// IsLeapYear reports whether the year is a leap year.
func (ym YearMonth) IsLeapYear() bool { return temporal.IsLeapYear(int64(ym.year)) }

// IsValidDay reports whether dayOfMonth exists in this month.
func (ym YearMonth) IsValidDay(dayOfMonth int) bool {
	return dayOfMonth >= 1 && dayOfMonth <= ym.LengthOfMonth()
}

// LengthOfMonth returns the number of days in the month.
func (ym YearMonth) LengthOfMonth() int { return ym.month.Length(ym.IsLeapYear()) }

// LengthOfYear returns 365 or 366.
func (ym YearMonth) LengthOfYear() int { return Year{ym.year}.Length() }

// Chronology returns ISO.
func (ym YearMonth) Chronology() temporal.Chronology { return ISO }

func (ym YearMonth) prolepticMonth() int64 {
	return int64(ym.year)*12 + int64(ym.month) - 1
}

func (ym YearMonth) era() int64 { return Year{ym.year}.era() }

// IsSupported is true for Year, MonthOfYear, ProlepticMonth, YearOfEra and
// Era among the ChronoFields.
func (ym YearMonth) IsSupported(field temporal.Field) bool {
	if cf, ok := field.(temporal.ChronoField); ok {
		switch cf {
		case temporal.Year, temporal.MonthOfYear, temporal.ProlepticMonth, temporal.YearOfEra, temporal.Era:
			return true
		}
		return false
	}
	return field != nil && field.IsSupportedBy(ym)
}

// IsUnitSupported is true for Months through Eras.
func (ym YearMonth) IsUnitSupported(unit temporal.Unit) bool {
	if cu, ok := unit.(temporal.ChronoUnit); ok {
		return cu >= temporal.Months && cu <= temporal.Eras
	}
	return unit != nil && unit.IsSupportedBy(ym)
}

// Range returns the range of field; YearOfEra depends on the era.
func (ym YearMonth) Range(field temporal.Field) (temporal.ValueRange, error) {
	if field == temporal.YearOfEra {
		return Year{ym.year}.Range(field)
	}
	return temporal.RangeOfAccessor(ym, field)
}

// Get returns the value of field as an int.
func (ym YearMonth) Get(field temporal.Field) (int, error) {
	return temporal.GetInt(ym, field)
}

// GetLong returns the value of field.
func (ym YearMonth) GetLong(field temporal.Field) (int64, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return field.GetFrom(ym)
	}
	switch cf {
	case temporal.MonthOfYear:
		return int64(ym.month), nil
	case temporal.ProlepticMonth:
		return ym.prolepticMonth(), nil
	case temporal.YearOfEra, temporal.Year, temporal.Era:
		return Year{ym.year}.GetLong(cf)
	}
	return 0, temporal.UnsupportedField(cf)
}

// With returns a copy of the year-month with field set to newValue.
func (ym YearMonth) With(field temporal.Field, newValue int64) (temporal.Temporal, error) {
	return ym.WithField(field, newValue)
}

// WithField is With returning a YearMonth.
func (ym YearMonth) WithField(field temporal.Field, newValue int64) (YearMonth, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return toYearMonth(field.AdjustInto(ym, newValue))
	}
	if _, err := cf.CheckValidValue(newValue); err != nil {
		return YearMonth{}, err
	}
	switch cf {
	case temporal.MonthOfYear:
		return ym.WithMonth(temporal.Month(newValue))
	case temporal.ProlepticMonth:
		return ym.PlusMonths(newValue - ym.prolepticMonth())
	case temporal.YearOfEra:
		if ym.year < 1 {
			return ym.WithYear(int(1 - newValue))
		}
		return ym.WithYear(int(newValue))
	case temporal.Year:
		return ym.WithYear(int(newValue))
	case temporal.Era:
		if ym.era() == newValue {
			return ym, nil
		}
		return ym.WithYear(1 - ym.year)
	}
	return YearMonth{}, temporal.UnsupportedField(cf)
}

// WithYear changes the year.
func (ym YearMonth) WithYear(year int) (YearMonth, error) {
	return YearMonthOf(year, ym.month)
}

// WithMonth changes the month.
func (ym YearMonth) WithMonth(month temporal.Month) (YearMonth, error) {
	return YearMonthOf(ym.year, month)
}

// Plus returns a copy of the year-month with amount of unit added.
func (ym YearMonth) Plus(amount int64, unit temporal.Unit) (temporal.Temporal, error) {
	return ym.PlusUnit(amount, unit)
}

// PlusUnit is Plus returning a YearMonth.
func (ym YearMonth) PlusUnit(amount int64, unit temporal.Unit) (YearMonth, error) {
	cu, ok := unit.(temporal.ChronoUnit)
	if !ok {
		return toYearMonth(unit.AddTo(ym, amount))
	}
	switch cu {
	case temporal.Months:
		return ym.PlusMonths(amount)
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		years, err := temporal.MultiplyExact(amount, yearsPerUnit[cu])
		if err != nil {
			return YearMonth{}, err
		}
		return ym.PlusYears(years)
	case temporal.Eras:
		era, err := temporal.AddExact(ym.era(), amount)
		if err != nil {
			return YearMonth{}, err
		}
		return ym.WithField(temporal.Era, era)
	}
	return YearMonth{}, temporal.UnsupportedUnit(cu)
}

// MinusUnit returns a copy of the year-month with amount of unit subtracted.
func (ym YearMonth) MinusUnit(amount int64, unit temporal.Unit) (YearMonth, error) {
	return toYearMonth(temporal.Minus(ym, amount, unit))
}

// PlusMonths adds months through proleptic-month space; only leaving the
// supported year range fails.
func (ym YearMonth) PlusMonths(months int64) (YearMonth, error) {
	if months == 0 {
		return ym, nil
	}
	calc, err := temporal.AddExact(ym.prolepticMonth(), months)
	if err != nil {
		return YearMonth{}, err
	}
	year, err := temporal.Year.CheckValidIntValue(temporal.FloorDiv(calc, 12))
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year, temporal.Month(temporal.FloorMod(calc, 12) + 1)}, nil
}

// MinusMonths subtracts months.
func (ym YearMonth) MinusMonths(months int64) (YearMonth, error) {
	return ym.MinusUnit(months, temporal.Months)
}

// PlusYears adds years.
func (ym YearMonth) PlusYears(years int64) (YearMonth, error) {
	if years == 0 {
		return ym, nil
	}
	y, err := Year{ym.year}.PlusYears(years)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{y.year, ym.month}, nil
}

// Until returns the amount of unit from this year-month to end.
func (ym YearMonth) Until(end temporal.Temporal, unit temporal.Unit) (int64, error) {
	other, err := YearMonthFrom(end)
	if err != nil {
		return 0, err
	}
	cu, ok := unit.(temporal.ChronoUnit)
	if !ok {
		return unit.Between(ym, other)
	}
	monthsUntil := other.prolepticMonth() - ym.prolepticMonth()
	switch cu {
	case temporal.Months:
		return monthsUntil, nil
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		return monthsUntil / (12 * yearsPerUnit[cu]), nil
	case temporal.Eras:
		return other.era() - ym.era(), nil
	}
	return 0, temporal.UnsupportedUnit(cu)
}

// AdjustInto sets the ProlepticMonth of an ISO temporal.
func (ym YearMonth) AdjustInto(t temporal.Temporal) (temporal.Temporal, error) {
	if !temporal.IsISO(t) {
		return nil, fmt.Errorf("%w: adjustment only supported on ISO date-time", temporal.ErrDateTime)
	}
	return t.With(temporal.ProlepticMonth, ym.prolepticMonth())
}

// AtDay returns the date at dayOfMonth in this month.
func (ym YearMonth) AtDay(dayOfMonth int) (LocalDate, error) {
	return OfDate(ym.year, ym.month, dayOfMonth)
}

// AtEndOfMonth returns the last day of the month.
func (ym YearMonth) AtEndOfMonth() LocalDate {
	return LocalDate{ym.year, ym.month, ym.LengthOfMonth()}
}

// Compare orders by year then month.
func (ym YearMonth) Compare(o YearMonth) int {
	if c := cmp.Compare(ym.year, o.year); c != 0 {
		return c
	}
	return cmp.Compare(ym.month, o.month)
}

// IsBefore reports whether ym is before o.
func (ym YearMonth) IsBefore(o YearMonth) bool { return ym.Compare(o) < 0 }

// IsAfter reports whether ym is after o.
func (ym YearMonth) IsAfter(o YearMonth) bool { return ym.Compare(o) > 0 }

// String formats the year-month as uuuu-MM.
func (ym YearMonth) String() string {
	return FormatYear(ym.year, false) + fmt.Sprintf("-%02d", int(ym.month))
}

func toYearMonth(t temporal.Temporal, err error) (YearMonth, error) {
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonthFrom(t)
}
