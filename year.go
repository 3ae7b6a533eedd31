package isocal

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/helixml/isocal/temporal"
)

// Year is a proleptic year in the ISO-8601 calendar system, such as 2007.
type Year struct {
	year int
}

// YearOf returns the year for a proleptic year value.
func YearOf(year int) (Year, error) {
	if _, err := temporal.Year.CheckValidValue(int64(year)); err != nil {
		return Year{}, err
	}
	return Year{year}, nil
}

// YearFrom obtains a year from any accessor supporting Year. Accessors in
// another chronology are converted through LocalDate first.
func YearFrom(acc temporal.Accessor) (Year, error) {
	if y, ok := acc.(Year); ok {
		return y, nil
	}
	if !temporal.IsISO(acc) {
		d, err := LocalDateFrom(acc)
		if err != nil {
			return Year{}, err
		}
		acc = d
	}
	v, err := acc.Get(temporal.Year)
	if err != nil {
		return Year{}, fmt.Errorf("%w: unable to obtain Year from %T: %w", temporal.ErrDateTime, acc, err)
	}
	return YearOf(v)
}

// IsLeapYear applies the proleptic Gregorian leap year rule.
func IsLeapYear(year int64) bool { return temporal.IsLeapYear(year) }

// Value returns the year value.
func (y Year) Value() int { return y.year }

// IsLeap reports whether the year is a leap year.
func (y Year) IsLeap() bool { return temporal.IsLeapYear(int64(y.year)) }

// IsValidMonthDay reports whether md exists in this year.
func (y Year) IsValidMonthDay(md MonthDay) bool { return md.IsValidYear(y.year) }

// Length returns 365 or 366.
func (y Year) Length() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Chronology returns ISO.
func (y Year) Chronology() temporal.Chronology { return ISO }

func (y Year) era() int64 {
	if y.year < 1 {
		return 0
	}
	return 1
}

// IsSupported is true for Year, YearOfEra and Era among the ChronoFields.
func (y Year) IsSupported(field temporal.Field) bool {
	if cf, ok := field.(temporal.ChronoField); ok {
		return cf == temporal.Year || cf == temporal.YearOfEra || cf == temporal.Era
	}
	return field != nil && field.IsSupportedBy(y)
}

// IsUnitSupported is true for Years, Decades, Centuries, Millennia and Eras.
func (y Year) IsUnitSupported(unit temporal.Unit) bool {
	if cu, ok := unit.(temporal.ChronoUnit); ok {
		return cu == temporal.Years || cu == temporal.Decades || cu == temporal.Centuries ||
			cu == temporal.Millennia || cu == temporal.Eras
	}
	return unit != nil && unit.IsSupportedBy(y)
}

// Range returns the range of field; YearOfEra depends on the era.
func (y Year) Range(field temporal.Field) (temporal.ValueRange, error) {
	if field == temporal.YearOfEra {
		if y.year <= 0 {
			return temporal.RangeOf(1, temporal.MaxYear+1)
		}
		return temporal.RangeOf(1, temporal.MaxYear)
	}
	return temporal.RangeOfAccessor(y, field)
}

// Get returns the value of field as an int.
func (y Year) Get(field temporal.Field) (int, error) {
	if _, ok := field.(temporal.ChronoField); ok {
		v, err := y.GetLong(field)
		return int(v), err
	}
	return temporal.GetInt(y, field)
}

// GetLong returns the value of field.
func (y Year) GetLong(field temporal.Field) (int64, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return field.GetFrom(y)
	}
	switch cf {
	case temporal.YearOfEra:
		if y.year < 1 {
			return int64(1 - y.year), nil
		}
		return int64(y.year), nil
	case temporal.Year:
		return int64(y.year), nil
	case temporal.Era:
		return y.era(), nil
	}
	return 0, temporal.UnsupportedField(cf)
}

// With returns a copy of the year with field set to newValue.
func (y Year) With(field temporal.Field, newValue int64) (temporal.Temporal, error) {
	return y.WithField(field, newValue)
}

// WithField is With returning a Year.
func (y Year) WithField(field temporal.Field, newValue int64) (Year, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return toYear(field.AdjustInto(y, newValue))
	}
	if _, err := cf.CheckValidValue(newValue); err != nil {
		return Year{}, err
	}
	switch cf {
	case temporal.YearOfEra:
		if y.year < 1 {
			return YearOf(int(1 - newValue))
		}
		return YearOf(int(newValue))
	case temporal.Year:
		return YearOf(int(newValue))
	case temporal.Era:
		if y.era() == newValue {
			return y, nil
		}
		return YearOf(1 - y.year)
	}
	return Year{}, temporal.UnsupportedField(cf)
}

// Plus returns a copy of the year with amount of unit added.
func (y Year) Plus(amount int64, unit temporal.Unit) (temporal.Temporal, error) {
	return y.PlusUnit(amount, unit)
}

// PlusUnit is Plus returning a Year.
func (y Year) PlusUnit(amount int64, unit temporal.Unit) (Year, error) {
	cu, ok := unit.(temporal.ChronoUnit)
	if !ok {
		return toYear(unit.AddTo(y, amount))
	}
	switch cu {
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		years, err := temporal.MultiplyExact(amount, yearsPerUnit[cu])
		if err != nil {
			return Year{}, err
		}
		return y.PlusYears(years)
	case temporal.Eras:
		era, err := temporal.AddExact(y.era(), amount)
		if err != nil {
			return Year{}, err
		}
		return y.WithField(temporal.Era, era)
	}
	return Year{}, temporal.UnsupportedUnit(cu)
}

// MinusUnit returns a copy of the year with amount of unit subtracted.
func (y Year) MinusUnit(amount int64, unit temporal.Unit) (Year, error) {
	return toYear(temporal.Minus(y, amount, unit))
}

// PlusYears adds years.
func (y Year) PlusYears(years int64) (Year, error) {
	if years == 0 {
		return y, nil
	}
	calc, err := temporal.AddExact(int64(y.year), years)
	if err != nil {
		return Year{}, err
	}
	v, err := temporal.Year.CheckValidIntValue(calc)
	if err != nil {
		return Year{}, err
	}
	return Year{v}, nil
}

// Until returns the amount of unit from this year to end.
func (y Year) Until(end temporal.Temporal, unit temporal.Unit) (int64, error) {
	other, err := YearFrom(end)
	if err != nil {
		return 0, err
	}
	cu, ok := unit.(temporal.ChronoUnit)
	if !ok {
		return unit.Between(y, other)
	}
	yearsUntil := int64(other.year) - int64(y.year)
	switch cu {
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		return yearsUntil / yearsPerUnit[cu], nil
	case temporal.Eras:
		return other.era() - y.era(), nil
	}
	return 0, temporal.UnsupportedUnit(cu)
}

// AdjustInto sets the Year of an ISO temporal.
func (y Year) AdjustInto(t temporal.Temporal) (temporal.Temporal, error) {
	if !temporal.IsISO(t) {
		return nil, fmt.Errorf("%w: adjustment only supported on ISO date-time", temporal.ErrDateTime)
	}
	return t.With(temporal.Year, int64(y.year))
}

// AtDay returns the date at dayOfYear in this year.
func (y Year) AtDay(dayOfYear int) (LocalDate, error) {
	return OfYearDay(y.year, dayOfYear)
}

// AtMonth returns the year-month of month in this year.
func (y Year) AtMonth(month temporal.Month) (YearMonth, error) {
	return YearMonthOf(y.year, month)
}

// AtMonthDay returns md in this year. February 29 becomes February 28 in a
// non-leap year.
func (y Year) AtMonthDay(md MonthDay) LocalDate {
	return previousValid(y.year, md.month, md.day)
}

// Compare returns -1, 0 or +1 as y is before, equal to or after o.
func (y Year) Compare(o Year) int { return cmp.Compare(y.year, o.year) }

// IsBefore reports whether y is before o.
func (y Year) IsBefore(o Year) bool { return y.year < o.year }

// IsAfter reports whether y is after o.
func (y Year) IsAfter(o Year) bool { return y.year > o.year }

func (y Year) String() string { return strconv.Itoa(y.year) }

func toYear(t temporal.Temporal, err error) (Year, error) {
	if err != nil {
		return Year{}, err
	}
	return YearFrom(t)
}
