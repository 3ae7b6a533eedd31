package isocal

import (
	"cmp"
	"fmt"

	"github.com/helixml/isocal/temporal"
)

// MonthDay is a month and day-of-month in the ISO-8601 calendar system,
// such as --12-03. February 29 is valid; it only exists in leap years.
type MonthDay struct {
	month temporal.Month
	day   int
}

// MonthDayOf returns the month-day for a month and day-of-month. The day
// must exist in the month in some year.
func MonthDayOf(month temporal.Month, day int) (MonthDay, error) {
	if _, err := temporal.MonthOfYear.CheckValidValue(int64(month)); err != nil {
		return MonthDay{}, err
	}
	if _, err := temporal.DayOfMonth.CheckValidValue(int64(day)); err != nil {
		return MonthDay{}, err
	}
	if day > month.MaxLength() {
		return MonthDay{}, fmt.Errorf("%w: illegal value for DayOfMonth field, value %d is not valid for month %v",
			temporal.ErrDateTime, day, month)
	}
	return MonthDay{month, day}, nil
}

// MonthDayFrom obtains a month-day from any accessor supporting MonthOfYear
// and DayOfMonth. Accessors in another chronology are converted through
// LocalDate first.
func MonthDayFrom(acc temporal.Accessor) (MonthDay, error) {
	if md, ok := acc.(MonthDay); ok {
		return md, nil
	}
	if !temporal.IsISO(acc) {
		d, err := LocalDateFrom(acc)
		if err != nil {
			return MonthDay{}, err
		}
		acc = d
	}
	m, err := acc.Get(temporal.MonthOfYear)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: unable to obtain MonthDay from %T: %w", temporal.ErrDateTime, acc, err)
	}
	d, err := acc.Get(temporal.DayOfMonth)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: unable to obtain MonthDay from %T: %w", temporal.ErrDateTime, acc, err)
	}
	return MonthDayOf(temporal.Month(m), d)
}

// Month returns the month-of-year.
func (md MonthDay) Month() temporal.Month { return md.month }

// MonthValue returns the month-of-year from 1 to 12.
func (md MonthDay) MonthValue() int { return md.month.Value() }

// DayOfMonth returns the day-of-month.
func (md MonthDay) DayOfMonth() int { return md.day }

// IsValidYear is false only for February 29 in a non-leap year.
func (md MonthDay) IsValidYear(year int) bool {
	return !(md.day == 29 && md.month == temporal.February && !temporal.IsLeapYear(int64(year)))
}

// Chronology returns ISO.
func (md MonthDay) Chronology() temporal.Chronology { return ISO }

// IsSupported is true for MonthOfYear and DayOfMonth among the ChronoFields.
func (md MonthDay) IsSupported(field temporal.Field) bool {
	if cf, ok := field.(temporal.ChronoField); ok {
		return cf == temporal.MonthOfYear || cf == temporal.DayOfMonth
	}
	return field != nil && field.IsSupportedBy(md)
}

// Range returns the range of field. DayOfMonth spans the minimum and
// maximum length of the month.
func (md MonthDay) Range(field temporal.Field) (temporal.ValueRange, error) {
	switch field {
	case temporal.MonthOfYear:
		return field.Range(), nil
	case temporal.DayOfMonth:
		return temporal.RangeOfVariable(1, int64(md.month.MinLength()), int64(md.month.MaxLength()))
	}
	return temporal.RangeOfAccessor(md, field)
}

// Get returns the value of field as an int.
func (md MonthDay) Get(field temporal.Field) (int, error) {
	return temporal.GetInt(md, field)
}

// GetLong returns the value of field.
func (md MonthDay) GetLong(field temporal.Field) (int64, error) {
	cf, ok := field.(temporal.ChronoField)
	if !ok {
		return field.GetFrom(md)
	}
	switch cf {
	case temporal.DayOfMonth:
		return int64(md.day), nil
	case temporal.MonthOfYear:
		return int64(md.month), nil
	}
	return 0, temporal.UnsupportedField(cf)
}

// WithMonth changes the month, clamping the day to the month's maximum length.
func (md MonthDay) WithMonth(month temporal.Month) (MonthDay, error) {
	if _, err := temporal.MonthOfYear.CheckValidValue(int64(month)); err != nil {
		return MonthDay{}, err
	}
	return MonthDay{month, min(md.day, month.MaxLength())}, nil
}

// WithDayOfMonth changes the day-of-month.
func (md MonthDay) WithDayOfMonth(day int) (MonthDay, error) {
	if day == md.day {
		return md, nil
	}
	return MonthDayOf(md.month, day)
}

// AdjustInto sets the month and day of an ISO temporal. February 29 becomes
// February 28 in a non-leap year.
func (md MonthDay) AdjustInto(t temporal.Temporal) (temporal.Temporal, error) {
	if !temporal.IsISO(t) {
		return nil, fmt.Errorf("%w: adjustment only supported on ISO date-time", temporal.ErrDateTime)
	}
	t, err := t.With(temporal.MonthOfYear, int64(md.month))
	if err != nil {
		return nil, err
	}
	r, err := t.Range(temporal.DayOfMonth)
	if err != nil {
		return nil, err
	}
	return t.With(temporal.DayOfMonth, min(r.Maximum(), int64(md.day)))
}

// AtYear returns the date of this month-day in year. February 29 becomes
// February 28 in a non-leap year.
func (md MonthDay) AtYear(year int) (LocalDate, error) {
	y, err := YearOf(year)
	if err != nil {
		return LocalDate{}, err
	}
	return y.AtMonthDay(md), nil
}

// Compare orders by month then day.
func (md MonthDay) Compare(o MonthDay) int {
	if c := cmp.Compare(md.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(md.day, o.day)
}

// IsBefore reports whether md is before o.
func (md MonthDay) IsBefore(o MonthDay) bool { return md.Compare(o) < 0 }

// IsAfter reports whether md is after o.
func (md MonthDay) IsAfter(o MonthDay) bool { return md.Compare(o) > 0 }

// String formats the month-day as --MM-dd.
func (md MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", int(md.month), md.day)
}
