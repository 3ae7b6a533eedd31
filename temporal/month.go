package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month-of-year, January (1) to December (12).
type Month int

// Month values.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Month tables indexed by ordinal (January = 0).
var (
	monthMinLength = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	monthMaxLength = [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	// day-of-year of the first of each month in a standard year
	monthFirstDay = [...]int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

// MonthOf returns the month for a value 1..12.
func MonthOf(v int) (Month, error) {
	if v < 1 || v > 12 {
		return 0, fmt.Errorf("%w: invalid value for MonthOfYear: %d", ErrOutOfRange, v)
	}
	return Month(v), nil
}

// MonthFrom obtains a month from an ISO accessor supporting MonthOfYear.
func MonthFrom(acc Accessor) (Month, error) {
	if m, ok := acc.(Month); ok {
		return m, nil
	}
	if !IsISO(acc) {
		return 0, fmt.Errorf("%w: unable to obtain Month from non-ISO %T", ErrDateTime, acc)
	}
	v, err := acc.Get(MonthOfYear)
	if err != nil {
		return 0, fmt.Errorf("%w: unable to obtain Month from %T: %w", ErrDateTime, acc, err)
	}
	return MonthOf(v)
}

// MonthFromTime converts a time.Month.
func MonthFromTime(m time.Month) Month { return Month(m) }

// ParseMonth accepts full or three-letter English names in any case.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for i, name := range monthNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidArgument, s)
}

// Value returns the month-of-year value.
func (m Month) Value() int { return int(m) }

// Time converts to a time.Month.
func (m Month) Time() time.Month { return time.Month(m) }

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Plus returns the month the given number of months later, wrapping around.
func (m Month) Plus(months int64) Month {
	amount := months % 12
	return Month((int64(m-1)+amount+12)%12 + 1)
}

// Minus returns the month the given number of months earlier.
func (m Month) Minus(months int64) Month {
	return m.Plus(-(months % 12))
}

// Length returns the length of the month in days.
func (m Month) Length(leapYear bool) int {
	if leapYear {
		return monthMaxLength[m-1]
	}
	return monthMinLength[m-1]
}

// MinLength returns the shortest length of the month in days.
func (m Month) MinLength() int { return monthMinLength[m-1] }

// MaxLength returns the longest length of the month in days.
func (m Month) MaxLength() int { return monthMaxLength[m-1] }

// FirstDayOfYear returns the day-of-year of the first day of the month.
func (m Month) FirstDayOfYear(leapYear bool) int {
	doy := monthFirstDay[m-1]
	if leapYear && m > February {
		doy++
	}
	return doy
}

// FirstMonthOfQuarter returns January, April, July or October.
func (m Month) FirstMonthOfQuarter() Month {
	return Month(((m-1)/3)*3 + 1)
}

// IsSupported is true only for MonthOfYear among the ChronoFields.
func (m Month) IsSupported(field Field) bool {
	if cf, ok := field.(ChronoField); ok {
		return cf == MonthOfYear
	}
	return field != nil && field.IsSupportedBy(m)
}

// Range returns the range of valid values for field.
func (m Month) Range(field Field) (ValueRange, error) {
	if field == MonthOfYear {
		return field.Range(), nil
	}
	return RangeOfAccessor(m, field)
}

// Get returns the value of field as an int.
func (m Month) Get(field Field) (int, error) {
	if field == MonthOfYear {
		return m.Value(), nil
	}
	return GetInt(m, field)
}

// GetLong returns the value of field.
func (m Month) GetLong(field Field) (int64, error) {
	if cf, ok := field.(ChronoField); ok {
		if cf == MonthOfYear {
			return int64(m), nil
		}
		return 0, unsupportedField(cf)
	}
	return field.GetFrom(m)
}

// AdjustInto sets the month-of-year of an ISO temporal.
func (m Month) AdjustInto(t Temporal) (Temporal, error) {
	if !IsISO(t) {
		return nil, fmt.Errorf("%w: adjustment only supported on ISO date-time", ErrDateTime)
	}
	return t.With(MonthOfYear, int64(m))
}
