package temporal

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek is a day-of-week, Monday (1) to Sunday (7).
type DayOfWeek int

// DayOfWeek values.
const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayOfWeekOf returns the day-of-week for an ISO value 1..7.
func DayOfWeekOf(v int) (DayOfWeek, error) {
	if v < 1 || v > 7 {
		return 0, fmt.Errorf("%w: invalid value for DayOfWeek: %d", ErrOutOfRange, v)
	}
	return DayOfWeek(v), nil
}

// DayOfWeekFrom obtains a day-of-week from any accessor supporting DayOfWeekField.
func DayOfWeekFrom(acc Accessor) (DayOfWeek, error) {
	if d, ok := acc.(DayOfWeek); ok {
		return d, nil
	}
	v, err := acc.Get(DayOfWeekField)
	if err != nil {
		return 0, fmt.Errorf("%w: unable to obtain DayOfWeek from %T: %w", ErrDateTime, acc, err)
	}
	return DayOfWeekOf(v)
}

// DayOfWeekFromWeekday converts a time.Weekday.
func DayOfWeekFromWeekday(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sunday
	}
	return DayOfWeek(w)
}

// ParseDayOfWeek accepts full or three-letter English names in any case.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	s = strings.TrimSpace(s)
	for i, name := range dayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return DayOfWeek(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day-of-week %q", ErrInvalidArgument, s)
}

// Value returns the ISO value, Monday being 1.
func (d DayOfWeek) Value() int { return int(d) }

// Weekday converts to a time.Weekday.
func (d DayOfWeek) Weekday() time.Weekday { return time.Weekday(d % 7) }

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d-1]
}

// Plus returns the day-of-week the given number of days later, wrapping around.
func (d DayOfWeek) Plus(days int64) DayOfWeek {
	amount := days % 7
	return DayOfWeek((int64(d-1)+amount+7)%7 + 1)
}

// Minus returns the day-of-week the given number of days earlier.
func (d DayOfWeek) Minus(days int64) DayOfWeek {
	return d.Plus(-(days % 7))
}

// IsSupported is true only for DayOfWeekField among the ChronoFields.
func (d DayOfWeek) IsSupported(field Field) bool {
	if cf, ok := field.(ChronoField); ok {
		return cf == DayOfWeekField
	}
	return field != nil && field.IsSupportedBy(d)
}

// Range returns the range of valid values for field.
func (d DayOfWeek) Range(field Field) (ValueRange, error) {
	if field == DayOfWeekField {
		return field.Range(), nil
	}
	return RangeOfAccessor(d, field)
}

// Get returns the value of field as an int.
func (d DayOfWeek) Get(field Field) (int, error) {
	if field == DayOfWeekField {
		return d.Value(), nil
	}
	return GetInt(d, field)
}

// GetLong returns the value of field.
func (d DayOfWeek) GetLong(field Field) (int64, error) {
	if cf, ok := field.(ChronoField); ok {
		if cf == DayOfWeekField {
			return int64(d), nil
		}
		return 0, unsupportedField(cf)
	}
	return field.GetFrom(d)
}

// AdjustInto sets the day-of-week of t, staying within the same week.
func (d DayOfWeek) AdjustInto(t Temporal) (Temporal, error) {
	return t.With(DayOfWeekField, int64(d))
}
