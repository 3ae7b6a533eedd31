// Package isocal provides ISO-8601 calendar values built on the temporal
// field framework.
//
// LocalDate is a date in the proleptic Gregorian calendar; Year, YearMonth
// and MonthDay are partial dates. All of them implement temporal.Accessor,
// so any temporal.Field can be read from them:
//
//	date, err := isocal.OfDate(2008, temporal.December, 29)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	wby, _ := date.GetLong(temporal.WeekBasedYear)      // 2009
//	week, _ := date.GetLong(temporal.WeekOfWeekBasedYear) // 1
//
//	// Last Monday of the month
//	last, err := date.Adjust(temporal.LastInMonth(temporal.Monday))
//
// Dates can also be reconstructed from a set of field values:
//
//	values := temporal.NewFieldValues()
//	values.Put(temporal.Year, 2009)
//	values.Put(temporal.ISOWeekFields.WeekOfYear(), 1)
//	values.Put(temporal.DayOfWeekField, 1)
//	date, ok, err := isocal.ResolveDate(values, temporal.Smart) // 2008-12-29
//
// Values are immutable and comparable with ==.
package isocal

import (
	"errors"

	"github.com/helixml/isocal/temporal"
)

// ErrUnsupportedType is returned when decoding a binary form whose type tag
// is not one of the calendar types of this package.
var ErrUnsupportedType = errors.New("unsupported serialized type")

// ErrInvalidBinary is returned when a binary form is truncated or has
// trailing bytes.
var ErrInvalidBinary = errors.New("invalid binary form")

// ResolveDate resolves field values into a LocalDate using the ISO chronology.
// It returns false when the values do not describe a date.
func ResolveDate(values *temporal.FieldValues, style temporal.ResolverStyle) (LocalDate, bool, error) {
	date, err := temporal.Resolve(values, ISO, style)
	if err != nil {
		return LocalDate{}, false, err
	}
	if date == nil {
		return LocalDate{}, false, nil
	}
	d, err := LocalDateFrom(date)
	if err != nil {
		return LocalDate{}, false, err
	}
	return d, true, nil
}
