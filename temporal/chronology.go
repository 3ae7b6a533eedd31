package temporal

import "fmt"

// ISOChronologyID identifies the ISO-8601 calendar system.
const ISOChronologyID = "ISO"

// Chronology is a calendar system used to build dates.
type Chronology interface {
	fmt.Stringer

	ID() string
	Date(prolepticYear, month, dayOfMonth int) (Date, error)
	DateYearDay(prolepticYear, dayOfYear int) (Date, error)
	DateEpochDay(epochDay int64) (Date, error)
	// DateFrom obtains a date in this chronology from any accessor.
	DateFrom(acc Accessor) (Date, error)
	IsLeapYear(prolepticYear int64) bool
	Range(field ChronoField) ValueRange

	// ResolveDate builds a date from the ChronoField entries of values,
	// removing the entries it consumes. A nil Date means too few fields.
	ResolveDate(values *FieldValues, style ResolverStyle) (Date, error)
}

// Date is a date without time-of-day in some chronology.
type Date interface {
	Temporal

	Chronology() Chronology
	ToEpochDay() int64
	LengthOfMonth() int
	LengthOfYear() int
	IsLeapYear() bool
}

// ChronologyProvider is implemented by accessors bound to a calendar system.
type ChronologyProvider interface {
	Chronology() Chronology
}

// ChronologyOf returns the chronology of acc.
func ChronologyOf(acc Accessor) (Chronology, error) {
	if p, ok := acc.(ChronologyProvider); ok {
		return p.Chronology(), nil
	}
	return nil, fmt.Errorf("%w: unable to obtain chronology from %T", ErrDateTime, acc)
}

// IsISO reports whether acc is in the ISO calendar system. Accessors that do
// not declare a chronology are taken to be ISO.
func IsISO(acc Accessor) bool {
	if p, ok := acc.(ChronologyProvider); ok {
		return p.Chronology().ID() == ISOChronologyID
	}
	return true
}
