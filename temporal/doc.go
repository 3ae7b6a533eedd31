// Package temporal provides the field and unit framework for ISO-8601 date
// computation.
//
// A Field (month-of-year, day-of-week, week-of-year, ...) and a Unit (days,
// months, eras, ...) are strategy values that operate on any Accessor or
// Temporal. The closed ChronoField and ChronoUnit catalogs are the default
// dispatch target; IsoFields, JulianFields and WeekFields add derived fields
// on top of them.
//
// Basic usage:
//
//	wf := temporal.ISOWeekFields
//	week, err := wf.WeekOfWeekBasedYear().GetFrom(date)
//	if err != nil {
//	    return err
//	}
//
//	next, err := temporal.Next(temporal.Friday).AdjustInto(date)
//
// Every value in this package is immutable and safe for concurrent use.
package temporal
