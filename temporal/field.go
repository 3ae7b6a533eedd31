package temporal

import (
	"fmt"
	"math"
)

// Field is a field of date-time, such as month-of-year or week-of-year.
//
// Fields are strategy values: the same field is applied to any Accessor.
// Queries against the closed ChronoField set are answered by the accessor
// itself; every other field implements the query in terms of ChronoFields.
type Field interface {
	fmt.Stringer

	// BaseUnit is the unit the field is measured in.
	BaseUnit() Unit
	// RangeUnit is the unit the field is bound by.
	RangeUnit() Unit
	// Range is the ISO range of valid values, ignoring any context.
	Range() ValueRange
	IsDateBased() bool
	IsTimeBased() bool

	// IsSupportedBy reports whether acc can be queried for this field.
	IsSupportedBy(acc Accessor) bool
	// RangeRefinedBy returns the range of valid values in the context of acc.
	RangeRefinedBy(acc Accessor) (ValueRange, error)
	// GetFrom extracts the value of this field from acc.
	GetFrom(acc Accessor) (int64, error)
	// AdjustInto returns a copy of t with this field set to newValue.
	AdjustInto(t Temporal, newValue int64) (Temporal, error)

	// Resolve combines entries of values into simpler entries or a complete
	// date. Consumed entries are removed from values. A nil Date with a nil
	// error means either nothing was done or values were rewritten.
	Resolve(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error)
}

// Unit is a unit of time, such as days or months.
type Unit interface {
	fmt.Stringer

	// Duration is the length of the unit, estimated for date-based units.
	Duration() Duration
	IsDurationEstimated() bool
	IsDateBased() bool
	IsTimeBased() bool

	// IsSupportedBy reports whether t can add this unit.
	IsSupportedBy(t Temporal) bool
	// AddTo returns a copy of t with amount of this unit added.
	AddTo(t Temporal, amount int64) (Temporal, error)
	// Between returns the number of whole units from start to end, truncated
	// toward zero and negative when end is before start.
	Between(start, end Temporal) (int64, error)
}

// Accessor is read-only access to the fields of a date-time value.
type Accessor interface {
	IsSupported(field Field) bool
	Range(field Field) (ValueRange, error)
	Get(field Field) (int, error)
	GetLong(field Field) (int64, error)
}

// Temporal is a date-time value that can be adjusted and added to.
// Implementations are immutable; every method returns a new value.
type Temporal interface {
	Accessor

	IsUnitSupported(unit Unit) bool
	With(field Field, newValue int64) (Temporal, error)
	Plus(amount int64, unit Unit) (Temporal, error)
	// Until returns the amount of unit between the receiver and end.
	Until(end Temporal, unit Unit) (int64, error)
}

// Adjuster transforms a Temporal, for example to the last day of its month.
type Adjuster interface {
	AdjustInto(t Temporal) (Temporal, error)
}

// AdjusterFunc adapts a function to the Adjuster interface.
type AdjusterFunc func(t Temporal) (Temporal, error)

// AdjustInto calls f(t).
func (f AdjusterFunc) AdjustInto(t Temporal) (Temporal, error) { return f(t) }

// RangeOfAccessor is the standard Accessor.Range: supported ChronoFields
// report their catalog range, other fields are asked to refine themselves.
func RangeOfAccessor(acc Accessor, field Field) (ValueRange, error) {
	if cf, ok := field.(ChronoField); ok {
		if acc.IsSupported(cf) {
			return cf.Range(), nil
		}
		return ValueRange{}, unsupportedField(cf)
	}
	return field.RangeRefinedBy(acc)
}

// GetInt is the standard Accessor.Get: the field range must fit in 32 bits
// and the value must lie within it.
func GetInt(acc Accessor, field Field) (int, error) {
	r, err := acc.Range(field)
	if err != nil {
		return 0, err
	}
	if !r.IsIntValue() {
		return 0, fmt.Errorf("%w: invalid field %v for Get, use GetLong instead", ErrUnsupportedField, field)
	}
	v, err := acc.GetLong(field)
	if err != nil {
		return 0, err
	}
	return r.CheckValidIntValue(v, field)
}

// Minus subtracts amount of unit from t.
func Minus(t Temporal, amount int64, unit Unit) (Temporal, error) {
	if amount == math.MinInt64 {
		r, err := t.Plus(math.MaxInt64, unit)
		if err != nil {
			return nil, err
		}
		return r.Plus(1, unit)
	}
	return t.Plus(-amount, unit)
}

// Adjust applies each adjuster in turn.
func Adjust(t Temporal, adjusters ...Adjuster) (Temporal, error) {
	var err error
	for _, a := range adjusters {
		if t, err = a.AdjustInto(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}
