package temporal

import "fmt"

// JulianField is a day count that differs from EpochDay by a fixed offset.
type JulianField int

// Julian fields.
const (
	// JulianDay is the astronomical day number; 1970-01-01 is 2440588.
	JulianDay JulianField = iota
	// ModifiedJulianDay counts from 1858-11-17; 1970-01-01 is 40587.
	ModifiedJulianDay
	// RataDie counts from 0001-01-01 being day 1; 1970-01-01 is 719163.
	RataDie
)

var julianDefs = [...]struct {
	name   string
	offset int64
}{
	JulianDay:         {"JulianDay", 2440588},
	ModifiedJulianDay: {"ModifiedJulianDay", 40587},
	RataDie:           {"RataDie", 719163},
}

func (f JulianField) offset() int64  { return julianDefs[f].offset }
func (f JulianField) String() string { return julianDefs[f].name }

// BaseUnit is Days.
func (f JulianField) BaseUnit() Unit { return Days }

// RangeUnit is Forever.
func (f JulianField) RangeUnit() Unit { return Forever }

// IsDateBased is true.
func (f JulianField) IsDateBased() bool { return true }

// IsTimeBased is false.
func (f JulianField) IsTimeBased() bool { return false }

// Range is the EpochDay range shifted by the offset.
func (f JulianField) Range() ValueRange {
	return fixed(minEpochDay+f.offset(), maxEpochDay+f.offset())
}

// IsSupportedBy requires EpochDay.
func (f JulianField) IsSupportedBy(acc Accessor) bool { return acc.IsSupported(EpochDay) }

// RangeRefinedBy returns Range when supported.
func (f JulianField) RangeRefinedBy(acc Accessor) (ValueRange, error) {
	if !f.IsSupportedBy(acc) {
		return ValueRange{}, unsupportedField(f)
	}
	return f.Range(), nil
}

// GetFrom returns EpochDay plus the offset.
func (f JulianField) GetFrom(acc Accessor) (int64, error) {
	ed, err := acc.GetLong(EpochDay)
	if err != nil {
		return 0, err
	}
	return ed + f.offset(), nil
}

// AdjustInto sets EpochDay from a Julian value.
func (f JulianField) AdjustInto(t Temporal, newValue int64) (Temporal, error) {
	if !f.Range().IsValidValue(newValue) {
		return nil, fmt.Errorf("%w: invalid value for %v: %d", ErrOutOfRange, f, newValue)
	}
	ed, err := SubtractExact(newValue, f.offset())
	if err != nil {
		return nil, err
	}
	return t.With(EpochDay, ed)
}

// Resolve turns the Julian value into a date. Lenient skips the range check.
func (f JulianField) Resolve(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error) {
	value, ok := values.Remove(f)
	if !ok {
		return nil, nil
	}
	if style != Lenient {
		if _, err := f.Range().CheckValidValue(value, f); err != nil {
			return nil, err
		}
	}
	ed, err := SubtractExact(value, f.offset())
	if err != nil {
		return nil, err
	}
	return chrono.DateEpochDay(ed)
}
