package temporal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueRange is the range of valid values for a field.
//
// A range may be fixed, such as 1-12 for month-of-year, or variable, such as
// 1-28/31 for day-of-month where the maximum depends on the month. Validity is
// always checked against the outer bounds: a field with internal gaps must not
// assume every value between Minimum and Maximum is valid.
type ValueRange struct {
	minSmallest int64
	minLargest  int64
	maxSmallest int64
	maxLargest  int64
}

// RangeOf returns a fixed range where min and max are both fixed.
func RangeOf(min, max int64) (ValueRange, error) {
	if min > max {
		return ValueRange{}, fmt.Errorf("%w: minimum %d must be less than maximum %d", ErrInvalidRange, min, max)
	}
	return ValueRange{minSmallest: min, minLargest: min, maxSmallest: max, maxLargest: max}, nil
}

// RangeOfVariable returns a range with a fixed minimum and a variable maximum.
func RangeOfVariable(min, maxSmallest, maxLargest int64) (ValueRange, error) {
	return RangeOfFull(min, min, maxSmallest, maxLargest)
}

// RangeOfFull returns a range where both minimum and maximum may vary.
func RangeOfFull(minSmallest, minLargest, maxSmallest, maxLargest int64) (ValueRange, error) {
	switch {
	case minSmallest > minLargest:
		return ValueRange{}, fmt.Errorf("%w: smallest minimum %d must be less than largest minimum %d",
			ErrInvalidRange, minSmallest, minLargest)
	case maxSmallest > maxLargest:
		return ValueRange{}, fmt.Errorf("%w: smallest maximum %d must be less than largest maximum %d",
			ErrInvalidRange, maxSmallest, maxLargest)
	case minLargest > maxLargest:
		return ValueRange{}, fmt.Errorf("%w: minimum %d must be less than maximum %d",
			ErrInvalidRange, minLargest, maxLargest)
	case minSmallest > maxSmallest:
		return ValueRange{}, fmt.Errorf("%w: minimum %d must be less than maximum %d",
			ErrInvalidRange, minSmallest, maxSmallest)
	}
	return ValueRange{
		minSmallest: minSmallest,
		minLargest:  minLargest,
		maxSmallest: maxSmallest,
		maxLargest:  maxLargest,
	}, nil
}

// mustRange panics on invalid bounds; only for package-level constants.
func mustRange(r ValueRange, err error) ValueRange {
	if err != nil {
		panic(err)
	}
	return r
}

// IsFixed reports whether both minimum and maximum are fixed.
func (r ValueRange) IsFixed() bool {
	return r.minSmallest == r.minLargest && r.maxSmallest == r.maxLargest
}

// Minimum returns the smallest possible minimum.
func (r ValueRange) Minimum() int64 { return r.minSmallest }

// LargestMinimum returns the largest possible minimum.
func (r ValueRange) LargestMinimum() int64 { return r.minLargest }

// SmallestMaximum returns the smallest possible maximum.
func (r ValueRange) SmallestMaximum() int64 { return r.maxSmallest }

// Maximum returns the largest possible maximum.
func (r ValueRange) Maximum() int64 { return r.maxLargest }

// IsIntValue reports whether every value in the outer range fits in 32 bits.
func (r ValueRange) IsIntValue() bool {
	return r.minSmallest >= math.MinInt32 && r.maxLargest <= math.MaxInt32
}

// IsValidValue reports whether v lies within the outer bounds.
func (r ValueRange) IsValidValue(v int64) bool {
	return v >= r.minSmallest && v <= r.maxLargest
}

// IsValidIntValue reports whether the range is an int range and v is valid.
func (r ValueRange) IsValidIntValue(v int64) bool {
	return r.IsIntValue() && r.IsValidValue(v)
}

// CheckValidValue returns v if it is valid, otherwise an ErrOutOfRange error
// naming field, the range and the value. field may be nil.
func (r ValueRange) CheckValidValue(v int64, field Field) (int64, error) {
	if !r.IsValidValue(v) {
		return 0, r.invalid(v, field)
	}
	return v, nil
}

// CheckValidIntValue is CheckValidValue for ranges that fit in 32 bits.
func (r ValueRange) CheckValidIntValue(v int64, field Field) (int, error) {
	if !r.IsValidIntValue(v) {
		return 0, r.invalid(v, field)
	}
	return int(v), nil
}

func (r ValueRange) invalid(v int64, field Field) error {
	if field != nil {
		return fmt.Errorf("%w: invalid value for %v (valid values %v): %d", ErrOutOfRange, field, r, v)
	}
	return fmt.Errorf("%w: invalid value (valid values %v): %d", ErrOutOfRange, r, v)
}

// String renders the range as "min - max", with "/" separating variable bounds.
func (r ValueRange) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(r.minSmallest, 10))
	if r.minSmallest != r.minLargest {
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(r.minLargest, 10))
	}
	b.WriteString(" - ")
	b.WriteString(strconv.FormatInt(r.maxSmallest, 10))
	if r.maxSmallest != r.maxLargest {
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(r.maxLargest, 10))
	}
	return b.String()
}
