package temporal

import (
	"fmt"
	"math"
)

// FloorDiv returns the largest integer less than or equal to x/y.
func FloorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// FloorMod returns x - FloorDiv(x, y)*y; the result has the sign of y.
func FloorMod(x, y int64) int64 {
	m := x % y
	if m != 0 && ((m < 0) != (y < 0)) {
		m += y
	}
	return m
}

// floorModInt is FloorMod for int operands.
func floorModInt(x, y int) int {
	return int(FloorMod(int64(x), int64(y)))
}

// AddExact returns a+b or ErrOverflow.
func AddExact(a, b int64) (int64, error) {
	r := a + b
	if ((a ^ r) & (b ^ r)) < 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return r, nil
}

// SubtractExact returns a-b or ErrOverflow.
func SubtractExact(a, b int64) (int64, error) {
	r := a - b
	if ((a ^ b) & (a ^ r)) < 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return r, nil
}

// MultiplyExact returns a*b or ErrOverflow.
func MultiplyExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return r, nil
}

// ToIntExact narrows v to int32 range or returns ErrOverflow.
func ToIntExact(v int64) (int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in 32 bits", ErrOverflow, v)
	}
	return int(v), nil
}
