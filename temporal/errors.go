package temporal

import (
	"errors"
	"fmt"
)

// Error kinds. Returned errors wrap one of these; test with errors.Is.
var (
	// ErrDateTime is the general date-time failure.
	ErrDateTime = errors.New("date-time error")

	// ErrUnsupportedField indicates a field queried against a type that cannot represent it.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrUnsupportedUnit indicates a unit applied to a type that cannot represent it.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrOutOfRange indicates a value outside the valid range of its field.
	ErrOutOfRange = errors.New("value out of range")

	// ErrOverflow indicates checked arithmetic exceeded its bounds.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrInvalidRange indicates ValueRange bounds that violate the ordering invariant.
	ErrInvalidRange = errors.New("invalid value range")

	// ErrInvalidArgument indicates a malformed argument such as minimal days outside 1..7.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict indicates two resolved values that disagree.
	ErrConflict = errors.New("conflicting values")
)

func unsupportedField(field Field) error {
	return fmt.Errorf("%w: %v", ErrUnsupportedField, field)
}

func unsupportedUnit(unit Unit) error {
	return fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
}

// UnsupportedField returns an ErrUnsupportedField error naming field.
// Implementations of Accessor outside this package use it for consistency.
func UnsupportedField(field Field) error { return unsupportedField(field) }

// UnsupportedUnit returns an ErrUnsupportedUnit error naming unit.
func UnsupportedUnit(unit Unit) error { return unsupportedUnit(unit) }
