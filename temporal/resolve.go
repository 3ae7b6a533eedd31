package temporal

import (
	"fmt"
	"strings"
)

// ResolverStyle controls how strictly field values are combined into a date.
type ResolverStyle int

// ResolverStyle values.
const (
	// Strict validates every field and rejects dates that move out of the
	// requested month, year or week-based-year.
	Strict ResolverStyle = iota
	// Smart validates ranges but lets the result roll into an adjacent period.
	Smart
	// Lenient applies out-of-range values as raw offsets.
	Lenient
)

func (s ResolverStyle) String() string {
	switch s {
	case Strict:
		return "strict"
	case Smart:
		return "smart"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("ResolverStyle(%d)", int(s))
}

// ParseResolverStyle parses "strict", "smart" or "lenient" in any case.
func ParseResolverStyle(s string) (ResolverStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "smart", "":
		return Smart, nil
	case "lenient":
		return Lenient, nil
	}
	return 0, fmt.Errorf("%w: unknown resolver style %q", ErrInvalidArgument, s)
}

// FieldValues is the table of not-yet-reconciled field values threaded
// through resolution. Iteration follows insertion order.
type FieldValues struct {
	order  []Field
	values map[Field]int64
}

// NewFieldValues returns an empty table.
func NewFieldValues() *FieldValues {
	return &FieldValues{values: make(map[Field]int64)}
}

// Put sets the value of field, keeping its original position if present.
func (v *FieldValues) Put(field Field, value int64) {
	if _, ok := v.values[field]; !ok {
		v.order = append(v.order, field)
	}
	v.values[field] = value
}

// Get returns the value of field and whether it is present.
func (v *FieldValues) Get(field Field) (int64, bool) {
	value, ok := v.values[field]
	return value, ok
}

// Contains reports whether field is present.
func (v *FieldValues) Contains(field Field) bool {
	_, ok := v.values[field]
	return ok
}

// Remove deletes field and returns its previous value.
func (v *FieldValues) Remove(field Field) (int64, bool) {
	value, ok := v.values[field]
	if !ok {
		return 0, false
	}
	delete(v.values, field)
	for i, f := range v.order {
		if f == field {
			v.order = append(v.order[:i:i], v.order[i+1:]...)
			break
		}
	}
	return value, true
}

// Len returns the number of entries.
func (v *FieldValues) Len() int { return len(v.values) }

// Fields returns a snapshot of the fields in insertion order.
func (v *FieldValues) Fields() []Field {
	fields := make([]Field, len(v.order))
	copy(fields, v.order)
	return fields
}

func (v *FieldValues) String() string {
	parts := make([]string, 0, len(v.order))
	for _, f := range v.order {
		parts = append(parts, fmt.Sprintf("%v=%d", f, v.values[f]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

const maxResolveChanges = 50

// Resolve reconciles values into a date.
//
// Each field is offered the table in turn; a field that rewrites or consumes
// entries restarts the pass, until a pass makes no change. The chronology then
// resolves the remaining ChronoFields. Date fields still present afterwards
// must agree with the resolved date and are removed. A nil Date with a nil
// error means the table did not describe a date.
func Resolve(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error) {
	var date Date
	changes := 0
outer:
	for changes < maxResolveChanges {
		for _, field := range values.Fields() {
			if !values.Contains(field) {
				continue
			}
			resolved, err := field.Resolve(values, chrono, style)
			if err != nil {
				return nil, err
			}
			if resolved != nil {
				values.Remove(field)
				if date, err = mergeDate(date, resolved); err != nil {
					return nil, err
				}
				changes++
				continue outer
			}
			if !values.Contains(field) {
				changes++
				continue outer
			}
		}
		break
	}
	if changes == maxResolveChanges {
		return nil, fmt.Errorf("%w: a field resolve method did not converge", ErrDateTime)
	}

	fromChrono, err := chrono.ResolveDate(values, style)
	if err != nil {
		return nil, err
	}
	if fromChrono != nil {
		if date, err = mergeDate(date, fromChrono); err != nil {
			return nil, err
		}
	}
	if date == nil {
		return nil, nil
	}
	if err := crossCheck(values, date); err != nil {
		return nil, err
	}
	return date, nil
}

func mergeDate(current, resolved Date) (Date, error) {
	if current != nil && current.ToEpochDay() != resolved.ToEpochDay() {
		return nil, fmt.Errorf("%w: conflict found: dates %v and %v differ", ErrConflict, current, resolved)
	}
	return resolved, nil
}

// crossCheck verifies and removes date-based ChronoFields left after resolution.
func crossCheck(values *FieldValues, date Date) error {
	for _, field := range values.Fields() {
		cf, ok := field.(ChronoField)
		if !ok || !cf.IsDateBased() || !date.IsSupported(cf) {
			continue
		}
		want, _ := values.Get(cf)
		got, err := date.GetLong(cf)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: field %v %d differs from %v %d derived from %v",
				ErrConflict, cf, want, cf, got, date)
		}
		values.Remove(cf)
	}
	return nil
}
