package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/helixml/isocal/temporal"
)

// Field name prefixes for the ISO week-date fields and the fields of the
// configured week definition, which share names such as WeekBasedYear.
const (
	isoPrefix  = "iso."
	weekPrefix = "week."
)

// parseField looks up a field by name, ignoring case. Plain names are
// ChronoFields or Julian fields; "iso." names the ISO quarter and week-date
// fields; "week." names the fields of wf.
func parseField(name string, wf *temporal.WeekFields) (temporal.Field, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	var candidates []temporal.Field
	switch {
	case strings.HasPrefix(lower, isoPrefix):
		lower = strings.TrimPrefix(lower, isoPrefix)
		candidates = []temporal.Field{
			temporal.DayOfQuarter, temporal.QuarterOfYear,
			temporal.WeekOfWeekBasedYear, temporal.WeekBasedYear,
		}
	case strings.HasPrefix(lower, weekPrefix):
		lower = strings.TrimPrefix(lower, weekPrefix)
		candidates = []temporal.Field{
			wf.DayOfWeek(), wf.WeekOfMonth(), wf.WeekOfYear(),
			wf.WeekOfWeekBasedYear(), wf.WeekBasedYear(),
		}
	default:
		for _, f := range temporal.Fields() {
			candidates = append(candidates, f)
		}
		candidates = append(candidates, temporal.JulianDay, temporal.ModifiedJulianDay, temporal.RataDie)
	}

	for _, f := range candidates {
		if strings.ToLower(fieldName(f)) == lower {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown field %q", name)
}

// fieldName strips the week definition suffix from computed field names.
func fieldName(f temporal.Field) string {
	name := f.String()
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// parseFieldValues parses FIELD=VALUE arguments in order.
func parseFieldValues(args []string, wf *temporal.WeekFields) (*temporal.FieldValues, error) {
	values := temporal.NewFieldValues()
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected FIELD=VALUE, got %q", arg)
		}
		field, err := parseField(name, wf)
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value of %s: %w", field, err)
		}
		if _, dup := values.Get(field); dup {
			return nil, fmt.Errorf("field %s given twice", field)
		}
		values.Put(field, value)
	}
	return values, nil
}
