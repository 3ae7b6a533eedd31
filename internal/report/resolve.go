package report

import (
	"strconv"
	"strings"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/temporal"
)

// FieldValue is one field and value pair.
type FieldValue struct {
	Field string `json:"field" yaml:"field"`
	Value int64  `json:"value" yaml:"value"`
}

// Resolution is the outcome of resolving field values into a date.
type Resolution struct {
	Input    []FieldValue `json:"input" yaml:"input"`
	Style    string       `json:"style" yaml:"style"`
	Date     string       `json:"date,omitempty" yaml:"date,omitempty"`
	Resolved bool         `json:"resolved" yaml:"resolved"`
	// Remaining lists the values left over when no date was formed.
	Remaining []FieldValue `json:"remaining,omitempty" yaml:"remaining,omitempty"`
}

// NewResolution records the input before it is consumed by resolution.
func NewResolution(values *temporal.FieldValues, style temporal.ResolverStyle) Resolution {
	return Resolution{Input: fieldValues(values), Style: style.String()}
}

// Complete records the result of isocal.ResolveDate.
func (r Resolution) Complete(date isocal.LocalDate, ok bool, remaining *temporal.FieldValues) Resolution {
	r.Resolved = ok
	if ok {
		r.Date = date.String()
		return r
	}
	r.Remaining = fieldValues(remaining)
	return r
}

func fieldValues(values *temporal.FieldValues) []FieldValue {
	out := make([]FieldValue, 0, values.Len())
	for _, field := range values.Fields() {
		value, _ := values.Get(field)
		out = append(out, FieldValue{Field: field.String(), Value: value})
	}
	return out
}

// Rows implements Report.
func (r Resolution) Rows() [][2]string {
	rows := [][2]string{
		{"input", joinFieldValues(r.Input)},
		{"style", r.Style},
	}
	if r.Resolved {
		return append(rows, [2]string{"date", r.Date})
	}
	return append(rows, [2]string{"date", "(unresolved)"}, [2]string{"remaining", joinFieldValues(r.Remaining)})
}

func joinFieldValues(values []FieldValue) string {
	parts := make([]string, len(values))
	for i, fv := range values {
		parts[i] = fv.Field + "=" + strconv.FormatInt(fv.Value, 10)
	}
	return strings.Join(parts, " ")
}

// Adjustment is the outcome of applying an adjuster to a date.
type Adjustment struct {
	Date     string `json:"date" yaml:"date"`
	Adjuster string `json:"adjuster" yaml:"adjuster"`
	Result   string `json:"result" yaml:"result"`
}

// NewAdjustment records date adjusted to result by the named adjuster.
func NewAdjustment(date isocal.LocalDate, adjuster string, result isocal.LocalDate) Adjustment {
	return Adjustment{Date: date.String(), Adjuster: adjuster, Result: result.String()}
}

// Rows implements Report.
func (a Adjustment) Rows() [][2]string {
	return [][2]string{
		{"date", a.Date},
		{"adjuster", a.Adjuster},
		{"result", a.Result},
	}
}
