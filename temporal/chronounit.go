package temporal

import "math"

// ChronoUnit is the standard set of date period units.
//
// Declaration order is significant: classification compares ordinals
// against Days.
type ChronoUnit int

// ChronoUnit values, shortest first.
const (
	Nanos ChronoUnit = iota
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever
)

const secondsPerAverageYear = 31556952

var chronoUnitNames = [...]string{
	"Nanos", "Micros", "Millis", "Seconds", "Minutes", "Hours", "HalfDays",
	"Days", "Weeks", "Months", "Years", "Decades", "Centuries", "Millennia",
	"Eras", "Forever",
}

var chronoUnitDurations = [...]Duration{
	DurationOf(0, 1),
	DurationOf(0, 1000),
	DurationOf(0, 1_000_000),
	DurationOf(1, 0),
	DurationOf(60, 0),
	DurationOf(3600, 0),
	DurationOf(43200, 0),
	DurationOf(86400, 0),
	DurationOf(7*86400, 0),
	DurationOf(secondsPerAverageYear/12, 0),
	DurationOf(secondsPerAverageYear, 0),
	DurationOf(secondsPerAverageYear*10, 0),
	DurationOf(secondsPerAverageYear*100, 0),
	DurationOf(secondsPerAverageYear*1000, 0),
	DurationOf(secondsPerAverageYear*1_000_000_000, 0),
	DurationOf(math.MaxInt64, 999_999_999),
}

// Units lists every ChronoUnit in declaration order.
func Units() []ChronoUnit {
	units := make([]ChronoUnit, 0, len(chronoUnitNames))
	for u := Nanos; u <= Forever; u++ {
		units = append(units, u)
	}
	return units
}

func (u ChronoUnit) String() string {
	if u < Nanos || u > Forever {
		return "ChronoUnit(?)"
	}
	return chronoUnitNames[u]
}

// Duration returns the exact or estimated length of the unit.
func (u ChronoUnit) Duration() Duration { return chronoUnitDurations[u] }

// IsDurationEstimated is true for Days and longer.
func (u ChronoUnit) IsDurationEstimated() bool { return u >= Days }

// IsDateBased is true for Days and longer, excluding Forever.
func (u ChronoUnit) IsDateBased() bool { return u >= Days && u != Forever }

// IsTimeBased is true for units shorter than Days.
func (u ChronoUnit) IsTimeBased() bool { return u < Days }

// IsSupportedBy asks t.
func (u ChronoUnit) IsSupportedBy(t Temporal) bool { return t.IsUnitSupported(u) }

// AddTo delegates to t.Plus.
func (u ChronoUnit) AddTo(t Temporal, amount int64) (Temporal, error) { return t.Plus(amount, u) }

// Between delegates to start.Until.
func (u ChronoUnit) Between(start, end Temporal) (int64, error) { return start.Until(end, u) }
