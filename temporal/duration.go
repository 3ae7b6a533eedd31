package temporal

import (
	"fmt"
	"math"
	"time"
)

// Duration is an exact length of time in seconds and nanoseconds. It exists
// to express unit lengths such as Eras and Forever that exceed time.Duration.
type Duration struct {
	seconds int64
	nanos   int32
}

// DurationOf returns a Duration, normalising nanos into [0, 1e9).
func DurationOf(seconds, nanos int64) Duration {
	seconds += FloorDiv(nanos, 1_000_000_000)
	return Duration{seconds: seconds, nanos: int32(FloorMod(nanos, 1_000_000_000))}
}

// Seconds returns the whole seconds.
func (d Duration) Seconds() int64 { return d.seconds }

// Nanos returns the nanosecond adjustment in [0, 1e9).
func (d Duration) Nanos() int32 { return d.nanos }

// Compare returns -1, 0 or 1.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.seconds < o.seconds:
		return -1
	case d.seconds > o.seconds:
		return 1
	case d.nanos < o.nanos:
		return -1
	case d.nanos > o.nanos:
		return 1
	}
	return 0
}

// Std converts to time.Duration; ok is false when the value does not fit.
func (d Duration) Std() (time.Duration, bool) {
	const maxSeconds = math.MaxInt64 / int64(time.Second)
	if d.seconds > maxSeconds || d.seconds < -maxSeconds {
		return 0, false
	}
	return time.Duration(d.seconds)*time.Second + time.Duration(d.nanos), true
}

func (d Duration) String() string {
	if d.nanos == 0 {
		return fmt.Sprintf("PT%dS", d.seconds)
	}
	return fmt.Sprintf("PT%d.%09dS", d.seconds, d.nanos)
}
