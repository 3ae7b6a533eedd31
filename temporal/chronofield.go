package temporal

import "math"

// Supported proleptic year bounds.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// ChronoField is the standard set of ISO fields.
//
// Declaration order is significant: time-based fields precede DayOfWeek and
// date-based fields run from DayOfWeek to Era.
type ChronoField int

// ChronoField values.
const (
	NanoOfSecond ChronoField = iota
	NanoOfDay
	MicroOfSecond
	MicroOfDay
	MilliOfSecond
	MilliOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfAmPm
	ClockHourOfAmPm
	HourOfDay
	ClockHourOfDay
	AmPmOfDay
	DayOfWeekField
	AlignedDayOfWeekInMonth
	AlignedDayOfWeekInYear
	DayOfMonth
	DayOfYear
	EpochDay
	AlignedWeekOfMonth
	AlignedWeekOfYear
	MonthOfYear
	ProlepticMonth
	YearOfEra
	Year
	Era
	InstantSeconds
	OffsetSeconds
)

// EpochDay bounds, 1970-01-01 being zero.
const (
	minEpochDay = -365243219162
	maxEpochDay = 365241780471
)

type chronoFieldDef struct {
	name      string
	baseUnit  ChronoUnit
	rangeUnit ChronoUnit
	rng       ValueRange
}

func fixed(min, max int64) ValueRange { return mustRange(RangeOf(min, max)) }

func variable(min, maxSmallest, maxLargest int64) ValueRange {
	return mustRange(RangeOfVariable(min, maxSmallest, maxLargest))
}

var chronoFields = [...]chronoFieldDef{
	NanoOfSecond:            {"NanoOfSecond", Nanos, Seconds, fixed(0, 999_999_999)},
	NanoOfDay:               {"NanoOfDay", Nanos, Days, fixed(0, 86400*1_000_000_000-1)},
	MicroOfSecond:           {"MicroOfSecond", Micros, Seconds, fixed(0, 999_999)},
	MicroOfDay:              {"MicroOfDay", Micros, Days, fixed(0, 86400*1_000_000-1)},
	MilliOfSecond:           {"MilliOfSecond", Millis, Seconds, fixed(0, 999)},
	MilliOfDay:              {"MilliOfDay", Millis, Days, fixed(0, 86400*1000-1)},
	SecondOfMinute:          {"SecondOfMinute", Seconds, Minutes, fixed(0, 59)},
	SecondOfDay:             {"SecondOfDay", Seconds, Days, fixed(0, 86400-1)},
	MinuteOfHour:            {"MinuteOfHour", Minutes, Hours, fixed(0, 59)},
	MinuteOfDay:             {"MinuteOfDay", Minutes, Days, fixed(0, 24*60-1)},
	HourOfAmPm:              {"HourOfAmPm", Hours, HalfDays, fixed(0, 11)},
	ClockHourOfAmPm:         {"ClockHourOfAmPm", Hours, HalfDays, fixed(1, 12)},
	HourOfDay:               {"HourOfDay", Hours, Days, fixed(0, 23)},
	ClockHourOfDay:          {"ClockHourOfDay", Hours, Days, fixed(1, 24)},
	AmPmOfDay:               {"AmPmOfDay", HalfDays, Days, fixed(0, 1)},
	DayOfWeekField:          {"DayOfWeek", Days, Weeks, fixed(1, 7)},
	AlignedDayOfWeekInMonth: {"AlignedDayOfWeekInMonth", Days, Weeks, fixed(1, 7)},
	AlignedDayOfWeekInYear:  {"AlignedDayOfWeekInYear", Days, Weeks, fixed(1, 7)},
	DayOfMonth:              {"DayOfMonth", Days, Months, variable(1, 28, 31)},
	DayOfYear:               {"DayOfYear", Days, Years, variable(1, 365, 366)},
	EpochDay:                {"EpochDay", Days, Forever, fixed(minEpochDay, maxEpochDay)},
	AlignedWeekOfMonth:      {"AlignedWeekOfMonth", Weeks, Months, variable(1, 4, 5)},
	AlignedWeekOfYear:       {"AlignedWeekOfYear", Weeks, Years, fixed(1, 53)},
	MonthOfYear:             {"MonthOfYear", Months, Years, fixed(1, 12)},
	ProlepticMonth:          {"ProlepticMonth", Months, Forever, fixed(MinYear*12, MaxYear*12+11)},
	YearOfEra:               {"YearOfEra", Years, Forever, variable(1, MaxYear, MaxYear+1)},
	Year:                    {"Year", Years, Forever, fixed(MinYear, MaxYear)},
	Era:                     {"Era", Eras, Forever, fixed(0, 1)},
	InstantSeconds:          {"InstantSeconds", Seconds, Forever, fixed(math.MinInt64, math.MaxInt64)},
	OffsetSeconds:           {"OffsetSeconds", Seconds, Forever, fixed(-18*3600, 18*3600)},
}

// Fields lists every ChronoField in declaration order.
func Fields() []ChronoField {
	fields := make([]ChronoField, 0, len(chronoFields))
	for f := NanoOfSecond; f <= OffsetSeconds; f++ {
		fields = append(fields, f)
	}
	return fields
}

func (f ChronoField) valid() bool { return f >= NanoOfSecond && f <= OffsetSeconds }

func (f ChronoField) String() string {
	if !f.valid() {
		return "ChronoField(?)"
	}
	return chronoFields[f].name
}

// BaseUnit returns the unit the field is measured in.
func (f ChronoField) BaseUnit() Unit { return chronoFields[f].baseUnit }

// RangeUnit returns the unit the field is bound by.
func (f ChronoField) RangeUnit() Unit { return chronoFields[f].rangeUnit }

// Range returns the ISO range of the field.
func (f ChronoField) Range() ValueRange { return chronoFields[f].rng }

// IsDateBased is true from DayOfWeek through Era.
func (f ChronoField) IsDateBased() bool { return f >= DayOfWeekField && f <= Era }

// IsTimeBased is true for fields before DayOfWeek.
func (f ChronoField) IsTimeBased() bool { return f < DayOfWeekField }

// CheckValidValue validates v against the field's ISO range.
func (f ChronoField) CheckValidValue(v int64) (int64, error) {
	return f.Range().CheckValidValue(v, f)
}

// CheckValidIntValue validates v against the field's ISO range as an int.
func (f ChronoField) CheckValidIntValue(v int64) (int, error) {
	return f.Range().CheckValidIntValue(v, f)
}

// IsSupportedBy asks acc.
func (f ChronoField) IsSupportedBy(acc Accessor) bool { return acc.IsSupported(f) }

// RangeRefinedBy asks acc.
func (f ChronoField) RangeRefinedBy(acc Accessor) (ValueRange, error) { return acc.Range(f) }

// GetFrom asks acc.
func (f ChronoField) GetFrom(acc Accessor) (int64, error) { return acc.GetLong(f) }

// AdjustInto delegates to t.With.
func (f ChronoField) AdjustInto(t Temporal, newValue int64) (Temporal, error) {
	return t.With(f, newValue)
}

// Resolve does nothing; ChronoFields are resolved by the chronology.
func (f ChronoField) Resolve(*FieldValues, Chronology, ResolverStyle) (Date, error) {
	return nil, nil
}
