package temporal

import "fmt"

const (
	daysPerCycle    = 146097
	days0000To1970  = daysPerCycle*5 - (30*365 + 7)
	isoChronoFormat = "%w: %v requires the ISO chronology"
)

// IsLeapYear applies the proleptic Gregorian rule: divisible by four, except
// centuries not divisible by 400.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// EpochDayOf returns the ISO epoch-day of a valid year, month and day.
func EpochDayOf(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(day) - 1
	if m > 2 {
		total--
		if !IsLeapYear(y) {
			total--
		}
	}
	return total - days0000To1970
}

// CivilFromEpochDay converts an ISO epoch-day to year, month and day.
func CivilFromEpochDay(epochDay int64) (year, month, day int) {
	zeroDay := epochDay + days0000To1970
	// shift to 0000-03-01 so the leap day ends the four year cycle
	zeroDay -= 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchDoy0 := doyEst
	marchMonth0 := (marchDoy0*5 + 2) / 153
	month = int((marchMonth0+2)%12 + 1)
	day = int(marchDoy0 - (marchMonth0*306+5)/10 + 1)
	yearEst += marchMonth0 / 10
	return int(yearEst), month, day
}

// DayOfWeekOfEpochDay returns the ISO day-of-week of an epoch-day.
func DayOfWeekOfEpochDay(epochDay int64) DayOfWeek {
	return DayOfWeek(FloorMod(epochDay+3, 7) + 1)
}

func requireISO(chrono Chronology, field Field) error {
	if chrono == nil || chrono.ID() != ISOChronologyID {
		return fmt.Errorf(isoChronoFormat, ErrDateTime, field)
	}
	return nil
}

// plusDate adds to a date and keeps the result typed as a Date.
func plusDate(d Date, amount int64, unit Unit) (Date, error) {
	t, err := d.Plus(amount, unit)
	if err != nil {
		return nil, err
	}
	return asDate(t)
}

// withDate sets a field on a date and keeps the result typed as a Date.
func withDate(d Date, field Field, value int64) (Date, error) {
	t, err := d.With(field, value)
	if err != nil {
		return nil, err
	}
	return asDate(t)
}

func asDate(t Temporal) (Date, error) {
	d, ok := t.(Date)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a date", ErrDateTime, t)
	}
	return d, nil
}
