package temporal

import "reflect"

// IsoField is one of the ISO-8601 quarter and week-based-year fields.
//
// They require an ISO accessor: DayOfQuarter and QuarterOfYear read the
// year, month and day-of-year; the week-based-year fields need EpochDay.
type IsoField int

// ISO fields.
const (
	// DayOfQuarter runs 1..90, 91 or 92 depending on quarter and leap year.
	DayOfQuarter IsoField = iota
	// QuarterOfYear runs 1..4.
	QuarterOfYear
	// WeekOfWeekBasedYear runs 1..52 or 53. Week 1 is the Monday-starting
	// week that contains the first Thursday of the year.
	WeekOfWeekBasedYear
	// WeekBasedYear is the year the ISO week belongs to.
	WeekBasedYear
)

// IsoUnit is one of the ISO-8601 units that cannot be expressed as ChronoUnits.
type IsoUnit int

// ISO units.
const (
	// WeekBasedYears adds to WeekBasedYear, keeping week and day-of-week.
	WeekBasedYears IsoUnit = iota
	// QuarterYears is three months.
	QuarterYears
)

// day-of-year before the start of each quarter, standard then leap year
var quarterDays = [...]int{0, 90, 181, 273, 0, 91, 182, 274}

var isoFieldNames = [...]string{"DayOfQuarter", "QuarterOfYear", "WeekOfWeekBasedYear", "WeekBasedYear"}

var isoFieldRanges = [...]ValueRange{
	variable(1, 90, 92),
	fixed(1, 4),
	variable(1, 52, 53),
	fixed(MinYear, MaxYear),
}

func (f IsoField) String() string { return isoFieldNames[f] }

// BaseUnit returns the unit the field is measured in.
func (f IsoField) BaseUnit() Unit {
	switch f {
	case DayOfQuarter:
		return Days
	case QuarterOfYear:
		return QuarterYears
	case WeekOfWeekBasedYear:
		return Weeks
	}
	return WeekBasedYears
}

// RangeUnit returns the unit the field is bound by.
func (f IsoField) RangeUnit() Unit {
	switch f {
	case DayOfQuarter:
		return QuarterYears
	case QuarterOfYear:
		return Years
	case WeekOfWeekBasedYear:
		return WeekBasedYears
	}
	return Forever
}

// Range returns the ISO range of the field.
func (f IsoField) Range() ValueRange { return isoFieldRanges[f] }

// IsDateBased is true.
func (f IsoField) IsDateBased() bool { return true }

// IsTimeBased is false.
func (f IsoField) IsTimeBased() bool { return false }

// IsSupportedBy reports whether acc is ISO and has the fields this field reads.
func (f IsoField) IsSupportedBy(acc Accessor) bool {
	switch f {
	case DayOfQuarter:
		return acc.IsSupported(DayOfYear) && acc.IsSupported(MonthOfYear) &&
			acc.IsSupported(Year) && IsISO(acc)
	case QuarterOfYear:
		return acc.IsSupported(MonthOfYear) && IsISO(acc)
	}
	return acc.IsSupported(EpochDay) && IsISO(acc)
}

// RangeRefinedBy returns the range of the field in the context of acc.
func (f IsoField) RangeRefinedBy(acc Accessor) (ValueRange, error) {
	if !f.IsSupportedBy(acc) {
		return ValueRange{}, unsupportedField(f)
	}
	switch f {
	case DayOfQuarter:
		qoy, err := acc.GetLong(QuarterOfYear)
		if err != nil {
			return ValueRange{}, err
		}
		switch qoy {
		case 1:
			year, err := acc.GetLong(Year)
			if err != nil {
				return ValueRange{}, err
			}
			if IsLeapYear(year) {
				return fixed(1, 91), nil
			}
			return fixed(1, 90), nil
		case 2:
			return fixed(1, 91), nil
		case 3, 4:
			return fixed(1, 92), nil
		}
		return f.Range(), nil
	case WeekOfWeekBasedYear:
		w, err := readWeekDate(acc)
		if err != nil {
			return ValueRange{}, err
		}
		return fixed(1, int64(isoWeekRange(w.weekBasedYear()))), nil
	}
	return f.Range(), nil
}

// GetFrom extracts the value of the field from acc.
func (f IsoField) GetFrom(acc Accessor) (int64, error) {
	if !f.IsSupportedBy(acc) {
		return 0, unsupportedField(f)
	}
	switch f {
	case DayOfQuarter:
		doy, err := acc.Get(DayOfYear)
		if err != nil {
			return 0, err
		}
		moy, err := acc.Get(MonthOfYear)
		if err != nil {
			return 0, err
		}
		year, err := acc.GetLong(Year)
		if err != nil {
			return 0, err
		}
		idx := (moy - 1) / 3
		if IsLeapYear(year) {
			idx += 4
		}
		return int64(doy - quarterDays[idx]), nil
	case QuarterOfYear:
		moy, err := acc.GetLong(MonthOfYear)
		if err != nil {
			return 0, err
		}
		return (moy + 2) / 3, nil
	}
	w, err := readWeekDate(acc)
	if err != nil {
		return 0, err
	}
	if f == WeekOfWeekBasedYear {
		return int64(w.week()), nil
	}
	return w.weekBasedYear(), nil
}

// AdjustInto returns a copy of t with the field set to newValue.
func (f IsoField) AdjustInto(t Temporal, newValue int64) (Temporal, error) {
	if f == WeekBasedYear {
		return f.adjustWeekBasedYear(t, newValue)
	}
	cur, err := f.GetFrom(t)
	if err != nil {
		return nil, err
	}
	if _, err := f.Range().CheckValidValue(newValue, f); err != nil {
		return nil, err
	}
	switch f {
	case DayOfQuarter:
		doy, err := t.GetLong(DayOfYear)
		if err != nil {
			return nil, err
		}
		return t.With(DayOfYear, doy+(newValue-cur))
	case QuarterOfYear:
		moy, err := t.GetLong(MonthOfYear)
		if err != nil {
			return nil, err
		}
		return t.With(MonthOfYear, moy+(newValue-cur)*3)
	}
	delta, err := SubtractExact(newValue, cur)
	if err != nil {
		return nil, err
	}
	return t.Plus(delta, Weeks)
}

// adjustWeekBasedYear keeps week and day-of-week, moving week 53 to 52
// when the target year is short. The year itself may lie outside the date
// range of t, so the result is computed through EpochDay.
func (f IsoField) adjustWeekBasedYear(t Temporal, newValue int64) (Temporal, error) {
	if !f.IsSupportedBy(t) {
		return nil, unsupportedField(f)
	}
	newWby, err := f.Range().CheckValidIntValue(newValue, f)
	if err != nil {
		return nil, err
	}
	w, err := readWeekDate(t)
	if err != nil {
		return nil, err
	}
	week := w.week()
	if week == 53 && isoWeekRange(int64(newWby)) == 52 {
		week = 52
	}
	// the 4th of January is always in week 1
	jan4 := EpochDayOf(newWby, 1, 4)
	days := int64(w.dow-DayOfWeekOfEpochDay(jan4).Value()) + int64(week-1)*7
	return t.With(EpochDay, jan4+days)
}

// Resolve builds a date from year + quarter + day-of-quarter, or from
// week-based-year + week + day-of-week.
func (f IsoField) Resolve(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error) {
	switch f {
	case DayOfQuarter:
		return f.resolveQuarter(values, chrono, style)
	case WeekOfWeekBasedYear:
		return f.resolveWeek(values, chrono, style)
	}
	return nil, nil
}

func (f IsoField) resolveQuarter(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error) {
	qoyLong, okQ := values.Get(QuarterOfYear)
	yearLong, okY := values.Get(Year)
	if !okQ || !okY {
		return nil, nil
	}
	y, err := Year.CheckValidIntValue(yearLong)
	if err != nil {
		return nil, err
	}
	doq, _ := values.Get(DayOfQuarter)
	if err := requireISO(chrono, f); err != nil {
		return nil, err
	}
	var date Date
	if style == Lenient {
		if date, err = chrono.Date(y, 1, 1); err != nil {
			return nil, err
		}
		q, err := SubtractExact(qoyLong, 1)
		if err != nil {
			return nil, err
		}
		months, err := MultiplyExact(q, 3)
		if err != nil {
			return nil, err
		}
		if date, err = plusDate(date, months, Months); err != nil {
			return nil, err
		}
		if doq, err = SubtractExact(doq, 1); err != nil {
			return nil, err
		}
	} else {
		qoy, err := QuarterOfYear.Range().CheckValidIntValue(qoyLong, QuarterOfYear)
		if err != nil {
			return nil, err
		}
		if date, err = chrono.Date(y, (qoy-1)*3+1, 1); err != nil {
			return nil, err
		}
		if doq < 1 || doq > 90 {
			rng := f.Range()
			if style == Strict {
				if rng, err = f.RangeRefinedBy(date); err != nil {
					return nil, err
				}
			}
			if _, err := rng.CheckValidValue(doq, f); err != nil {
				return nil, err
			}
		}
		doq--
	}
	values.Remove(f)
	values.Remove(Year)
	values.Remove(QuarterOfYear)
	return plusDate(date, doq, Days)
}

func (f IsoField) resolveWeek(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error) {
	wbyLong, okW := values.Get(WeekBasedYear)
	dowLong, okD := values.Get(DayOfWeekField)
	if !okW || !okD {
		return nil, nil
	}
	wby, err := WeekBasedYear.Range().CheckValidIntValue(wbyLong, WeekBasedYear)
	if err != nil {
		return nil, err
	}
	wowby, _ := values.Get(WeekOfWeekBasedYear)
	if err := requireISO(chrono, f); err != nil {
		return nil, err
	}
	date, err := chrono.Date(wby, 1, 4)
	if err != nil {
		return nil, err
	}
	if style == Lenient {
		// out-of-range day-of-week values spill into neighbouring weeks
		shift, err := SubtractExact(dowLong, 1)
		if err != nil {
			return nil, err
		}
		weeks := FloorDiv(shift, 7)
		dow := FloorMod(shift, 7) + 1
		w, err := SubtractExact(wowby, 1)
		if err != nil {
			return nil, err
		}
		if weeks, err = AddExact(weeks, w); err != nil {
			return nil, err
		}
		if date, err = plusDate(date, weeks, Weeks); err != nil {
			return nil, err
		}
		if date, err = withDate(date, DayOfWeekField, dow); err != nil {
			return nil, err
		}
	} else {
		dow, err := DayOfWeekField.CheckValidIntValue(dowLong)
		if err != nil {
			return nil, err
		}
		if wowby < 1 || wowby > 52 {
			rng := f.Range()
			if style == Strict {
				rng = fixed(1, int64(isoWeekRange(int64(wby))))
			}
			if _, err := rng.CheckValidValue(wowby, f); err != nil {
				return nil, err
			}
		}
		if date, err = plusDate(date, wowby-1, Weeks); err != nil {
			return nil, err
		}
		if date, err = withDate(date, DayOfWeekField, int64(dow)); err != nil {
			return nil, err
		}
	}
	values.Remove(f)
	values.Remove(WeekBasedYear)
	values.Remove(DayOfWeekField)
	return date, nil
}

// weekDate is the ISO year, day-of-year and day-of-week of a date.
type weekDate struct {
	year int64
	doy  int
	dow  int
}

func readWeekDate(acc Accessor) (weekDate, error) {
	year, err := acc.GetLong(Year)
	if err != nil {
		return weekDate{}, err
	}
	doy, err := acc.Get(DayOfYear)
	if err != nil {
		return weekDate{}, err
	}
	dow, err := acc.Get(DayOfWeekField)
	if err != nil {
		return weekDate{}, err
	}
	return weekDate{year: year, doy: doy, dow: dow}, nil
}

// week returns the ISO week-of-week-based-year.
func (w weekDate) week() int {
	dow0 := w.dow - 1
	doy0 := w.doy - 1
	doyThu0 := doy0 + (3 - dow0)
	alignedWeek := doyThu0 / 7
	firstThuDoy0 := doyThu0 - alignedWeek*7
	firstMonDoy0 := firstThuDoy0 - 3
	if firstMonDoy0 < -3 {
		firstMonDoy0 += 7
	}
	if doy0 < firstMonDoy0 {
		return isoWeekRange(w.year - 1)
	}
	week := (doy0-firstMonDoy0)/7 + 1
	if week == 53 {
		if !(firstMonDoy0 == -3 || (firstMonDoy0 == -2 && IsLeapYear(w.year))) {
			week = 1
		}
	}
	return week
}

// weekBasedYear moves the first and last three days of the calendar year
// into the adjacent week-based-year when their week belongs there.
func (w weekDate) weekBasedYear() int64 {
	year := w.year
	doy := w.doy
	dow0 := w.dow - 1
	if doy <= 3 {
		if doy-dow0 < -2 {
			year--
		}
	} else if doy >= 363 {
		doy = doy - 363
		if IsLeapYear(year) {
			doy--
		}
		if doy-dow0 >= 0 {
			year++
		}
	}
	return year
}

// isoWeekRange returns 53 when the week-based-year starts on a Thursday, or
// on a Wednesday in a leap year, and 52 otherwise.
func isoWeekRange(wby int64) int {
	jan1 := DayOfWeekOfEpochDay(EpochDayOf(int(wby), 1, 1))
	if jan1 == Thursday || (jan1 == Wednesday && IsLeapYear(wby)) {
		return 53
	}
	return 52
}

func (u IsoUnit) String() string {
	if u == WeekBasedYears {
		return "WeekBasedYears"
	}
	return "QuarterYears"
}

// Duration is an estimate based on the average Gregorian year.
func (u IsoUnit) Duration() Duration {
	if u == WeekBasedYears {
		return DurationOf(secondsPerAverageYear, 0)
	}
	return DurationOf(secondsPerAverageYear/4, 0)
}

// IsDurationEstimated is true.
func (u IsoUnit) IsDurationEstimated() bool { return true }

// IsDateBased is true.
func (u IsoUnit) IsDateBased() bool { return true }

// IsTimeBased is false.
func (u IsoUnit) IsTimeBased() bool { return false }

// IsSupportedBy requires an ISO temporal with EpochDay.
func (u IsoUnit) IsSupportedBy(t Temporal) bool {
	return t.IsSupported(EpochDay) && IsISO(t)
}

// AddTo adds through WeekBasedYear or through years and months.
func (u IsoUnit) AddTo(t Temporal, amount int64) (Temporal, error) {
	if u == WeekBasedYears {
		cur, err := t.Get(WeekBasedYear)
		if err != nil {
			return nil, err
		}
		wby, err := AddExact(int64(cur), amount)
		if err != nil {
			return nil, err
		}
		return t.With(WeekBasedYear, wby)
	}
	r, err := t.Plus(amount/4, Years)
	if err != nil {
		return nil, err
	}
	return r.Plus((amount%4)*3, Months)
}

// Between counts whole units. Temporals of different types are delegated to
// start.Until so that end is converted first.
func (u IsoUnit) Between(start, end Temporal) (int64, error) {
	if reflect.TypeOf(start) != reflect.TypeOf(end) {
		return start.Until(end, u)
	}
	if u == WeekBasedYears {
		a, err := start.GetLong(WeekBasedYear)
		if err != nil {
			return 0, err
		}
		b, err := end.GetLong(WeekBasedYear)
		if err != nil {
			return 0, err
		}
		return SubtractExact(b, a)
	}
	months, err := start.Until(end, Months)
	if err != nil {
		return 0, err
	}
	return months / 3, nil
}
