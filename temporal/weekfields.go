package temporal

import (
	"fmt"
	"sync"
)

// WeekFields is a week definition: the first day of the week and the minimal
// number of days in the first week of a month or year.
//
// Instances are cached per configuration, so two WeekFields with the same
// configuration are the same pointer and their fields compare equal.
type WeekFields struct {
	firstDayOfWeek DayOfWeek
	minimalDays    int

	dayOfWeek           *ComputedDayOfField
	weekOfMonth         *ComputedDayOfField
	weekOfYear          *ComputedDayOfField
	weekOfWeekBasedYear *ComputedDayOfField
	weekBasedYear       *ComputedDayOfField
}

type weekFieldsKey struct {
	firstDayOfWeek DayOfWeek
	minimalDays    int
}

var weekFieldsCache sync.Map

// Predefined week definitions.
var (
	// ISOWeekFields starts on Monday with at least four days in the first week.
	ISOWeekFields = MustWeekFieldsOf(Monday, 4)
	// SundayStartWeekFields starts on Sunday with at least one day in the first week.
	SundayStartWeekFields = MustWeekFieldsOf(Sunday, 1)
)

// WeekFieldsOf returns the week definition for the first day of week and the
// minimal days in the first week, which must be 1 to 7.
func WeekFieldsOf(firstDayOfWeek DayOfWeek, minimalDays int) (*WeekFields, error) {
	if firstDayOfWeek < Monday || firstDayOfWeek > Sunday {
		return nil, fmt.Errorf("%w: invalid first day of week: %d", ErrInvalidArgument, int(firstDayOfWeek))
	}
	if minimalDays < 1 || minimalDays > 7 {
		return nil, fmt.Errorf("%w: minimal number of days is invalid: %d", ErrInvalidArgument, minimalDays)
	}
	key := weekFieldsKey{firstDayOfWeek, minimalDays}
	if wf, ok := weekFieldsCache.Load(key); ok {
		return wf.(*WeekFields), nil
	}
	wf, _ := weekFieldsCache.LoadOrStore(key, newWeekFields(firstDayOfWeek, minimalDays))
	return wf.(*WeekFields), nil
}

// MustWeekFieldsOf is like WeekFieldsOf but panics on invalid input.
func MustWeekFieldsOf(firstDayOfWeek DayOfWeek, minimalDays int) *WeekFields {
	wf, err := WeekFieldsOf(firstDayOfWeek, minimalDays)
	if err != nil {
		panic(err)
	}
	return wf
}

func newWeekFields(firstDayOfWeek DayOfWeek, minimalDays int) *WeekFields {
	wf := &WeekFields{firstDayOfWeek: firstDayOfWeek, minimalDays: minimalDays}
	wf.dayOfWeek = &ComputedDayOfField{name: "DayOfWeek", weekDef: wf,
		baseUnit: Days, rangeUnit: Weeks, rng: fixed(1, 7)}
	wf.weekOfMonth = &ComputedDayOfField{name: "WeekOfMonth", weekDef: wf,
		baseUnit: Weeks, rangeUnit: Months, rng: mustRange(RangeOfFull(0, 1, 4, 6))}
	wf.weekOfYear = &ComputedDayOfField{name: "WeekOfYear", weekDef: wf,
		baseUnit: Weeks, rangeUnit: Years, rng: mustRange(RangeOfFull(0, 1, 52, 54))}
	wf.weekOfWeekBasedYear = &ComputedDayOfField{name: "WeekOfWeekBasedYear", weekDef: wf,
		baseUnit: Weeks, rangeUnit: WeekBasedYears, rng: variable(1, 52, 53)}
	wf.weekBasedYear = &ComputedDayOfField{name: "WeekBasedYear", weekDef: wf,
		baseUnit: WeekBasedYears, rangeUnit: Forever, rng: Year.Range()}
	return wf
}

// FirstDayOfWeek returns the first day of the week.
func (w *WeekFields) FirstDayOfWeek() DayOfWeek { return w.firstDayOfWeek }

// MinimalDaysInFirstWeek returns the minimal days in the first week, 1 to 7.
func (w *WeekFields) MinimalDaysInFirstWeek() int { return w.minimalDays }

// DayOfWeek is the localized day-of-week, 1 on the first day of the week.
func (w *WeekFields) DayOfWeek() *ComputedDayOfField { return w.dayOfWeek }

// WeekOfMonth numbers weeks within the month. Week 0 holds days before the
// first week that has at least the minimal days.
func (w *WeekFields) WeekOfMonth() *ComputedDayOfField { return w.weekOfMonth }

// WeekOfYear numbers weeks within the year, with week 0 as for WeekOfMonth.
func (w *WeekFields) WeekOfYear() *ComputedDayOfField { return w.weekOfYear }

// WeekOfWeekBasedYear numbers weeks within the week-based-year, from 1.
func (w *WeekFields) WeekOfWeekBasedYear() *ComputedDayOfField { return w.weekOfWeekBasedYear }

// WeekBasedYear is the year that owns the week of the date.
func (w *WeekFields) WeekBasedYear() *ComputedDayOfField { return w.weekBasedYear }

func (w *WeekFields) String() string {
	return fmt.Sprintf("WeekFields[%v,%d]", w.firstDayOfWeek, w.minimalDays)
}

// ComputedDayOfField is a field derived from a WeekFields definition and
// the ISO DayOfWeek, DayOfMonth, DayOfYear and Year fields.
type ComputedDayOfField struct {
	name      string
	weekDef   *WeekFields
	baseUnit  Unit
	rangeUnit Unit
	rng       ValueRange
}

func (f *ComputedDayOfField) String() string {
	return f.name + "[" + f.weekDef.String() + "]"
}

// WeekFields returns the owning week definition.
func (f *ComputedDayOfField) WeekFields() *WeekFields { return f.weekDef }

// BaseUnit returns the unit the field is measured in.
func (f *ComputedDayOfField) BaseUnit() Unit { return f.baseUnit }

// RangeUnit returns the unit the field is bound by.
func (f *ComputedDayOfField) RangeUnit() Unit { return f.rangeUnit }

// Range returns the outer range of the field.
func (f *ComputedDayOfField) Range() ValueRange { return f.rng }

// IsDateBased is true.
func (f *ComputedDayOfField) IsDateBased() bool { return true }

// IsTimeBased is false.
func (f *ComputedDayOfField) IsTimeBased() bool { return false }

// IsSupportedBy reports whether acc has DayOfWeek plus the field the
// computation runs over.
func (f *ComputedDayOfField) IsSupportedBy(acc Accessor) bool {
	if !acc.IsSupported(DayOfWeekField) {
		return false
	}
	switch f.rangeUnit {
	case Weeks:
		return true
	case Months:
		return acc.IsSupported(DayOfMonth)
	case Years, WeekBasedYears:
		return acc.IsSupported(DayOfYear)
	case Forever:
		return acc.IsSupported(Year)
	}
	return false
}

// GetFrom computes the field from acc.
func (f *ComputedDayOfField) GetFrom(acc Accessor) (int64, error) {
	if !f.IsSupportedBy(acc) {
		return 0, unsupportedField(f)
	}
	var (
		v   int
		err error
	)
	switch f.rangeUnit {
	case Weeks:
		v, err = f.localizedDayOfWeek(acc)
	case Months:
		v, err = f.localizedWeekOf(acc, DayOfMonth)
	case Years:
		v, err = f.localizedWeekOf(acc, DayOfYear)
	case WeekBasedYears:
		v, err = f.localizedWeekOfWeekBasedYear(acc)
	case Forever:
		v, err = f.localizedWeekBasedYear(acc)
	default:
		return 0, fmt.Errorf("%w: unreachable rangeUnit %v for %v", ErrDateTime, f.rangeUnit, f)
	}
	return int64(v), err
}

// RangeRefinedBy returns the range of week numbers in the month or year of
// acc, or the outer range for the day-of-week and week-based-year fields.
func (f *ComputedDayOfField) RangeRefinedBy(acc Accessor) (ValueRange, error) {
	switch f.rangeUnit {
	case Weeks:
		return f.rng, nil
	case Months:
		return f.rangeByWeek(acc, DayOfMonth)
	case Years:
		return f.rangeByWeek(acc, DayOfYear)
	case WeekBasedYears:
		return f.rangeWeekOfWeekBasedYear(acc)
	case Forever:
		return Year.Range(), nil
	}
	return ValueRange{}, fmt.Errorf("%w: unreachable rangeUnit %v for %v", ErrDateTime, f.rangeUnit, f)
}

// AdjustInto returns t with the field set to newValue. Setting the
// week-based-year keeps the localized week and day-of-week, clamping the week
// to the last week of the target year.
func (f *ComputedDayOfField) AdjustInto(t Temporal, newValue int64) (Temporal, error) {
	newVal, err := f.rng.CheckValidIntValue(newValue, f)
	if err != nil {
		return nil, err
	}
	current, err := t.Get(f)
	if err != nil {
		return nil, err
	}
	if newVal == current {
		return t, nil
	}
	if f.rangeUnit != Forever {
		return t.Plus(int64(newVal-current), f.baseUnit)
	}
	idow, err := t.Get(f.weekDef.dayOfWeek)
	if err != nil {
		return nil, err
	}
	wowby, err := t.Get(f.weekDef.weekOfWeekBasedYear)
	if err != nil {
		return nil, err
	}
	chrono, err := ChronologyOf(t)
	if err != nil {
		return nil, err
	}
	return f.ofWeekBasedYear(chrono, newVal, wowby, idow)
}

// Resolve converts the localized day-of-week into the ISO one and builds a
// date from year, month, week and day-of-week combinations.
func (f *ComputedDayOfField) Resolve(values *FieldValues, chrono Chronology, style ResolverStyle) (Date, error) {
	value, ok := values.Get(f)
	if !ok {
		return nil, nil
	}
	newValue, err := ToIntExact(value)
	if err != nil {
		return nil, err
	}
	if f.rangeUnit == Weeks {
		checked, err := f.rng.CheckValidIntValue(value, f)
		if err != nil {
			return nil, err
		}
		startDow := int64(f.weekDef.firstDayOfWeek.Value())
		isoDow := FloorMod(startDow-1+int64(checked-1), 7) + 1
		values.Remove(f)
		values.Put(DayOfWeekField, isoDow)
		return nil, nil
	}

	isoDowValue, ok := values.Get(DayOfWeekField)
	if !ok {
		return nil, nil
	}
	isoDow, err := DayOfWeekField.CheckValidIntValue(isoDowValue)
	if err != nil {
		return nil, err
	}
	dow := f.localizedDayOfWeekOf(isoDow)

	if yearValue, ok := values.Get(Year); ok {
		year, err := Year.CheckValidIntValue(yearValue)
		if err != nil {
			return nil, err
		}
		if f.rangeUnit == Months {
			if month, ok := values.Get(MonthOfYear); ok {
				return f.resolveWeekOfMonth(values, chrono, year, month, int64(newValue), dow, style)
			}
		}
		if f.rangeUnit == Years {
			return f.resolveWeekOfYear(values, chrono, year, int64(newValue), dow, style)
		}
		return nil, nil
	}
	if (f.rangeUnit == WeekBasedYears || f.rangeUnit == Forever) &&
		values.Contains(f.weekDef.weekBasedYear) &&
		values.Contains(f.weekDef.weekOfWeekBasedYear) {
		return f.resolveWeekBasedYear(values, chrono, dow, style)
	}
	return nil, nil
}

func (f *ComputedDayOfField) resolveWeekOfMonth(values *FieldValues, chrono Chronology,
	year int, month, wom int64, localDow int, style ResolverStyle) (Date, error) {
	var date Date
	if style == Lenient {
		first, err := chrono.Date(year, 1, 1)
		if err != nil {
			return nil, err
		}
		months, err := SubtractExact(month, 1)
		if err != nil {
			return nil, err
		}
		if date, err = plusDate(first, months, Months); err != nil {
			return nil, err
		}
		if date, err = f.plusLocalizedWeeks(date, wom, localDow, DayOfMonth); err != nil {
			return nil, err
		}
	} else {
		monthValid, err := MonthOfYear.CheckValidIntValue(month)
		if err != nil {
			return nil, err
		}
		if date, err = chrono.Date(year, monthValid, 1); err != nil {
			return nil, err
		}
		womInt, err := f.rng.CheckValidIntValue(wom, f)
		if err != nil {
			return nil, err
		}
		if date, err = f.plusLocalizedWeeks(date, int64(womInt), localDow, DayOfMonth); err != nil {
			return nil, err
		}
		if style == Strict {
			got, err := date.GetLong(MonthOfYear)
			if err != nil {
				return nil, err
			}
			if got != month {
				return nil, fmt.Errorf("%w: strict mode rejected resolved date as it is in a different month", ErrDateTime)
			}
		}
	}
	values.Remove(f)
	values.Remove(Year)
	values.Remove(MonthOfYear)
	values.Remove(DayOfWeekField)
	return date, nil
}

func (f *ComputedDayOfField) resolveWeekOfYear(values *FieldValues, chrono Chronology,
	year int, woy int64, localDow int, style ResolverStyle) (Date, error) {
	date, err := chrono.Date(year, 1, 1)
	if err != nil {
		return nil, err
	}
	if style == Lenient {
		if date, err = f.plusLocalizedWeeks(date, woy, localDow, DayOfYear); err != nil {
			return nil, err
		}
	} else {
		woyInt, err := f.rng.CheckValidIntValue(woy, f)
		if err != nil {
			return nil, err
		}
		if date, err = f.plusLocalizedWeeks(date, int64(woyInt), localDow, DayOfYear); err != nil {
			return nil, err
		}
		if style == Strict {
			got, err := date.GetLong(Year)
			if err != nil {
				return nil, err
			}
			if got != int64(year) {
				return nil, fmt.Errorf("%w: strict mode rejected resolved date as it is in a different year", ErrDateTime)
			}
		}
	}
	values.Remove(f)
	values.Remove(Year)
	values.Remove(DayOfWeekField)
	return date, nil
}

// plusLocalizedWeeks moves date, the first of a month or year, to the
// localized week and day-of-week given.
func (f *ComputedDayOfField) plusLocalizedWeeks(date Date, week int64, localDow int, over ChronoField) (Date, error) {
	current, err := f.localizedWeekOf(date, over)
	if err != nil {
		return nil, err
	}
	currentDow, err := f.localizedDayOfWeek(date)
	if err != nil {
		return nil, err
	}
	weeks, err := SubtractExact(week, int64(current))
	if err != nil {
		return nil, err
	}
	days, err := MultiplyExact(weeks, 7)
	if err != nil {
		return nil, err
	}
	if days, err = AddExact(days, int64(localDow-currentDow)); err != nil {
		return nil, err
	}
	return plusDate(date, days, Days)
}

func (f *ComputedDayOfField) resolveWeekBasedYear(values *FieldValues, chrono Chronology,
	localDow int, style ResolverStyle) (Date, error) {
	wbyField := f.weekDef.weekBasedYear
	wowbyField := f.weekDef.weekOfWeekBasedYear
	wbyValue, _ := values.Get(wbyField)
	wowbyValue, _ := values.Get(wowbyField)
	yowby, err := wbyField.rng.CheckValidIntValue(wbyValue, wbyField)
	if err != nil {
		return nil, err
	}
	var date Date
	if style == Lenient {
		if date, err = f.ofWeekBasedYear(chrono, yowby, 1, localDow); err != nil {
			return nil, err
		}
		weeks, err := SubtractExact(wowbyValue, 1)
		if err != nil {
			return nil, err
		}
		if date, err = plusDate(date, weeks, Weeks); err != nil {
			return nil, err
		}
	} else {
		wowby, err := wowbyField.rng.CheckValidIntValue(wowbyValue, wowbyField)
		if err != nil {
			return nil, err
		}
		if date, err = f.ofWeekBasedYear(chrono, yowby, wowby, localDow); err != nil {
			return nil, err
		}
		if style == Strict {
			got, err := f.localizedWeekBasedYear(date)
			if err != nil {
				return nil, err
			}
			if got != yowby {
				return nil, fmt.Errorf("%w: strict mode rejected resolved date as it is in a different week-based-year", ErrDateTime)
			}
		}
	}
	values.Remove(f)
	values.Remove(wbyField)
	values.Remove(wowbyField)
	values.Remove(DayOfWeekField)
	return date, nil
}

// ofWeekBasedYear builds the date of a localized week-based-year, week and
// day-of-week, clamping the week to the last week of that year.
func (f *ComputedDayOfField) ofWeekBasedYear(chrono Chronology, yowby, wowby, dow int) (Date, error) {
	date, err := chrono.Date(yowby, 1, 1)
	if err != nil {
		return nil, err
	}
	ldow, err := f.localizedDayOfWeek(date)
	if err != nil {
		return nil, err
	}
	offset := f.startOfWeekOffset(1, ldow)
	newYearWeek := computeWeek(offset, date.LengthOfYear()+f.weekDef.minimalDays)
	wowby = min(wowby, newYearWeek-1)
	days := -offset + (dow - 1) + (wowby-1)*7
	return plusDate(date, int64(days), Days)
}

func (f *ComputedDayOfField) localizedDayOfWeek(acc Accessor) (int, error) {
	isoDow, err := acc.Get(DayOfWeekField)
	if err != nil {
		return 0, err
	}
	return f.localizedDayOfWeekOf(isoDow), nil
}

func (f *ComputedDayOfField) localizedDayOfWeekOf(isoDow int) int {
	sow := f.weekDef.firstDayOfWeek.Value()
	return floorModInt(isoDow-sow, 7) + 1
}

// localizedWeekOf numbers the week of acc within the month or year, over
// DayOfMonth or DayOfYear respectively.
func (f *ComputedDayOfField) localizedWeekOf(acc Accessor, over ChronoField) (int, error) {
	dow, err := f.localizedDayOfWeek(acc)
	if err != nil {
		return 0, err
	}
	day, err := acc.Get(over)
	if err != nil {
		return 0, err
	}
	return computeWeek(f.startOfWeekOffset(day, dow), day), nil
}

// weekOfYear returns the localized week-of-year of acc and the offset used.
func (f *ComputedDayOfField) weekOfYear(acc Accessor) (week, doy, offset int, err error) {
	dow, err := f.localizedDayOfWeek(acc)
	if err != nil {
		return 0, 0, 0, err
	}
	if doy, err = acc.Get(DayOfYear); err != nil {
		return 0, 0, 0, err
	}
	offset = f.startOfWeekOffset(doy, dow)
	return computeWeek(offset, doy), doy, offset, nil
}

// newYearWeek returns the week number, relative to offset, at which the
// following week-based-year starts.
func (f *ComputedDayOfField) newYearWeek(acc Accessor, offset int) (int, int, error) {
	dayRange, err := acc.Range(DayOfYear)
	if err != nil {
		return 0, 0, err
	}
	yearLen := int(dayRange.Maximum())
	return computeWeek(offset, yearLen+f.weekDef.minimalDays), yearLen, nil
}

func (f *ComputedDayOfField) localizedWeekBasedYear(acc Accessor) (int, error) {
	year, err := acc.Get(Year)
	if err != nil {
		return 0, err
	}
	week, _, offset, err := f.weekOfYear(acc)
	if err != nil {
		return 0, err
	}
	if week == 0 {
		return year - 1, nil
	}
	newYearWeek, _, err := f.newYearWeek(acc, offset)
	if err != nil {
		return 0, err
	}
	if week >= newYearWeek {
		return year + 1, nil
	}
	return year, nil
}

func (f *ComputedDayOfField) localizedWeekOfWeekBasedYear(acc Accessor) (int, error) {
	week, doy, offset, err := f.weekOfYear(acc)
	if err != nil {
		return 0, err
	}
	if week == 0 {
		// the last week of the previous year
		prev, err := minusDays(acc, int64(doy))
		if err != nil {
			return 0, err
		}
		return f.localizedWeekOfWeekBasedYear(prev)
	}
	if week > 50 {
		newYearWeek, _, err := f.newYearWeek(acc, offset)
		if err != nil {
			return 0, err
		}
		if week >= newYearWeek {
			week = week - newYearWeek + 1
		}
	}
	return week, nil
}

// rangeByWeek returns the week numbers of the first and last day of the
// month or year of acc.
func (f *ComputedDayOfField) rangeByWeek(acc Accessor, over ChronoField) (ValueRange, error) {
	dow, err := f.localizedDayOfWeek(acc)
	if err != nil {
		return ValueRange{}, err
	}
	day, err := acc.Get(over)
	if err != nil {
		return ValueRange{}, err
	}
	offset := f.startOfWeekOffset(day, dow)
	fieldRange, err := acc.Range(over)
	if err != nil {
		return ValueRange{}, err
	}
	return RangeOf(int64(computeWeek(offset, int(fieldRange.Minimum()))),
		int64(computeWeek(offset, int(fieldRange.Maximum()))))
}

func (f *ComputedDayOfField) rangeWeekOfWeekBasedYear(acc Accessor) (ValueRange, error) {
	if !acc.IsSupported(DayOfYear) {
		return f.weekDef.weekOfYear.rng, nil
	}
	week, doy, offset, err := f.weekOfYear(acc)
	if err != nil {
		return ValueRange{}, err
	}
	if week == 0 {
		// recompute from the previous year
		prev, err := minusDays(acc, int64(doy+7))
		if err != nil {
			return ValueRange{}, err
		}
		return f.rangeWeekOfWeekBasedYear(prev)
	}
	newYearWeek, yearLen, err := f.newYearWeek(acc, offset)
	if err != nil {
		return ValueRange{}, err
	}
	if week >= newYearWeek {
		// recompute from a week in the following year
		next, err := minusDays(acc, -int64(yearLen-doy+1+7))
		if err != nil {
			return ValueRange{}, err
		}
		return f.rangeWeekOfWeekBasedYear(next)
	}
	return RangeOf(1, int64(newYearWeek-1))
}

// startOfWeekOffset returns the offset of the first day of the first week
// relative to day 1. A partial week shorter than the minimal days belongs
// to the previous period.
func (f *ComputedDayOfField) startOfWeekOffset(day, dow int) int {
	weekStart := floorModInt(day-dow, 7)
	offset := -weekStart
	if weekStart+1 > f.weekDef.minimalDays {
		offset = 7 - weekStart
	}
	return offset
}

// computeWeek returns the week number of day; week 0 is the trailing week of
// the previous period.
func computeWeek(offset, day int) int {
	return (7 + offset + (day - 1)) / 7
}

// minusDays converts acc to a date in its chronology and subtracts days.
func minusDays(acc Accessor, days int64) (Date, error) {
	chrono, err := ChronologyOf(acc)
	if err != nil {
		return nil, err
	}
	date, err := chrono.DateFrom(acc)
	if err != nil {
		return nil, err
	}
	t, err := Minus(date, days, Days)
	if err != nil {
		return nil, err
	}
	return asDate(t)
}
