package isocal

import (
	"fmt"

	"github.com/helixml/isocal/temporal"
)

// IsoChronology is the ISO-8601 proleptic Gregorian calendar system.
type IsoChronology struct{}

// ISO is the ISO-8601 chronology.
var ISO IsoChronology

var _ temporal.Chronology = ISO

// ID returns "ISO".
func (IsoChronology) ID() string { return temporal.ISOChronologyID }

func (IsoChronology) String() string { return temporal.ISOChronologyID }

// Date returns the date for a proleptic year, month and day.
func (IsoChronology) Date(prolepticYear, month, dayOfMonth int) (temporal.Date, error) {
	return OfDate(prolepticYear, temporal.Month(month), dayOfMonth)
}

// DateYearDay returns the date for a proleptic year and day-of-year.
func (IsoChronology) DateYearDay(prolepticYear, dayOfYear int) (temporal.Date, error) {
	return OfYearDay(prolepticYear, dayOfYear)
}

// DateEpochDay returns the date for an epoch-day.
func (IsoChronology) DateEpochDay(epochDay int64) (temporal.Date, error) {
	return OfEpochDay(epochDay)
}

// DateFrom converts acc to a LocalDate.
func (IsoChronology) DateFrom(acc temporal.Accessor) (temporal.Date, error) {
	return LocalDateFrom(acc)
}

// IsLeapYear applies the proleptic Gregorian leap year rule.
func (IsoChronology) IsLeapYear(prolepticYear int64) bool {
	return temporal.IsLeapYear(prolepticYear)
}

// Range returns the ISO range of field.
func (IsoChronology) Range(field temporal.ChronoField) temporal.ValueRange {
	return field.Range()
}

// ResolveDate builds a date from the ChronoFields in values, in order of
// preference: EpochDay, then Year with Month and DayOfMonth, DayOfYear or the
// aligned week fields. ProlepticMonth and YearOfEra are first rewritten into
// MonthOfYear and Year.
func (c IsoChronology) ResolveDate(values *temporal.FieldValues, style temporal.ResolverStyle) (temporal.Date, error) {
	if ed, ok := values.Remove(temporal.EpochDay); ok {
		return c.DateEpochDay(ed)
	}
	if err := resolveProlepticMonth(values, style); err != nil {
		return nil, err
	}
	if err := resolveYearOfEra(values, style); err != nil {
		return nil, err
	}
	if !values.Contains(temporal.Year) {
		return nil, nil
	}
	if values.Contains(temporal.MonthOfYear) {
		if values.Contains(temporal.DayOfMonth) {
			return resolveYMD(values, style)
		}
		if values.Contains(temporal.AlignedWeekOfMonth) {
			if values.Contains(temporal.AlignedDayOfWeekInMonth) {
				return resolveAlignedInMonth(values, style, temporal.AlignedDayOfWeekInMonth)
			}
			if values.Contains(temporal.DayOfWeekField) {
				return resolveAlignedInMonth(values, style, temporal.DayOfWeekField)
			}
		}
	}
	if values.Contains(temporal.DayOfYear) {
		return resolveYD(values, style)
	}
	if values.Contains(temporal.AlignedWeekOfYear) {
		if values.Contains(temporal.AlignedDayOfWeekInYear) {
			return resolveAlignedInYear(values, style, temporal.AlignedDayOfWeekInYear)
		}
		if values.Contains(temporal.DayOfWeekField) {
			return resolveAlignedInYear(values, style, temporal.DayOfWeekField)
		}
	}
	return nil, nil
}

// addFieldValue stores value, failing if a different value is already present.
func addFieldValue(values *temporal.FieldValues, field temporal.Field, value int64) error {
	if old, ok := values.Get(field); ok && old != value {
		return fmt.Errorf("%w: conflict found: %v %d differs from %v %d",
			temporal.ErrConflict, field, old, field, value)
	}
	values.Put(field, value)
	return nil
}

func resolveProlepticMonth(values *temporal.FieldValues, style temporal.ResolverStyle) error {
	pm, ok := values.Remove(temporal.ProlepticMonth)
	if !ok {
		return nil
	}
	if style != temporal.Lenient {
		if _, err := temporal.ProlepticMonth.CheckValidValue(pm); err != nil {
			return err
		}
	}
	if err := addFieldValue(values, temporal.MonthOfYear, temporal.FloorMod(pm, 12)+1); err != nil {
		return err
	}
	return addFieldValue(values, temporal.Year, temporal.FloorDiv(pm, 12))
}

// resolveYearOfEra turns YearOfEra and Era into Year. Without an era, strict
// leaves YearOfEra alone unless Year is present to cross-check against;
// smart and lenient assume the current era.
func resolveYearOfEra(values *temporal.FieldValues, style temporal.ResolverStyle) error {
	yoe, ok := values.Remove(temporal.YearOfEra)
	if !ok {
		if era, ok := values.Get(temporal.Era); ok {
			_, err := temporal.Era.CheckValidValue(era)
			return err
		}
		return nil
	}
	if style != temporal.Lenient {
		if _, err := temporal.YearOfEra.CheckValidValue(yoe); err != nil {
			return err
		}
	}
	era, hasEra := values.Remove(temporal.Era)
	if !hasEra {
		year, hasYear := values.Get(temporal.Year)
		if style == temporal.Strict && !hasYear {
			values.Put(temporal.YearOfEra, yoe)
			return nil
		}
		if !hasYear || year > 0 {
			return addFieldValue(values, temporal.Year, yoe)
		}
		bce, err := temporal.SubtractExact(1, yoe)
		if err != nil {
			return err
		}
		return addFieldValue(values, temporal.Year, bce)
	}
	switch era {
	case 1:
		return addFieldValue(values, temporal.Year, yoe)
	case 0:
		bce, err := temporal.SubtractExact(1, yoe)
		if err != nil {
			return err
		}
		return addFieldValue(values, temporal.Year, bce)
	}
	return fmt.Errorf("%w: invalid value for era: %d", temporal.ErrOutOfRange, era)
}

func removeYear(values *temporal.FieldValues) (int, error) {
	y, _ := values.Remove(temporal.Year)
	return temporal.Year.CheckValidIntValue(y)
}

// removeOffset removes field and returns its value minus one.
func removeOffset(values *temporal.FieldValues, field temporal.Field) (int64, error) {
	v, _ := values.Remove(field)
	return temporal.SubtractExact(v, 1)
}

func removeChecked(values *temporal.FieldValues, field temporal.ChronoField) (int, error) {
	v, _ := values.Remove(field)
	return field.CheckValidIntValue(v)
}

func resolveYMD(values *temporal.FieldValues, style temporal.ResolverStyle) (temporal.Date, error) {
	y, err := removeYear(values)
	if err != nil {
		return nil, err
	}
	if style == temporal.Lenient {
		months, err := removeOffset(values, temporal.MonthOfYear)
		if err != nil {
			return nil, err
		}
		days, err := removeOffset(values, temporal.DayOfMonth)
		if err != nil {
			return nil, err
		}
		date, err := MustDate(y, temporal.January, 1).PlusMonths(months)
		if err != nil {
			return nil, err
		}
		return date.PlusDays(days)
	}
	moy, err := removeChecked(values, temporal.MonthOfYear)
	if err != nil {
		return nil, err
	}
	dom, err := removeChecked(values, temporal.DayOfMonth)
	if err != nil {
		return nil, err
	}
	month := temporal.Month(moy)
	if style == temporal.Smart {
		dom = min(dom, month.Length(temporal.IsLeapYear(int64(y))))
	}
	return OfDate(y, month, dom)
}

func resolveYD(values *temporal.FieldValues, style temporal.ResolverStyle) (temporal.Date, error) {
	y, err := removeYear(values)
	if err != nil {
		return nil, err
	}
	if style == temporal.Lenient {
		days, err := removeOffset(values, temporal.DayOfYear)
		if err != nil {
			return nil, err
		}
		return MustDate(y, temporal.January, 1).PlusDays(days)
	}
	doy, err := removeChecked(values, temporal.DayOfYear)
	if err != nil {
		return nil, err
	}
	return OfYearDay(y, doy)
}

// resolveAlignedInMonth handles Year, MonthOfYear and AlignedWeekOfMonth
// with either AlignedDayOfWeekInMonth or DayOfWeek.
func resolveAlignedInMonth(values *temporal.FieldValues, style temporal.ResolverStyle, dayField temporal.ChronoField) (temporal.Date, error) {
	y, err := removeYear(values)
	if err != nil {
		return nil, err
	}
	if style == temporal.Lenient {
		months, err := removeOffset(values, temporal.MonthOfYear)
		if err != nil {
			return nil, err
		}
		base, err := MustDate(y, temporal.January, 1).PlusMonths(months)
		if err != nil {
			return nil, err
		}
		return resolveAlignedLenient(values, base, temporal.AlignedWeekOfMonth, dayField)
	}
	moy, err := removeChecked(values, temporal.MonthOfYear)
	if err != nil {
		return nil, err
	}
	base := MustDate(y, temporal.Month(moy), 1)
	date, err := resolveAligned(values, base, temporal.AlignedWeekOfMonth, dayField)
	if err != nil {
		return nil, err
	}
	if style == temporal.Strict && date.MonthValue() != moy {
		return nil, fmt.Errorf("%w: strict mode rejected resolved date as it is in a different month",
			temporal.ErrDateTime)
	}
	return date, nil
}

// resolveAlignedInYear handles Year and AlignedWeekOfYear with either
// AlignedDayOfWeekInYear or DayOfWeek.
func resolveAlignedInYear(values *temporal.FieldValues, style temporal.ResolverStyle, dayField temporal.ChronoField) (temporal.Date, error) {
	y, err := removeYear(values)
	if err != nil {
		return nil, err
	}
	base := MustDate(y, temporal.January, 1)
	if style == temporal.Lenient {
		return resolveAlignedLenient(values, base, temporal.AlignedWeekOfYear, dayField)
	}
	date, err := resolveAligned(values, base, temporal.AlignedWeekOfYear, dayField)
	if err != nil {
		return nil, err
	}
	if style == temporal.Strict && date.Year() != y {
		return nil, fmt.Errorf("%w: strict mode rejected resolved date as it is in a different year",
			temporal.ErrDateTime)
	}
	return date, nil
}

func resolveAligned(values *temporal.FieldValues, base LocalDate, weekField, dayField temporal.ChronoField) (LocalDate, error) {
	aw, err := removeChecked(values, weekField)
	if err != nil {
		return LocalDate{}, err
	}
	day, err := removeChecked(values, dayField)
	if err != nil {
		return LocalDate{}, err
	}
	if dayField != temporal.DayOfWeekField {
		return base.PlusDays(int64((aw-1)*7 + (day - 1)))
	}
	date, err := base.PlusDays(int64((aw - 1) * 7))
	if err != nil {
		return LocalDate{}, err
	}
	return date.Adjust(temporal.NextOrSame(temporal.DayOfWeek(day)))
}

// resolveAlignedLenient applies the week and day as raw offsets. A
// day-of-week outside 1..7 moves whole weeks first.
func resolveAlignedLenient(values *temporal.FieldValues, base LocalDate, weekField, dayField temporal.ChronoField) (LocalDate, error) {
	weeks, err := removeOffset(values, weekField)
	if err != nil {
		return LocalDate{}, err
	}
	date, err := base.PlusWeeks(weeks)
	if err != nil {
		return LocalDate{}, err
	}
	day, err := removeOffset(values, dayField)
	if err != nil {
		return LocalDate{}, err
	}
	if dayField != temporal.DayOfWeekField {
		return date.PlusDays(day)
	}
	if date, err = date.PlusWeeks(temporal.FloorDiv(day, 7)); err != nil {
		return LocalDate{}, err
	}
	dow := temporal.DayOfWeek(temporal.FloorMod(day, 7) + 1)
	return date.Adjust(temporal.NextOrSame(dow))
}
