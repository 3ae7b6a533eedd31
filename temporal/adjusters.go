package temporal

// FirstDayOfMonth returns an adjuster to the first day of the current month.
func FirstDayOfMonth() Adjuster {
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		return t.With(DayOfMonth, 1)
	})
}

// LastDayOfMonth returns an adjuster to the last day of the current month,
// using the month's actual length.
func LastDayOfMonth() Adjuster {
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		r, err := t.Range(DayOfMonth)
		if err != nil {
			return nil, err
		}
		return t.With(DayOfMonth, r.Maximum())
	})
}

// FirstDayOfNextMonth returns an adjuster to the first day of the next month.
func FirstDayOfNextMonth() Adjuster {
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		first, err := t.With(DayOfMonth, 1)
		if err != nil {
			return nil, err
		}
		return first.Plus(1, Months)
	})
}

// FirstDayOfYear returns an adjuster to the first day of the current year.
func FirstDayOfYear() Adjuster {
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		return t.With(DayOfYear, 1)
	})
}

// LastDayOfYear returns an adjuster to the last day of the current year.
func LastDayOfYear() Adjuster {
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		r, err := t.Range(DayOfYear)
		if err != nil {
			return nil, err
		}
		return t.With(DayOfYear, r.Maximum())
	})
}

// FirstDayOfNextYear returns an adjuster to the first day of the next year.
func FirstDayOfNextYear() Adjuster {
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		first, err := t.With(DayOfYear, 1)
		if err != nil {
			return nil, err
		}
		return first.Plus(1, Years)
	})
}

// FirstInMonth returns an adjuster to the first dow in the current month.
func FirstInMonth(dow DayOfWeek) Adjuster {
	return DayOfWeekInMonth(1, dow)
}

// LastInMonth returns an adjuster to the last dow in the current month.
func LastInMonth(dow DayOfWeek) Adjuster {
	return DayOfWeekInMonth(-1, dow)
}

// DayOfWeekInMonth returns an adjuster to the ordinal dow in the current
// month. Positive ordinals count forward from the first of the month, zero
// means the last dow of the previous month and negative ordinals count back
// from the last day of the month. Large ordinals move into later months.
func DayOfWeekInMonth(ordinal int, dow DayOfWeek) Adjuster {
	dowValue := int64(dow.Value())
	if ordinal >= 0 {
		return AdjusterFunc(func(t Temporal) (Temporal, error) {
			first, err := t.With(DayOfMonth, 1)
			if err != nil {
				return nil, err
			}
			cur, err := first.Get(DayOfWeekField)
			if err != nil {
				return nil, err
			}
			diff := (dowValue - int64(cur) + 7) % 7
			diff += (int64(ordinal) - 1) * 7
			return first.Plus(diff, Days)
		})
	}
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		r, err := t.Range(DayOfMonth)
		if err != nil {
			return nil, err
		}
		last, err := t.With(DayOfMonth, r.Maximum())
		if err != nil {
			return nil, err
		}
		cur, err := last.Get(DayOfWeekField)
		if err != nil {
			return nil, err
		}
		diff := dowValue - int64(cur)
		if diff > 0 {
			diff -= 7
		}
		diff -= (-int64(ordinal) - 1) * 7
		return last.Plus(diff, Days)
	})
}

// Next returns an adjuster to the first dow strictly after the date.
func Next(dow DayOfWeek) Adjuster {
	return relativeDay(dow, false, true)
}

// NextOrSame returns an adjuster to the first dow on or after the date.
func NextOrSame(dow DayOfWeek) Adjuster {
	return relativeDay(dow, true, true)
}

// Previous returns an adjuster to the first dow strictly before the date.
func Previous(dow DayOfWeek) Adjuster {
	return relativeDay(dow, false, false)
}

// PreviousOrSame returns an adjuster to the first dow on or before the date.
func PreviousOrSame(dow DayOfWeek) Adjuster {
	return relativeDay(dow, true, false)
}

// relativeDay moves by a day delta in [1,7], or 0 when orSame matches.
func relativeDay(dow DayOfWeek, orSame, forward bool) Adjuster {
	dowValue := int64(dow.Value())
	return AdjusterFunc(func(t Temporal) (Temporal, error) {
		cur, err := t.Get(DayOfWeekField)
		if err != nil {
			return nil, err
		}
		calDow := int64(cur)
		if orSame && calDow == dowValue {
			return t, nil
		}
		if forward {
			diff := calDow - dowValue
			if diff >= 0 {
				return t.Plus(7-diff, Days)
			}
			return t.Plus(-diff, Days)
		}
		diff := dowValue - calDow
		if diff >= 0 {
			return Minus(t, 7-diff, Days)
		}
		return Minus(t, -diff, Days)
	})
}
