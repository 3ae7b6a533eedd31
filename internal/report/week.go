package report

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/temporal"
)

// Week describes where a date falls under a week definition and under the
// ISO week-date and Julian day systems.
type Week struct {
	Date       string `json:"date" yaml:"date"`
	DayOfWeek  string `json:"day_of_week" yaml:"day_of_week"`
	WeekFields string `json:"week_fields" yaml:"week_fields"`

	LocalizedDayOfWeek  int `json:"localized_day_of_week" yaml:"localized_day_of_week"`
	WeekOfMonth         int `json:"week_of_month" yaml:"week_of_month"`
	WeekOfYear          int `json:"week_of_year" yaml:"week_of_year"`
	WeekBasedYear       int `json:"week_based_year" yaml:"week_based_year"`
	WeekOfWeekBasedYear int `json:"week_of_week_based_year" yaml:"week_of_week_based_year"`

	ISO    ISOWeek    `json:"iso" yaml:"iso"`
	Julian JulianDays `json:"julian" yaml:"julian"`
}

// ISOWeek holds the ISO-8601 quarter and week-date fields.
type ISOWeek struct {
	WeekDate      string `json:"week_date" yaml:"week_date"`
	WeekBasedYear int    `json:"week_based_year" yaml:"week_based_year"`
	Week          int    `json:"week" yaml:"week"`
	Quarter       int    `json:"quarter" yaml:"quarter"`
	DayOfQuarter  int    `json:"day_of_quarter" yaml:"day_of_quarter"`
}

// JulianDays holds the day counts of the date.
type JulianDays struct {
	JulianDay         int64 `json:"julian_day" yaml:"julian_day"`
	ModifiedJulianDay int64 `json:"modified_julian_day" yaml:"modified_julian_day"`
	RataDie           int64 `json:"rata_die" yaml:"rata_die"`
}

// NewWeek computes the week report of date under wf.
func NewWeek(date isocal.LocalDate, wf *temporal.WeekFields) (Week, error) {
	w := Week{
		Date:       date.String(),
		DayOfWeek:  date.DayOfWeek().String(),
		WeekFields: wf.String(),
	}

	ints := []struct {
		field temporal.Field
		dst   *int
	}{
		{wf.DayOfWeek(), &w.LocalizedDayOfWeek},
		{wf.WeekOfMonth(), &w.WeekOfMonth},
		{wf.WeekOfYear(), &w.WeekOfYear},
		{wf.WeekBasedYear(), &w.WeekBasedYear},
		{wf.WeekOfWeekBasedYear(), &w.WeekOfWeekBasedYear},
		{temporal.WeekBasedYear, &w.ISO.WeekBasedYear},
		{temporal.WeekOfWeekBasedYear, &w.ISO.Week},
		{temporal.QuarterOfYear, &w.ISO.Quarter},
		{temporal.DayOfQuarter, &w.ISO.DayOfQuarter},
	}
	for _, f := range ints {
		v, err := date.Get(f.field)
		if err != nil {
			return Week{}, err
		}
		*f.dst = v
	}

	longs := []struct {
		field temporal.Field
		dst   *int64
	}{
		{temporal.JulianDay, &w.Julian.JulianDay},
		{temporal.ModifiedJulianDay, &w.Julian.ModifiedJulianDay},
		{temporal.RataDie, &w.Julian.RataDie},
	}
	for _, f := range longs {
		v, err := date.GetLong(f.field)
		if err != nil {
			return Week{}, err
		}
		*f.dst = v
	}

	w.ISO.WeekDate = isoWeekDate(w.ISO.WeekBasedYear, w.ISO.Week, date.DayOfWeek())
	return w, nil
}

// isoWeekDate formats the ISO week date, such as 2009-W01-1.
func isoWeekDate(wby, week int, dow temporal.DayOfWeek) string {
	return fmt.Sprintf("%s-W%02d-%d", isocal.FormatYear(wby, true), week, dow.Value())
}

// Rows implements Report.
func (w Week) Rows() [][2]string {
	return [][2]string{
		{"date", w.Date},
		{"day of week", w.DayOfWeek},
		{"week definition", w.WeekFields},
		{"localized day of week", strconv.Itoa(w.LocalizedDayOfWeek)},
		{"week of month", strconv.Itoa(w.WeekOfMonth)},
		{"week of year", strconv.Itoa(w.WeekOfYear)},
		{"week-based-year", strconv.Itoa(w.WeekBasedYear)},
		{"week of week-based-year", strconv.Itoa(w.WeekOfWeekBasedYear)},
		{"ISO week date", w.ISO.WeekDate},
		{"ISO quarter", strconv.Itoa(w.ISO.Quarter)},
		{"ISO day of quarter", strconv.Itoa(w.ISO.DayOfQuarter)},
		{"Julian day", strconv.FormatInt(w.Julian.JulianDay, 10)},
		{"modified Julian day", strconv.FormatInt(w.Julian.ModifiedJulianDay, 10)},
		{"Rata Die", strconv.FormatInt(w.Julian.RataDie, 10)},
	}
}

// Weeks is the week report of several dates, in input order.
type Weeks []Week

// NewWeeks computes the week reports of dates under wf concurrently. The
// first failure cancels the remaining work.
func NewWeeks(ctx context.Context, dates []isocal.LocalDate, wf *temporal.WeekFields) (Weeks, error) {
	weeks := make(Weeks, len(dates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, date := range dates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, err := NewWeek(date, wf)
			if err != nil {
				return err
			}
			weeks[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return weeks, nil
}

// Rows implements Report. Reports are separated by an empty row.
func (ws Weeks) Rows() [][2]string {
	var rows [][2]string
	for i, w := range ws {
		if i > 0 {
			rows = append(rows, [2]string{})
		}
		rows = append(rows, w.Rows()...)
	}
	return rows
}
