package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/internal/log"
	"github.com/helixml/isocal/internal/report"
	"github.com/helixml/isocal/temporal"
)

// adjusterDef builds an adjuster from its remaining arguments.
type adjusterDef struct {
	args  string
	build func(args []string) (temporal.Adjuster, error)
}

func fixedAdjuster(a temporal.Adjuster) adjusterDef {
	return adjusterDef{build: func([]string) (temporal.Adjuster, error) { return a, nil }}
}

func dayAdjuster(f func(temporal.DayOfWeek) temporal.Adjuster) adjusterDef {
	return adjusterDef{args: "DAY", build: func(args []string) (temporal.Adjuster, error) {
		dow, err := temporal.ParseDayOfWeek(args[0])
		if err != nil {
			return nil, err
		}
		return f(dow), nil
	}}
}

var adjusters = map[string]adjusterDef{
	"first-day-of-month":      fixedAdjuster(temporal.FirstDayOfMonth()),
	"last-day-of-month":       fixedAdjuster(temporal.LastDayOfMonth()),
	"first-day-of-next-month": fixedAdjuster(temporal.FirstDayOfNextMonth()),
	"first-day-of-year":       fixedAdjuster(temporal.FirstDayOfYear()),
	"last-day-of-year":        fixedAdjuster(temporal.LastDayOfYear()),
	"first-day-of-next-year":  fixedAdjuster(temporal.FirstDayOfNextYear()),
	"first-in-month":          dayAdjuster(temporal.FirstInMonth),
	"last-in-month":           dayAdjuster(temporal.LastInMonth),
	"next":                    dayAdjuster(temporal.Next),
	"next-or-same":            dayAdjuster(temporal.NextOrSame),
	"previous":                dayAdjuster(temporal.Previous),
	"previous-or-same":        dayAdjuster(temporal.PreviousOrSame),
	"day-of-week-in-month": {args: "ORDINAL DAY", build: func(args []string) (temporal.Adjuster, error) {
		ordinal, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("ordinal: %w", err)
		}
		dow, err := temporal.ParseDayOfWeek(args[1])
		if err != nil {
			return nil, err
		}
		return temporal.DayOfWeekInMonth(ordinal, dow), nil
	}},
}

func adjusterUsage() string {
	names := make([]string, 0, len(adjusters))
	for name, def := range adjusters {
		names = append(names, strings.TrimSpace(name+" "+def.args))
	}
	sort.Strings(names)
	return "  " + strings.Join(names, "\n  ")
}

// parseAdjuster builds the named adjuster, checking its argument count.
func parseAdjuster(name string, args []string) (temporal.Adjuster, error) {
	def, ok := adjusters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown adjuster %q", name)
	}
	if want := len(strings.Fields(def.args)); len(args) != want {
		return nil, fmt.Errorf("adjuster %s takes %d arguments, got %d", name, want, len(args))
	}
	return def.build(args)
}

func adjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust DATE ADJUSTER [ARGS...]",
		Short: "Apply a date adjuster",
		Long: "Apply a date adjuster to DATE (YYYY-MM-DD).\n\nAdjusters:\n" + adjusterUsage() +
			"\n\nNegative ordinals count back from the end of the month; pass them after --.",
		Example: `  isocal adjust 2011-12-15 next monday
  isocal adjust 2011-12-15 day-of-week-in-month 2 friday
  isocal adjust -- 2011-12-15 day-of-week-in-month -1 friday`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			ctx := log.WithInput(cmd.Context(), strings.Join(args, " "))

			date, err := isocal.ParseLocalDate(args[0])
			if err != nil {
				return err
			}
			adjuster, err := parseAdjuster(args[1], args[2:])
			if err != nil {
				return err
			}
			result, err := date.Adjust(adjuster)
			if err != nil {
				a.logger.ErrorContext(ctx, "adjust failed", "error", err)
				return err
			}
			a.logger.DebugContext(ctx, "adjusted", "result", result.String())
			return a.render(cmd, report.NewAdjustment(date, strings.Join(args[1:], " "), result))
		},
	}
}
