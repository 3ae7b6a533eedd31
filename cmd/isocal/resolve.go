package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/internal/log"
	"github.com/helixml/isocal/internal/report"
	"github.com/helixml/isocal/temporal"
)

func resolveCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "resolve FIELD=VALUE...",
		Short: "Resolve field values into a date",
		Long: `Resolve a set of field values into a date.

Plain names are calendar fields such as Year, MonthOfYear, DayOfMonth,
DayOfWeek, AlignedWeekOfYear, EpochDay or JulianDay. Names prefixed with
"iso." are the ISO fields DayOfQuarter, QuarterOfYear, WeekOfWeekBasedYear
and WeekBasedYear. Names prefixed with "week." are the fields of the
configured week definition: DayOfWeek, WeekOfMonth, WeekOfYear,
WeekOfWeekBasedYear and WeekBasedYear.`,
		Example: `  isocal resolve Year=2009 MonthOfYear=2 DayOfMonth=29 --style smart
  isocal resolve iso.WeekBasedYear=2009 iso.WeekOfWeekBasedYear=1 DayOfWeek=1
  isocal --locale en-US resolve week.WeekBasedYear=2009 week.WeekOfWeekBasedYear=1 week.DayOfWeek=1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())
			ctx := log.WithInput(cmd.Context(), strings.Join(args, " "))

			resolverStyle := a.cfg.ResolverStyle()
			if cmd.Flags().Changed("style") {
				parsed, err := temporal.ParseResolverStyle(style)
				if err != nil {
					return err
				}
				resolverStyle = parsed
			}

			values, err := parseFieldValues(args, a.weekFields)
			if err != nil {
				return err
			}

			result := report.NewResolution(values, resolverStyle)
			date, ok, err := isocal.ResolveDate(values, resolverStyle)
			if err != nil {
				a.logger.ErrorContext(ctx, "resolve failed", "style", resolverStyle.String(), "error", err)
				return err
			}
			result = result.Complete(date, ok, values)
			a.logger.DebugContext(ctx, "resolved", "style", resolverStyle.String(), "resolved", ok, "date", result.Date)
			return a.render(cmd, result)
		},
	}

	cmd.Flags().StringVar(&style, "style", temporal.Smart.String(), "resolver style: strict, smart or lenient")
	return cmd
}
