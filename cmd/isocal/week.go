package main

import (
	"github.com/spf13/cobra"

	"github.com/helixml/isocal"
	"github.com/helixml/isocal/internal/log"
	"github.com/helixml/isocal/internal/report"
)

func weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [DATE...]",
		Short: "Show week numbers of dates",
		Long: `Show where each DATE (YYYY-MM-DD, default today) falls under the configured
week definition, the ISO week-date system and the Julian day counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd.Context())

			if len(args) == 0 {
				args = []string{isocal.Today().String()}
			}
			dates := make([]isocal.LocalDate, len(args))
			for i, arg := range args {
				date, err := isocal.ParseLocalDate(arg)
				if err != nil {
					return err
				}
				dates[i] = date
			}

			if len(dates) == 1 {
				ctx := log.WithInput(cmd.Context(), dates[0].String())
				w, err := report.NewWeek(dates[0], a.weekFields)
				if err != nil {
					return err
				}
				a.logger.DebugContext(ctx, "week computed", "week_fields", w.WeekFields, "iso_week_date", w.ISO.WeekDate)
				return a.render(cmd, w)
			}

			weeks, err := report.NewWeeks(cmd.Context(), dates, a.weekFields)
			if err != nil {
				return err
			}
			a.logger.DebugContext(cmd.Context(), "weeks computed", "week_fields", a.weekFields.String(), "count", len(weeks))
			return a.render(cmd, weeks)
		},
	}
}
