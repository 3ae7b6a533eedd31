// Package main is the entry point for the isocal CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/isocal/internal/config"
	"github.com/helixml/isocal/internal/log"
	"github.com/helixml/isocal/internal/report"
	"github.com/helixml/isocal/temporal"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg        config.AppConfig
	logger     *log.Logger
	weekFields *temporal.WeekFields
}

type appKey struct{}

func fromContext(ctx context.Context) *app {
	a, _ := ctx.Value(appKey{}).(*app)
	return a
}

// render writes r to the command's output in the configured format.
func (a *app) render(cmd *cobra.Command, r report.Report) error {
	return report.Render(cmd.OutOrStdout(), a.cfg.Output(), r)
}

func rootCmd() *cobra.Command {
	var (
		envFile  string
		locale   string
		firstDay string
		minDays  int
		output   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "isocal",
		Short: "ISO-8601 calendar fields, weeks and adjusters",
		Long: `isocal computes week numbers under ISO and locale week definitions,
resolves sets of calendar field values into dates and applies date adjusters.

Configuration is read from ISOCAL_ environment variables, optionally loaded
from a .env file; flags take precedence over the environment.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var opts []config.AppConfigOption
			if flags.Changed("first-day") {
				dow, err := temporal.ParseDayOfWeek(firstDay)
				if err != nil {
					return err
				}
				opts = append(opts, config.WithFirstDayOfWeek(dow))
			}
			if flags.Changed("min-days") {
				opts = append(opts, config.WithMinimalDays(minDays))
			}
			if flags.Changed("locale") {
				opts = append(opts, config.WithLocale(locale))
			}
			if flags.Changed("output") {
				format, err := config.ParseOutputFormat(output)
				if err != nil {
					return err
				}
				opts = append(opts, config.WithOutput(format))
			}
			if flags.Changed("log-level") {
				opts = append(opts, config.WithLogLevel(logLevel))
			}
			cfg = cfg.Apply(opts...)

			wf, err := cfg.WeekFields()
			if err != nil {
				return err
			}

			var logger *log.Logger
			if errOut := cmd.ErrOrStderr(); errOut == os.Stderr {
				logger = log.Configure(cfg)
			} else {
				logger = log.NewLoggerWithWriter(errOut, cfg.LogFormat(), cfg.LogLevel())
			}

			ctx := log.WithCommand(cmd.Context(), cmd.Name())
			a := &app{cfg: cfg, logger: logger, weekFields: wf}
			cmd.SetContext(context.WithValue(ctx, appKey{}, a))

			attrs := make([]any, 0, 8)
			for _, attr := range cfg.LogAttrs() {
				attrs = append(attrs, attr)
			}
			logger.DebugContext(cmd.Context(), "configuration loaded", attrs...)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", "", "path to a .env file (default .env)")
	pf.StringVar(&locale, "locale", "", "BCP 47 locale whose region selects the week definition")
	pf.StringVar(&firstDay, "first-day", "", "first day of the week, such as Monday or Sun")
	pf.IntVar(&minDays, "min-days", config.DefaultMinimalDays, "minimal days in the first week, 1 to 7")
	pf.StringVarP(&output, "output", "o", string(config.DefaultOutput), "output format: text, json or yaml")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: DEBUG, INFO, WARN or ERROR")

	cmd.AddCommand(weekCmd())
	cmd.AddCommand(resolveCmd())
	cmd.AddCommand(adjustCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
