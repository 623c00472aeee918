// Package cli implements the ls-almanac command tree.
package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-almanac/internal/config"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/version"
)

// RootOptions holds global flags and the state they resolve to.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"
	LogLevel   string

	Config config.Config
	Logger *slog.Logger

	// Now is the time source for "now" arguments.
	Now func() time.Time
}

// NewRootCommand creates the root command for the ls-almanac CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Now: time.Now})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls-almanac",
		Short:   "Calendar, time-scale and angle calculations for astronomy",
		Long:    "Julian Day numbers, ΔT, mean sidereal time and sexagesimal angle conversions.",
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return opts.usageError(c, err)
	})

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(NewJDCommand(opts))
	cmd.AddCommand(NewCalendarCommand(opts))
	cmd.AddCommand(NewDeltaTCommand(opts))
	cmd.AddCommand(NewGMSTCommand(opts))
	cmd.AddCommand(NewWeekdayCommand(opts))
	cmd.AddCommand(NewRA2DegCommand(opts))
	cmd.AddCommand(NewDeg2RACommand(opts))
	cmd.AddCommand(NewDMS2DegCommand(opts))
	cmd.AddCommand(NewDeg2DMSCommand(opts))
	cmd.AddCommand(NewAltAzCommand(opts))
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewClockCommand(opts))

	return cmd
}

// resolve loads the config file and lets explicitly set flags override it.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	o.Config = cfg
	o.Format = cfg.Format
	o.Logger = logging.New(logging.ParseLevel(cfg.LogLevel), cmd.ErrOrStderr())
	o.Logger.Debug("config resolved", "path", o.ConfigPath, "format", cfg.Format, "observer", cfg.Observer.Name)
	return nil
}
