package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/sexagesimal"
)

// JDResult is the payload of the jd command.
type JDResult struct {
	Date     string  `json:"date"`
	JD       float64 `json:"jd"`
	MJD      float64 `json:"mjd"`
	Calendar string  `json:"calendar"`
}

// NewJDCommand creates the jd command.
func NewJDCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "jd <date>",
		Short: "Convert a calendar date to a Julian Day",
		Long: `Convert a proleptic calendar date to a Julian Day number.

Dates are written [-]YYYY-MM-DD[.fff] with astronomical year numbering;
the fraction of the day carries the time (1957-10-04.81 is about 19:26 UT).
Dates before 1582-10-04 use the Julian calendar.`,
		Args: rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJD(rootOpts, args[0], cmd)
		},
	}
}

func runJD(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	d, err := opts.parseDateArg(arg)
	if err != nil {
		return out.Failure(err)
	}
	jd, err := d.JulianDay()
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "julian day", err))
	}
	opts.Logger.Debug("julian day", "date", sexagesimal.FormatDate(d), "jd", jd.Value())

	res := JDResult{
		Date:     sexagesimal.FormatDate(d),
		JD:       jd.Value(),
		MJD:      jd.Modified(),
		Calendar: d.Calendar().String(),
	}
	return out.Success(res,
		field{"Date", res.Date},
		field{"Calendar", res.Calendar},
		field{"JD", formatFloat(res.JD, 5)},
		field{"MJD", formatFloat(res.MJD, 5)},
	)
}

// CalendarResult is the payload of the calendar command.
type CalendarResult struct {
	JD    float64 `json:"jd"`
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Day   float64 `json:"day"`
	Date  string  `json:"date"`
}

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <jd>",
		Short: "Convert a Julian Day to a calendar date",
		Args:  rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(rootOpts, args[0], cmd)
		},
	}
}

func runCalendar(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	v, err := parseFloatArg("julian day", arg)
	if err != nil {
		return out.Failure(err)
	}
	d := astro.JulianDay(v).Date()

	res := CalendarResult{
		JD:    v,
		Year:  d.Year,
		Month: int(d.Month),
		Day:   d.Day,
		Date:  sexagesimal.FormatDateRounded(d, 6),
	}
	return out.Success(res,
		field{"JD", formatFloat(v, 5)},
		field{"Date", res.Date},
		field{"Calendar", d.Calendar().String()},
	)
}

// DeltaTResult is the payload of the deltat command.
type DeltaTResult struct {
	Date        string  `json:"date"`
	DecimalYear float64 `json:"decimal_year"`
	DeltaT      float64 `json:"delta_t"`
}

// NewDeltaTCommand creates the deltat command.
func NewDeltaTCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deltat <date>",
		Short: "Estimate ΔT = TT - UT in seconds",
		Long: `Estimate ΔT (dynamical minus universal time) for the middle of the
date's month from the Espenak & Meeus polynomials.

Supported years are -1999 to 2999, except 2100-2149.`,
		Args: rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeltaT(rootOpts, args[0], cmd)
		},
	}
}

func runDeltaT(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	d, err := opts.parseDateArg(arg)
	if err != nil {
		return out.Failure(err)
	}
	dt, err := astro.DeltaT(d)
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "delta t", err))
	}

	res := DeltaTResult{
		Date:        sexagesimal.FormatDate(d),
		DecimalYear: d.DecimalYear(),
		DeltaT:      dt,
	}
	return out.Success(res,
		field{"Date", res.Date},
		field{"Year", formatFloat(res.DecimalYear, 3)},
		field{"ΔT", formatFloat(dt, 2) + " s"},
	)
}

// SiderealResult is the payload of the gmst command.
type SiderealResult struct {
	Date      string   `json:"date"`
	GMST      float64  `json:"gmst_deg"`
	GMSTHMS   string   `json:"gmst"`
	Longitude *float64 `json:"longitude,omitempty"`
	LMST      *float64 `json:"lmst_deg,omitempty"`
	LMSTHMS   string   `json:"lmst,omitempty"`
}

// NewGMSTCommand creates the gmst command.
func NewGMSTCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		local bool
		lon   float64
	)

	cmd := &cobra.Command{
		Use:   "gmst <date>",
		Short: "Mean sidereal time at Greenwich (and optionally locally)",
		Args:  rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lonPtr *float64
			switch {
			case cmd.Flags().Changed("lon"):
				if math.IsNaN(lon) || math.IsInf(lon, 0) {
					return rootOpts.usageError(cmd, errors.New("--lon must be a finite number"))
				}
				lonPtr = &lon
			case local:
				l := rootOpts.Config.Observer.Longitude
				lonPtr = &l
			}
			return runGMST(rootOpts, args[0], lonPtr, cmd)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "also show local mean sidereal time for the configured observer")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees, east positive (implies --local)")

	return cmd
}

func runGMST(opts *RootOptions, arg string, lon *float64, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	d, err := opts.parseDateArg(arg)
	if err != nil {
		return out.Failure(err)
	}
	gmst, err := astro.MeanSiderealTime(d)
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "sidereal time", err))
	}

	res := SiderealResult{
		Date:    sexagesimal.FormatDate(d),
		GMST:    gmst,
		GMSTHMS: sexagesimal.FormatRA(astro.DegToRA(gmst)),
	}
	fields := []field{
		{"Date", res.Date},
		{"GMST", fmt.Sprintf("%s (%s°)", res.GMSTHMS, formatFloat(gmst, 6))},
	}

	if lon != nil {
		lmst, err := astro.LocalMeanSiderealTime(d, *lon)
		if err != nil {
			return out.Failure(WrapExitError(ExitFailure, "sidereal time", err))
		}
		res.Longitude = lon
		res.LMST = &lmst
		res.LMSTHMS = sexagesimal.FormatRA(astro.DegToRA(lmst))
		fields = append(fields,
			field{"Longitude", sexagesimal.FormatDMS(astro.DegToDMS(*lon))},
			field{"LMST", fmt.Sprintf("%s (%s°)", res.LMSTHMS, formatFloat(lmst, 6))},
		)
	}

	return out.Success(res, fields...)
}

// WeekdayResult is the payload of the weekday command.
type WeekdayResult struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Number  int    `json:"number"` // 0 = Sunday
	YearDay int    `json:"year_day"`
}

// NewWeekdayCommand creates the weekday command.
func NewWeekdayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <date>",
		Short: "Day of the week and day of the year",
		Long: `Print the day of the week and the ordinal day of the year.

The day of the year applies no leap-year rule, so it is one day short
from March onward in leap years.`,
		Args: rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeekday(rootOpts, args[0], cmd)
		},
	}
}

func runWeekday(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	d, err := opts.parseDateArg(arg)
	if err != nil {
		return out.Failure(err)
	}
	wd, err := d.WeekDay()
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "weekday", err))
	}

	res := WeekdayResult{
		Date:    sexagesimal.FormatDate(d),
		Weekday: wd.String(),
		Number:  int(wd),
		YearDay: d.YearDay(),
	}
	return out.Success(res,
		field{"Date", res.Date},
		field{"Weekday", res.Weekday},
		field{"Year day", fmt.Sprint(res.YearDay)},
	)
}
