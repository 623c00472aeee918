package cli

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/sexagesimal"
	"github.com/litescript/ls-almanac/internal/ui"
)

// AltAzResult is the payload of the altaz command.
type AltAzResult struct {
	Date      string  `json:"date"`
	Site      string  `json:"site,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RA        float64 `json:"ra_deg"`
	Dec       float64 `json:"dec_deg"`
	HourAngle float64 `json:"hour_angle_deg"`
	Azimuth   float64 `json:"azimuth_deg"`
	Elevation float64 `json:"elevation_deg"`
}

type altAzOptions struct {
	ra  string
	dec string
	lat float64
	lon float64
}

// NewAltAzCommand creates the altaz command.
func NewAltAzCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &altAzOptions{}

	cmd := &cobra.Command{
		Use:   "altaz <date> --ra 'HH MM SS' --dec '[-]DD MM SS'",
		Short: "Azimuth and elevation of an equatorial position",
		Long: `Compute azimuth and elevation of a right ascension and declination for
the configured observer, using mean sidereal time. Nutation and
refraction are ignored.

Azimuth is measured from north through east.`,
		Args: rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"ra", "dec"} {
				if !cmd.Flags().Changed(name) {
					return rootOpts.usageError(cmd, fmt.Errorf("required flag --%s not set", name))
				}
			}
			obs := rootOpts.Config.Observer.Astro()
			if cmd.Flags().Changed("lat") {
				obs.LatDeg = opts.lat
			}
			if cmd.Flags().Changed("lon") {
				obs.LonDeg = opts.lon
			}
			return runAltAz(rootOpts, opts, obs, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ra, "ra", "", "right ascension, HH MM SS[.ff] (required)")
	cmd.Flags().StringVar(&opts.dec, "dec", "", "declination, [-]DD MM SS[.ff] (required)")
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "observer latitude in degrees (overrides config)")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "observer longitude in degrees, east positive (overrides config)")

	return cmd
}

func runAltAz(rootOpts *RootOptions, opts *altAzOptions, obs astro.Observer, arg string, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)

	if !(obs.LatDeg >= -90 && obs.LatDeg <= 90) {
		return out.Failure(NewExitError(ExitCommandError, "latitude must be within [-90, 90]"))
	}
	if math.IsNaN(obs.LonDeg) || math.IsInf(obs.LonDeg, 0) {
		return out.Failure(NewExitError(ExitCommandError, "longitude must be a finite number"))
	}
	d, err := rootOpts.parseDateArg(arg)
	if err != nil {
		return out.Failure(err)
	}
	ra, err := sexagesimal.ParseRA(opts.ra)
	if err != nil {
		return out.Failure(WrapExitError(ExitCommandError, "invalid --ra", err))
	}
	dec, err := sexagesimal.ParseDMS(opts.dec)
	if err != nil {
		return out.Failure(WrapExitError(ExitCommandError, "invalid --dec", err))
	}

	eq := astro.SkyCoord{
		RAdeg:  astro.FitDegrees(astro.RAToDeg(ra)),
		DecDeg: astro.DecToDeg(dec),
	}
	ha, err := astro.HourAngle(eq.RAdeg, obs, d)
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "hour angle", err))
	}
	hz, err := astro.EquatorialToHorizontal(eq, obs, d)
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "horizontal coordinates", err))
	}
	rootOpts.Logger.Debug("horizontal coordinates", "site", obs.Name, "ha", ha, "az", hz.AzDeg, "el", hz.ElDeg)

	res := AltAzResult{
		Date:      sexagesimal.FormatDate(d),
		Site:      obs.Name,
		Latitude:  obs.LatDeg,
		Longitude: obs.LonDeg,
		RA:        hz.RAdeg,
		Dec:       hz.DecDeg,
		HourAngle: ha,
		Azimuth:   hz.AzDeg,
		Elevation: hz.ElDeg,
	}
	return out.Success(res,
		field{"Date", res.Date},
		field{"Observer", sexagesimal.FormatDMS(astro.DegToDMS(obs.LatDeg)) + "  " + sexagesimal.FormatDMS(astro.DegToDMS(obs.LonDeg))},
		field{"RA", sexagesimal.FormatRA(ra)},
		field{"Dec", sexagesimal.FormatDMS(dec)},
		field{"Hour angle", sexagesimal.FormatRA(astro.DegToRA(ha))},
		field{"Azimuth", sexagesimal.FormatDMS(astro.DegToDMS(hz.AzDeg))},
		field{"Elevation", sexagesimal.FormatDMS(astro.DegToDMS(hz.ElDeg))},
	)
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Julian Day, ΔT and sidereal time for the current instant",
		Args:  rootOpts.usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, cmd)
		},
	}
}

func runNow(opts *RootOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	r, err := almanac.At(opts.Now(), opts.Config.Observer.Astro())
	if err != nil {
		return out.Failure(WrapExitError(ExitFailure, "reading", err))
	}
	return out.Success(r, readingFields(r)...)
}

func readingFields(r almanac.Reading) []field {
	deltaT := "n/a"
	if r.DeltaT != nil {
		deltaT = formatFloat(*r.DeltaT, 2) + " s"
	}
	return []field{
		{"UTC", r.Time.Format("2006-01-02 15:04:05")},
		{"Weekday", r.Weekday},
		{"JD", formatFloat(r.JD, 5)},
		{"MJD", formatFloat(r.MJD, 5)},
		{"ΔT", deltaT},
		{"GMST", sexagesimal.FormatRA(r.GMSTRA)},
		{"LMST", sexagesimal.FormatRA(r.LMSTRA)},
	}
}

// NewClockCommand creates the clock command.
func NewClockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Live sidereal clock in the terminal",
		Long: `Run a full-screen clock showing Julian Day, ΔT and sidereal time for
the configured observer. The refresh interval comes from the config file.

When stdout is not a terminal a single reading is printed instead.`,
		Args: rootOpts.usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(rootOpts, cmd)
		},
	}
}

func runClock(opts *RootOptions, cmd *cobra.Command) error {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		opts.Logger.Debug("stdout is not a terminal, printing one reading")
		return runNow(opts, cmd)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := ui.New(opts.Config.Observer.Astro(), opts.Config.Refresh).WithClock(opts.Now)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(f))

	opts.Logger.Debug("starting clock", "refresh", opts.Config.Refresh, "observer", opts.Config.Observer.Name)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return WrapExitError(ExitFailure, "run clock", err)
	}
	return nil
}
