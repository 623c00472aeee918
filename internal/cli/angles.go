package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/sexagesimal"
)

const negativeArgsNote = `
Negative values must follow "--" so they are not read as flags:

  ls-almanac deg2dms -- -59.1936`

// AngleResult is the payload of the angle conversion commands.
type AngleResult struct {
	Input   string  `json:"input"`
	Degrees float64 `json:"degrees"`
	Text    string  `json:"sexagesimal"`
}

// NewRA2DegCommand creates the ra2deg command.
func NewRA2DegCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ra2deg <HH MM SS[.ff]>",
		Short: "Convert right ascension to degrees",
		Long: `Convert right ascension to degrees in (-180, 180].

The value may be given as one quoted argument or as three arguments.
Right ascensions past 12h come back negative.`,
		Args: rootOpts.usageArgs(cobra.RangeArgs(1, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRA2Deg(rootOpts, strings.Join(args, " "), cmd)
		},
	}
}

func runRA2Deg(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	ra, err := sexagesimal.ParseRA(arg)
	if err != nil {
		return out.Failure(WrapExitError(ExitCommandError, "invalid right ascension", err))
	}
	deg := astro.RAToDeg(ra)

	res := AngleResult{Input: arg, Degrees: deg, Text: sexagesimal.FormatRA(ra)}
	return out.Success(res,
		field{"RA", res.Text},
		field{"Degrees", formatFloat(deg, 6)},
	)
}

// NewDeg2RACommand creates the deg2ra command.
func NewDeg2RACommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deg2ra <degrees>",
		Short: "Convert degrees to right ascension",
		Long: `Convert an angle in degrees to hours, minutes and seconds.

The angle is first wrapped into [0, 360).` + "\n" + negativeArgsNote,
		Args: rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeg2RA(rootOpts, args[0], cmd)
		},
	}
}

func runDeg2RA(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	deg, err := parseFloatArg("degrees", arg)
	if err != nil {
		return out.Failure(err)
	}
	ra := astro.DegToRA(astro.FitDegrees(deg))

	res := AngleResult{Input: arg, Degrees: deg, Text: sexagesimal.FormatRA(ra)}
	return out.Success(res,
		field{"Degrees", formatFloat(deg, 6)},
		field{"RA", res.Text},
	)
}

// NewDMS2DegCommand creates the dms2deg command.
func NewDMS2DegCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dms2deg <[-]DD MM SS[.ff]>",
		Short: "Convert degrees, minutes and seconds to decimal degrees",
		Long: `Convert a sexagesimal angle such as a declination to decimal degrees.

The value may be given as one quoted argument or as three arguments.` + "\n" + negativeArgsNote,
		Args: rootOpts.usageArgs(cobra.RangeArgs(1, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDMS2Deg(rootOpts, strings.Join(args, " "), cmd)
		},
	}
}

func runDMS2Deg(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	dms, err := sexagesimal.ParseDMS(arg)
	if err != nil {
		return out.Failure(WrapExitError(ExitCommandError, "invalid angle", err))
	}
	deg := astro.DecToDeg(dms)

	res := AngleResult{Input: arg, Degrees: deg, Text: sexagesimal.FormatDMS(dms)}
	return out.Success(res,
		field{"Angle", res.Text},
		field{"Degrees", formatFloat(deg, 6)},
	)
}

// NewDeg2DMSCommand creates the deg2dms command.
func NewDeg2DMSCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deg2dms <degrees>",
		Short: "Convert decimal degrees to degrees, minutes and seconds",
		Long: `Convert signed decimal degrees to degrees, minutes and seconds.

Seconds that would print as 60.00 carry into the minutes.` + "\n" + negativeArgsNote,
		Args: rootOpts.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeg2DMS(rootOpts, args[0], cmd)
		},
	}
}

func runDeg2DMS(opts *RootOptions, arg string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	deg, err := parseFloatArg("degrees", arg)
	if err != nil {
		return out.Failure(err)
	}
	dms := astro.DegToDMS(deg)

	res := AngleResult{Input: arg, Degrees: deg, Text: sexagesimal.FormatDMS(dms)}
	return out.Success(res,
		field{"Degrees", formatFloat(deg, 6)},
		field{"Angle", res.Text},
	)
}
