package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/sexagesimal"
)

// parseDateArg accepts "now" or a [-]YYYY-MM-DD[.fff] date.
func (o *RootOptions) parseDateArg(s string) (astro.Date, error) {
	if s == "now" {
		return astro.DateFromTime(o.Now()), nil
	}
	d, err := sexagesimal.ParseDate(s)
	if err != nil {
		return astro.Date{}, WrapExitError(ExitCommandError, "invalid date", err)
	}
	return d, nil
}

func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid "+name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid %s: %q is not a finite number", name, s))
	}
	return v, nil
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
