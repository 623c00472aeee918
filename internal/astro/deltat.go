package astro

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrUnsupportedYearRange is returned when ΔT is requested for a year the
// polynomial model does not cover.
var ErrUnsupportedYearRange = errors.New("unsupported year range")

const secondsPerDay = 86400

// deltaTSegment is one piece of the ΔT model, valid for decimal years whose
// floor lies in [from, to].
type deltaTSegment struct {
	from, to int
	eval     func(y float64) float64
}

// deltaTSegments holds the polynomial expressions of the Five Millennium
// Canon of Solar Eclipses (Espenak & Meeus), in seconds. y is the decimal
// year. There is deliberately no segment for 2100-2149.
var deltaTSegments = []deltaTSegment{
	{-1999, -501, func(y float64) float64 {
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}},
	{-500, 499, func(y float64) float64 {
		u := y / 100
		return poly(u, 10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521)
	}},
	{500, 1599, func(y float64) float64 {
		u := (y - 1000) / 100
		return poly(u, 1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073)
	}},
	{1600, 1699, func(y float64) float64 {
		t := y - 1600
		return poly(t, 120, -0.9808, -0.01532, 1.0/7129)
	}},
	{1700, 1799, func(y float64) float64 {
		t := y - 1700
		return poly(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000)
	}},
	{1800, 1859, func(y float64) float64 {
		t := y - 1800
		return poly(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875)
	}},
	{1860, 1899, func(y float64) float64 {
		t := y - 1860
		return poly(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174)
	}},
	{1900, 1919, func(y float64) float64 {
		t := y - 1900
		return poly(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	}},
	{1920, 1940, func(y float64) float64 {
		t := y - 1920
		return poly(t, 21.20, 0.84493, -0.076100, 0.0020936)
	}},
	{1941, 1960, func(y float64) float64 {
		t := y - 1950
		return poly(t, 29.07, 0.407, -1.0/233, 1.0/2547)
	}},
	{1961, 1985, func(y float64) float64 {
		t := y - 1975
		return poly(t, 45.45, 1.067, -1.0/260, -1.0/718)
	}},
	{1986, 2004, func(y float64) float64 {
		t := y - 2000
		return poly(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	}},
	{2005, 2049, func(y float64) float64 {
		t := y - 2000
		return poly(t, 62.92, 0.32217, 0.005589)
	}},
	{2050, 2099, func(y float64) float64 {
		t := (y - 1820) / 100
		return -20 + 32*t*t - 0.5628*(2150-y)
	}},
	{2150, 2999, func(y float64) float64 {
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}},
}

// DeltaT estimates ΔT = TT - UT, in seconds, for the middle of the date's
// month. Years outside [-1999, 2999], and 2100-2149, are rejected with
// ErrUnsupportedYearRange rather than extrapolated.
func DeltaT(d Date) (float64, error) {
	if d.Month < time.January || d.Month > time.December {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, int(d.Month))
	}

	y := d.DecimalYear()
	year := int(math.Floor(y))

	for _, seg := range deltaTSegments {
		if year >= seg.from && year <= seg.to {
			return seg.eval(y), nil
		}
	}
	return 0, fmt.Errorf("%w: ΔT undefined for year %.2f", ErrUnsupportedYearRange, y)
}

// TerrestrialTime returns the dynamical-time instant matching d (read as
// Universal Time), i.e. d shifted forward by ΔT.
func TerrestrialTime(d Date) (Date, error) {
	dt, err := DeltaT(d)
	if err != nil {
		return Date{}, err
	}
	jd, err := d.JulianDay()
	if err != nil {
		return Date{}, err
	}
	return JulianDay(jd.Value() + dt/secondsPerDay).Date(), nil
}

// poly evaluates c[0] + c[1]x + c[2]x² + ... by Horner's rule.
func poly(x float64, c ...float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
