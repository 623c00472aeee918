package astro

import (
	"math"
)

const (
	// secondsCarry is the smallest seconds value that prints as 60.00.
	secondsCarry = 59.995
)

// HoursMinSec is a time-like angle (right ascension, sidereal time).
type HoursMinSec struct {
	Hours   int
	Minutes int
	Seconds float64
}

// ApproxEqual compares hours and minutes exactly and seconds rounded to two
// decimals.
func (h HoursMinSec) ApproxEqual(o HoursMinSec) bool {
	return h.Hours == o.Hours &&
		h.Minutes == o.Minutes &&
		round2(h.Seconds) == round2(o.Seconds)
}

// DegMinSec is a signed sexagesimal angle (declination, latitude, longitude).
// The sign lives in Negative so that -0° 30' is representable.
type DegMinSec struct {
	Negative bool
	Degrees  int
	Minutes  int
	Seconds  float64
}

// ApproxEqual is HoursMinSec.ApproxEqual plus an exact sign match.
func (d DegMinSec) ApproxEqual(o DegMinSec) bool {
	return d.Negative == o.Negative &&
		d.Degrees == o.Degrees &&
		d.Minutes == o.Minutes &&
		round2(d.Seconds) == round2(o.Seconds)
}

// FitDegrees wraps an angle into [0, 360). Negative angles wrap upward.
func FitDegrees(angle float64) float64 {
	if angle >= 0 && angle < 360 {
		return angle
	}
	a := angle - math.Floor(angle/360)*360
	// Tiny negative inputs can land exactly on 360 after rounding.
	if a >= 360 {
		a = 0
	}
	return a
}

// RAToDeg converts right ascension to degrees in (-180, 180]. Values past
// 12h come back negative, unlike FitDegrees.
func RAToDeg(ra HoursMinSec) float64 {
	deg := (float64(ra.Hours) + float64(ra.Minutes)/60 + ra.Seconds/3600) * 15
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// DegToRA converts degrees in [0, 360) to hours, minutes and seconds.
// Components are truncated toward zero.
func DegToRA(deg float64) HoursMinSec {
	hours := math.Trunc(deg / 15)
	minutes := math.Trunc((deg - hours*15) * 4)
	seconds := (deg - hours*15 - minutes/4) * 240

	return HoursMinSec{
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: seconds,
	}
}

// DecToDeg converts a sexagesimal angle to signed decimal degrees.
func DecToDeg(dms DegMinSec) float64 {
	deg := float64(dms.Degrees) + float64(dms.Minutes)/60 + dms.Seconds/3600
	if dms.Negative {
		deg = -deg
	}
	return deg
}

// DegToDMS converts signed decimal degrees to degrees, minutes and seconds.
//
// Seconds that would print as 60.00 carry into the minutes, and 60 minutes
// carry into the degrees. The sign is taken from deg itself, so the result
// stays negative even when the degree magnitude is 0.
func DegToDMS(deg float64) DegMinSec {
	abs := math.Abs(deg)
	whole := math.Trunc(abs)

	minutes := 60 * (abs - whole)
	seconds := 60 * (minutes - math.Trunc(minutes))

	d := int(whole)
	m := int(math.Trunc(minutes))
	if seconds >= secondsCarry {
		seconds = 0
		m++
	}
	// Whole minutes only: 59.9995' with seconds left over is still 59', so
	// the seconds are not lost to the degree carry.
	if m >= 60 {
		m = 0
		d++
	}

	return DegMinSec{
		Negative: deg < 0,
		Degrees:  d,
		Minutes:  m,
		Seconds:  seconds,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
