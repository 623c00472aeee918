package astro

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidMonth is returned when a Date's month is outside 1-12.
var ErrInvalidMonth = errors.New("invalid month")

const (
	// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UTC).
	J2000 = 2451545.0

	// mjdOffset is the Julian Day of the Modified Julian Day epoch.
	mjdOffset = 2400000.5

	// gregorianStart is the first Julian Day number on the Gregorian calendar
	// (1582-10-15).
	gregorianStart = 2299161
)

// JulianDay is a continuous day count from noon of -4712-01-01 (proleptic
// Julian calendar). Comparison with == is exact.
type JulianDay float64

// Value returns the Julian Day as a plain float.
func (jd JulianDay) Value() float64 {
	return float64(jd)
}

// Modified returns the Modified Julian Day (JD - 2400000.5).
func (jd JulianDay) Modified() float64 {
	return float64(jd) - mjdOffset
}

// Compare returns -1, 0 or +1 depending on whether jd is before, equal to,
// or after other.
func (jd JulianDay) Compare(other JulianDay) int {
	return cmp.Compare(jd, other)
}

// JulianDayFromDate converts a calendar date to a Julian Day (Meeus, ch. 7).
//
// Dates on or after 1582-10-04 are treated as Gregorian, earlier ones as
// Julian. All integer parts are taken with floor, never with truncation, so
// negative years are handled correctly.
func JulianDayFromDate(d Date) (JulianDay, error) {
	if d.Month < time.January || d.Month > time.December {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, int(d.Month))
	}

	y := float64(d.Year)
	m := float64(d.Month)

	// January and February count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	var b float64
	if d.Calendar() == Gregorian {
		a := math.Floor(y / 100)
		b = 2 - a + math.Floor(a/4)
	}

	left := math.Floor(365.25 * (y + 4716))
	right := math.Floor(30.6001 * (m + 1))

	return JulianDay(left + right + d.Day + b - 1524.5), nil
}

// Date converts the Julian Day back to a calendar date. Integral days round
// trip exactly; fractional days only to floating point precision.
func (jd JulianDay) Date() Date {
	z := math.Floor(float64(jd) + 0.5)
	f := float64(jd) + 0.5 - z

	a := z
	if z >= gregorianStart {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	dd := math.Floor(365.25 * c)
	e := math.Floor((b - dd) / 30.6001)

	day := b - dd - math.Floor(30.6001*e) + f

	month := e - 1
	if e >= 14 {
		month = e - 13
	}

	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	return Date{Year: int(year), Month: time.Month(month), Day: day}
}

// CalendarDate is the package-level form of JulianDay.Date.
func CalendarDate(jd JulianDay) Date {
	return jd.Date()
}
