// Package astro provides calendar, time-scale and angle computations for
// positional astronomy: Julian Day numbers, ΔT, mean sidereal time and
// sexagesimal angles.
package astro

import (
	"math"
)

// SkyCoord holds equatorial (RA/Dec) and horizontal (Az/El) coordinates
// of one target.
type SkyCoord struct {
	// Equatorial coordinates, mean equinox of date
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)

	// Horizontal coordinates (observer-relative)
	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation/Altitude in degrees (0=horizon, 90=zenith)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// HourAngle returns the local hour angle of a target at right ascension
// raDeg, in degrees [0, 360).
func HourAngle(raDeg float64, obs Observer, d Date) (float64, error) {
	lst, err := LocalMeanSiderealTime(d, obs.LonDeg)
	if err != nil {
		return 0, err
	}
	return FitDegrees(lst - raDeg), nil
}

// EquatorialToHorizontal fills in azimuth and elevation of eq for the
// observer at the instant d. RA/Dec are carried through unchanged.
//
// Uses mean sidereal time; nutation and refraction are ignored.
//   - Azimuth: 0° = North, 90° = East
//   - Elevation: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq SkyCoord, obs Observer, d Date) (SkyCoord, error) {
	haDeg, err := HourAngle(eq.RAdeg, obs, d)
	if err != nil {
		return SkyCoord{}, err
	}

	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)
	ha := degToRad(haDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	// Clamp to [-1, 1] against rounding
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}

	az := math.Acos(cosAz)

	// West of the meridian
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return SkyCoord{
		RAdeg:  eq.RAdeg,
		DecDeg: eq.DecDeg,
		AzDeg:  FitDegrees(radToDeg(az)),
		ElDeg:  radToDeg(alt),
	}, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
