package astro

// MeanSiderealTime returns Greenwich mean sidereal time in degrees, in
// [0, 360), for the instant described by d (IAU 1982, Meeus eq. 12.4).
func MeanSiderealTime(d Date) (float64, error) {
	jd, err := d.JulianDay()
	if err != nil {
		return 0, err
	}

	days := jd.Value() - J2000
	// Julian centuries since J2000.0
	t := days / 36525

	theta := 280.46061837 +
		360.98564736629*days +
		0.000387933*t*t -
		t*t*t/38710000

	return FitDegrees(theta), nil
}

// LocalMeanSiderealTime returns mean sidereal time in degrees at the given
// longitude (east positive).
func LocalMeanSiderealTime(d Date, lonDeg float64) (float64, error) {
	gmst, err := MeanSiderealTime(d)
	if err != nil {
		return 0, err
	}
	return FitDegrees(gmst + lonDeg), nil
}
