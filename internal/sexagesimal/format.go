package sexagesimal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/litescript/ls-almanac/internal/astro"
)

// FormatRA renders a right ascension as "13h 10m 46.37s".
func FormatRA(h astro.HoursMinSec) string {
	return fmt.Sprintf("%dh %dm %.2fs", h.Hours, h.Minutes, h.Seconds)
}

// FormatDMS renders an angle as "-59° 11' 36.96''".
func FormatDMS(d astro.DegMinSec) string {
	sign := ""
	if d.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d° %d' %.2f''", sign, d.Degrees, d.Minutes, d.Seconds)
}

// FormatDate renders a date as YYYY-MM-DD with the fractional day kept,
// e.g. "1957-10-04.81" or "-4712-01-01.5".
func FormatDate(d astro.Date) string {
	day := strconv.FormatFloat(d.Day, 'f', -1, 64)
	if d.Day < 10 {
		day = "0" + day
	}

	year := fmt.Sprintf("%04d", d.Year)
	if d.Year < 0 {
		year = fmt.Sprintf("-%04d", -d.Year)
	}
	return fmt.Sprintf("%s-%02d-%s", year, int(d.Month), day)
}

// FormatDateRounded is FormatDate with the day rounded to places decimals,
// for values coming back from a Julian Day conversion.
func FormatDateRounded(d astro.Date, places int) string {
	p := math.Pow(10, float64(places))
	d.Day = math.Round(d.Day*p) / p
	return FormatDate(d)
}
