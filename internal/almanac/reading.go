// Package almanac assembles the per-instant quantities shown by the clock
// and the "now" command.
package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Reading is every derived quantity for one instant at one observer.
type Reading struct {
	Time     time.Time      `json:"time"`
	Observer astro.Observer `json:"-"`
	Site     string         `json:"site,omitempty"`

	Date    astro.Date        `json:"-"`
	JD      float64           `json:"jd"`
	MJD     float64           `json:"mjd"`
	Weekday string            `json:"weekday"`
	YearDay int               `json:"year_day"`
	DeltaT  *float64          `json:"delta_t,omitempty"` // nil when the model has no value
	GMST    float64           `json:"gmst_deg"`
	LMST    float64           `json:"lmst_deg"`
	GMSTRA  astro.HoursMinSec `json:"-"`
	LMSTRA  astro.HoursMinSec `json:"-"`
}

// At computes the reading for t at obs.
func At(t time.Time, obs astro.Observer) (Reading, error) {
	t = t.UTC()
	d := astro.DateFromTime(t)

	jd, err := d.JulianDay()
	if err != nil {
		return Reading{}, err
	}
	wd, err := d.WeekDay()
	if err != nil {
		return Reading{}, err
	}
	gmst, err := astro.MeanSiderealTime(d)
	if err != nil {
		return Reading{}, err
	}
	lmst, err := astro.LocalMeanSiderealTime(d, obs.LonDeg)
	if err != nil {
		return Reading{}, err
	}

	r := Reading{
		Time:     t,
		Observer: obs,
		Site:     obs.Name,
		Date:     d,
		JD:       jd.Value(),
		MJD:      jd.Modified(),
		Weekday:  wd.String(),
		YearDay:  d.YearDay(),
		GMST:     gmst,
		LMST:     lmst,
		GMSTRA:   astro.DegToRA(gmst),
		LMSTRA:   astro.DegToRA(lmst),
	}

	// ΔT is undefined for part of the 22nd century; the rest of the reading
	// is still valid.
	if dt, err := astro.DeltaT(d); err == nil {
		r.DeltaT = &dt
	}

	return r, nil
}
