package astro

import (
	"math"
	"time"
)

// TimeOfDay is a wall-clock reading attached to a Date for display.
// It never enters any formula; the fractional Day is authoritative.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second float64
}

// Date is a proleptic calendar date. Day carries the day of the month plus
// the fraction of the day elapsed (4.81 is the 4th at about 19:26 UTC).
//
// Years are astronomical: year 0 is 1 BC, -4712 is 4713 BC. Year is a
// plain int; text input is limited to four digits by sexagesimal.ParseDate,
// and conversions back from large Julian Days may exceed that.
type Date struct {
	Year  int
	Month time.Month
	Day   float64

	// Time is optional and display-only.
	Time *TimeOfDay
}

// Calendar identifies the calendar system a Date is expressed in.
type Calendar int

const (
	Julian Calendar = iota
	Gregorian
)

func (c Calendar) String() string {
	switch c {
	case Julian:
		return "julian"
	case Gregorian:
		return "gregorian"
	default:
		return "unknown"
	}
}

// NewDate returns a Date without a display time.
func NewDate(year int, month time.Month, day float64) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewDateTime returns a Date carrying a display time. The day is used as
// given; the hour, minute and second are not folded into it.
func NewDateTime(year int, month time.Month, day float64, hour, minute int, second float64) Date {
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
		Time:  &TimeOfDay{Hour: hour, Minute: minute, Second: second},
	}
}

// DateFromTime converts t (in UTC) into a Date whose fractional day encodes
// the time of day. The clock reading is kept for display.
func DateFromTime(t time.Time) Date {
	t = t.UTC()

	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	frac := (float64(t.Hour()) + float64(t.Minute())/60 + sec/3600) / 24

	return NewDateTime(t.Year(), t.Month(), float64(t.Day())+frac, t.Hour(), t.Minute(), sec)
}

// Calendar reports whether the date falls on the Gregorian side of the
// October 1582 reform.
func (d Date) Calendar() Calendar {
	if d.Year > 1582 ||
		(d.Year == 1582 && (d.Month > time.October || (d.Month == time.October && d.Day >= 4.0))) {
		return Gregorian
	}
	return Julian
}

// DecimalYear returns the year at the middle of the date's month.
func (d Date) DecimalYear() float64 {
	return float64(d.Year) + (float64(d.Month)-0.5)/12
}

// JulianDay converts the date. See JulianDayFromDate.
func (d Date) JulianDay() (JulianDay, error) {
	return JulianDayFromDate(d)
}

// Interval returns the number of days between d and other, always >= 0.
func (d Date) Interval(other Date) (float64, error) {
	a, err := d.JulianDay()
	if err != nil {
		return 0, err
	}
	b, err := other.JulianDay()
	if err != nil {
		return 0, err
	}
	return math.Abs(a.Value() - b.Value()), nil
}

// WeekDay returns the day of the week for the date.
func (d Date) WeekDay() (time.Weekday, error) {
	jd, err := d.JulianDay()
	if err != nil {
		return 0, err
	}
	n := int64(math.Floor(jd.Value()+1.5)) % 7
	if n < 0 {
		n += 7
	}
	return time.Weekday(n), nil
}

// IsLeap always reports false: no leap-year rule is applied, so YearDay is
// one day short from March onward in leap years.
func (d Date) IsLeap() bool {
	return false
}

// YearDay returns the ordinal day of the year (1 = January 1st), using the
// common-year correction unless IsLeap reports otherwise.
func (d Date) YearDay() int {
	k := 2.0
	if d.IsLeap() {
		k = 1
	}
	m := float64(d.Month)
	n := math.Floor(275*m/9) - k*math.Floor((m+9)/12) + math.Trunc(d.Day) - 30
	return int(n)
}
