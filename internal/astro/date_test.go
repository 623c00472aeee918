package astro

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDate_WeekDay(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want time.Weekday
	}{
		{"1954-06-30", NewDate(1954, time.June, 30.0), time.Wednesday},
		{"478-03-11", NewDate(478, time.March, 11.0), time.Saturday},
		{"J2000 noon", NewDate(2000, time.January, 1.5), time.Saturday},
		{"late evening same day", NewDate(1954, time.June, 30.9), time.Wednesday},
		{"Gregorian reform", NewDate(1582, time.October, 15.0), time.Friday},
		{"before JD zero", NewDate(-4713, time.January, 1.0), time.Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.date.WeekDay()
			if err != nil {
				t.Fatalf("WeekDay() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WeekDay() = %v (%d), want %v (%d)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestDate_WeekDayMatchesTimePackage(t *testing.T) {
	start := time.Date(1999, time.December, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		tm := start.AddDate(0, 0, i)
		got, err := DateFromTime(tm).WeekDay()
		if err != nil {
			t.Fatal(err)
		}
		if got != tm.Weekday() {
			t.Errorf("%s: WeekDay() = %v, want %v", tm.Format("2006-01-02"), got, tm.Weekday())
		}
	}
}

func TestDate_WeekDayInvalidMonth(t *testing.T) {
	_, err := NewDate(2000, 14, 1).WeekDay()
	if !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestDate_YearDay(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{NewDate(1978, time.November, 14), 318},
		{NewDate(2023, time.January, 1), 1},
		{NewDate(2023, time.February, 28), 59},
		{NewDate(2023, time.March, 1), 60},
		{NewDate(2023, time.December, 31.75), 365},
		// No leap-year rule: March 1st of a leap year is still day 60.
		{NewDate(1988, time.March, 1), 60},
	}

	for _, tt := range tests {
		if got := tt.date.YearDay(); got != tt.want {
			t.Errorf("%+v.YearDay() = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDate_IsLeapAlwaysFalse(t *testing.T) {
	for _, y := range []int{1900, 2000, 2023, 2024} {
		if NewDate(y, time.June, 1).IsLeap() {
			t.Errorf("IsLeap(%d) = true, want false", y)
		}
	}
}

func TestDate_Interval(t *testing.T) {
	a := NewDate(1910, time.April, 20.0)
	b := NewDate(1986, time.February, 9.0)

	ab, err := a.Interval(b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := b.Interval(a)
	if err != nil {
		t.Fatal(err)
	}

	// Meeus example 7.e
	if ab != 27689 {
		t.Errorf("Interval() = %v, want 27689", ab)
	}
	if ab != ba {
		t.Errorf("Interval not symmetric: %v vs %v", ab, ba)
	}

	if _, err := a.Interval(NewDate(2000, 0, 1)); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestDate_DecimalYear(t *testing.T) {
	tests := []struct {
		date Date
		want float64
	}{
		{NewDate(1977, time.February, 18), 1977.125},
		{NewDate(2000, time.January, 1), 2000 + 0.5/12},
		{NewDate(-500, time.December, 31), -500 + 11.5/12},
	}

	for _, tt := range tests {
		if got := tt.date.DecimalYear(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%+v.DecimalYear() = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestDateFromTime(t *testing.T) {
	tm := time.Date(1957, time.October, 4, 19, 26, 24, 0, time.UTC)
	d := DateFromTime(tm)

	if d.Year != 1957 || d.Month != time.October {
		t.Fatalf("DateFromTime() = %+v", d)
	}
	if math.Abs(d.Day-4.81) > 1e-9 {
		t.Errorf("Day = %v, want 4.81", d.Day)
	}
	if d.Time == nil || d.Time.Hour != 19 || d.Time.Minute != 26 || d.Time.Second != 24 {
		t.Errorf("Time = %+v, want 19:26:24", d.Time)
	}
}

func TestNewDateTime_TimeIsDisplayOnly(t *testing.T) {
	plain := NewDate(1977, time.February, 18.0)
	timed := NewDateTime(1977, time.February, 18.0, 3, 37, 40)

	a, err := plain.JulianDay()
	if err != nil {
		t.Fatal(err)
	}
	b, err := timed.JulianDay()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("display time changed the Julian Day: %v vs %v", a, b)
	}
}
