// Package sexagesimal parses and formats the fixed-width string forms of
// right ascension and degree angles used on the command line.
package sexagesimal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

var (
	// ErrMalformed means the input does not match the expected grammar.
	ErrMalformed = errors.New("malformed sexagesimal value")
	// ErrOutOfRange means a field parsed but exceeds its unit.
	ErrOutOfRange = errors.New("sexagesimal field out of range")
)

var (
	raPattern   = regexp.MustCompile(`^(\d{2}) (\d{2}) (\d{2}(\.\d{2})?)$`)
	dmsPattern  = regexp.MustCompile(`^(-?\d{2}) (\d{2}) (\d{2}(\.\d{2})?)$`)
	datePattern = regexp.MustCompile(`^(-?\d{1,4})-(\d{2})-(\d{2}(\.\d+)?)$`)
)

// ParseError describes a string that could not be turned into an angle.
type ParseError struct {
	Input string
	Kind  string // "ra", "dms" or "date"
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRA parses "HH MM SS[.ff]" into a right ascension.
func ParseRA(s string) (astro.HoursMinSec, error) {
	m := raPattern.FindStringSubmatch(s)
	if m == nil {
		return astro.HoursMinSec{}, &ParseError{Input: s, Kind: "ra", Err: ErrMalformed}
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.ParseFloat(m[3], 64)

	switch {
	case hours > 23:
		return astro.HoursMinSec{}, &ParseError{Input: s, Kind: "ra", Err: fmt.Errorf("%w: hours %d", ErrOutOfRange, hours)}
	case minutes > 59:
		return astro.HoursMinSec{}, &ParseError{Input: s, Kind: "ra", Err: fmt.Errorf("%w: minutes %d", ErrOutOfRange, minutes)}
	case seconds >= 60:
		return astro.HoursMinSec{}, &ParseError{Input: s, Kind: "ra", Err: fmt.Errorf("%w: seconds %v", ErrOutOfRange, seconds)}
	}

	return astro.HoursMinSec{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// ParseDMS parses "[-]DD MM SS[.ff]" into a signed angle. "-00 30 00"
// keeps its sign.
func ParseDMS(s string) (astro.DegMinSec, error) {
	m := dmsPattern.FindStringSubmatch(s)
	if m == nil {
		return astro.DegMinSec{}, &ParseError{Input: s, Kind: "dms", Err: ErrMalformed}
	}

	negative := m[1][0] == '-'
	degrees, _ := strconv.Atoi(m[1])
	if degrees < 0 {
		degrees = -degrees
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.ParseFloat(m[3], 64)

	switch {
	case minutes > 59:
		return astro.DegMinSec{}, &ParseError{Input: s, Kind: "dms", Err: fmt.Errorf("%w: minutes %d", ErrOutOfRange, minutes)}
	case seconds >= 60:
		return astro.DegMinSec{}, &ParseError{Input: s, Kind: "dms", Err: fmt.Errorf("%w: seconds %v", ErrOutOfRange, seconds)}
	}

	return astro.DegMinSec{
		Negative: negative,
		Degrees:  degrees,
		Minutes:  minutes,
		Seconds:  seconds,
	}, nil
}

// ParseDate parses "[-]YYYY-MM-DD[.fff]" into a Date whose fractional day
// carries the time of day. Years are astronomical (0 is 1 BC) and at most
// four digits, which keeps them inside a signed 16-bit year.
func ParseDate(s string) (astro.Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return astro.Date{}, &ParseError{Input: s, Kind: "date", Err: ErrMalformed}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.ParseFloat(m[3], 64)

	switch {
	case month < 1 || month > 12:
		return astro.Date{}, &ParseError{Input: s, Kind: "date", Err: fmt.Errorf("%w: month %d", ErrOutOfRange, month)}
	case day >= 32:
		return astro.Date{}, &ParseError{Input: s, Kind: "date", Err: fmt.Errorf("%w: day %v", ErrOutOfRange, day)}
	}

	return astro.NewDate(year, time.Month(month), day), nil
}
