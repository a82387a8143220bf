// Package calendar implements conversions between the Gregorian, Revised
// Julian (Milanković) and Julian calendars through the Chronological Julian
// Day Number (CJDN), a whole-day count whose day 0 is 1 January -4712 on the
// proleptic Julian calendar, with the day boundary at local midnight.
//
// All conversions are closed-form integer arithmetic taken from the
// derivations at https://aa.quae.nl/en/reken/juliaansedag.html. They are
// pure, stateless and safe for concurrent use.
package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// System selects which calendar's leap-year rule and conversion formula
// applies. The numeric values match the selector of the original tables
// (1=Julian, 2=Revised Julian, 3=Gregorian).
type System int

const (
	Julian     System = 1
	Milankovic System = 2
	Gregorian  System = 3
)

// ErrUnknownSystem indicates a calendar selector outside the three
// supported systems.
var ErrUnknownSystem = errors.New("unknown calendar system")

// systemNames maps canonical lower-case names and aliases to a System.
var systemNames = map[string]System{
	"julian":         Julian,
	"milankovic":     Milankovic,
	"revised-julian": Milankovic,
	"revisedjulian":  Milankovic,
	"gregorian":      Gregorian,
}

// ParseSystem parses a calendar name. It accepts "julian", "milankovic"
// (alias "revised-julian") and "gregorian", case-insensitively.
func ParseSystem(name string) (System, error) {
	s, ok := systemNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return s, nil
}

// Valid reports whether s is one of the three supported systems.
func (s System) Valid() bool {
	return s == Julian || s == Milankovic || s == Gregorian
}

func (s System) String() string {
	switch s {
	case Julian:
		return "julian"
	case Milankovic:
		return "milankovic"
	case Gregorian:
		return "gregorian"
	}
	return fmt.Sprintf("system(%d)", int(s))
}

// Date is a calendar date as a plain value. Year uses astronomical
// numbering: year 0 exists and corresponds to 1 BC, year -1 to 2 BC.
// A Date carries no calendar of its own; it means whatever the System it
// is used with says it means.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date in ISO 8601 extended format, YYYY-MM-DD.
// Years are zero-padded to at least four digits; negative years keep a
// leading minus sign, so year -1 renders as "-0001".
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("%05d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsLeap reports whether year is a leap year on calendar s.
//
// Julian: every fourth year. Gregorian: every fourth year, except century
// years not divisible by 400. Milanković: every fourth year, except
// century years whose century count mod 9 is neither 2 nor 6 (the
// 200/900-year correction; identical to Gregorian until 2800).
func (s System) IsLeap(year int) bool {
	if floorMod(year, 4) != 0 {
		return false
	}
	if floorMod(year, 100) != 0 {
		return true
	}
	century := floorDiv(year, 100)
	switch s {
	case Gregorian:
		return floorMod(century, 4) == 0
	case Milankovic:
		r := floorMod(century, 9)
		return r == 2 || r == 6
	}
	return true // Julian has no century exception
}

// monthDays holds the length of each month in a common year, 1-indexed.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of the given
// year on calendar s, or 0 if month is outside 1-12.
func (s System) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && s.IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

// Validate checks that d is a real date on calendar s: month 1-12 and day
// within the month for that year's leap status. The conversion formulas
// never call this; it exists as an optional strict mode on top of the
// deterministic no-validation arithmetic.
func (s System) Validate(d Date) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSystem, int(s))
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("invalid month: %d", d.Month)
	}
	if n := s.DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return fmt.Errorf("invalid day for %s %04d-%02d: %d", s, d.Year, d.Month, d.Day)
	}
	return nil
}
