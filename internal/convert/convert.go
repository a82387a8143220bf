// Package convert is the string boundary around the calendar arithmetic.
// It parses loosely-typed year/month/day input into strict integers,
// failing fast with a typed ParseError, and renders inverse conversions
// either as ISO 8601 date strings or as a single selected field.
package convert

import (
	"fmt"
	"strconv"

	"github.com/mattsmi/cjdn/internal/calendar"
)

// ParseError reports a year, month or day argument that is not an
// integer. It is the only failure kind on the forward path.
type ParseError struct {
	Field string // "year", "month" or "day"
	Value string // the offending input
	Err   error  // the underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseField converts one date component to an integer.
func parseField(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

// ParseDate parses year, month and day strings into a Date. Only the
// integer conversion can fail; range checking is left to the optional
// strict mode (calendar.System.Validate).
func ParseDate(year, month, day string) (calendar.Date, error) {
	y, err := parseField("year", year)
	if err != nil {
		return calendar.Date{}, err
	}
	m, err := parseField("month", month)
	if err != nil {
		return calendar.Date{}, err
	}
	d, err := parseField("day", day)
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.Date{Year: y, Month: m, Day: d}, nil
}

// ToCJDN parses year, month and day strings and converts the date on
// calendar s to a CJDN. Values that parse but are out of calendar range
// are not rejected; they produce a deterministic arithmetic result.
func ToCJDN(s calendar.System, year, month, day string) (int, error) {
	d, err := ParseDate(year, month, day)
	if err != nil {
		return 0, err
	}
	return s.ToCJDN(d), nil
}

// GregorianToCJDN converts a Gregorian date given as strings to a CJDN.
func GregorianToCJDN(year, month, day string) (int, error) {
	return ToCJDN(calendar.Gregorian, year, month, day)
}

// MilankovicToCJDN converts a Revised Julian date given as strings to a CJDN.
func MilankovicToCJDN(year, month, day string) (int, error) {
	return ToCJDN(calendar.Milankovic, year, month, day)
}

// JulianToCJDN converts a Julian date given as strings to a CJDN.
func JulianToCJDN(year, month, day string) (int, error) {
	return ToCJDN(calendar.Julian, year, month, day)
}

// Selection picks a single field of an inverse conversion instead of the
// full date string. When more than one flag is set, the first set flag in
// Year, Month, Day order wins; the precedence mirrors the parameter order
// of the conversion functions and keeps the contract deterministic.
type Selection struct {
	Year  bool
	Month bool
	Day   bool
}

// Extract returns the selected field of the date for j on calendar s.
// ok is false when no flag is set, in which case callers want the full
// date string instead.
func Extract(s calendar.System, j int, sel Selection) (v int, ok bool) {
	d := s.FromCJDN(j)
	switch {
	case sel.Year:
		return d.Year, true
	case sel.Month:
		return d.Month, true
	case sel.Day:
		return d.Day, true
	}
	return 0, false
}

// FromCJDN renders the date for j on calendar s: the ISO 8601 date string
// by default, or the single selected field as a decimal integer.
func FromCJDN(s calendar.System, j int, sel Selection) string {
	if v, ok := Extract(s, j, sel); ok {
		return strconv.Itoa(v)
	}
	return s.FromCJDN(j).String()
}

// CJDNToGregorian renders the Gregorian date for j.
func CJDNToGregorian(j int, sel Selection) string {
	return FromCJDN(calendar.Gregorian, j, sel)
}

// CJDNToMilankovic renders the Revised Julian date for j.
func CJDNToMilankovic(j int, sel Selection) string {
	return FromCJDN(calendar.Milankovic, j, sel)
}

// CJDNToJulian renders the Julian date for j.
func CJDNToJulian(j int, sel Selection) string {
	return FromCJDN(calendar.Julian, j, sel)
}

// Between re-expresses a date on calendar from as the date of the same
// day on calendar to.
func Between(from, to calendar.System, d calendar.Date) calendar.Date {
	return to.FromCJDN(from.ToCJDN(d))
}
