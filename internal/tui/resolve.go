package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattsmi/cjdn/internal/calendar"
	"github.com/mattsmi/cjdn/internal/convert"
)

// Result holds everything the converter screen shows for one input.
type Result struct {
	CJDN    int
	Weekday int

	// The same day written on each calendar.
	Gregorian  calendar.Date
	Milankovic calendar.Date
	Julian     calendar.Date

	// Easter of the Gregorian year the day falls in.
	WesternEaster  calendar.Date
	OrthodoxEaster calendar.Date

	// Note is set when the input parsed but is not a real date on the
	// input calendar; the conversion is still shown (the arithmetic is
	// deterministic either way).
	Note string
}

// Resolve interprets input and computes the full result set. A bare
// integer is taken as a CJDN; anything of the form YEAR-MM-DD (leading
// minus allowed on the year) is taken as a date on calendar sys.
func Resolve(input string, sys calendar.System) (Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{}, fmt.Errorf("enter a date or a CJDN")
	}

	var res Result
	if j, err := strconv.Atoi(input); err == nil {
		res.CJDN = j
	} else {
		d, err := parseISODate(input)
		if err != nil {
			return Result{}, err
		}
		res.CJDN = sys.ToCJDN(d)
		if err := sys.Validate(d); err != nil {
			res.Note = fmt.Sprintf("not a real %s date (%v); showing the arithmetic result", sys, err)
		}
	}

	res.Weekday = calendar.Weekday(res.CJDN)
	res.Gregorian = calendar.Gregorian.FromCJDN(res.CJDN)
	res.Milankovic = calendar.Milankovic.FromCJDN(res.CJDN)
	res.Julian = calendar.Julian.FromCJDN(res.CJDN)
	res.WesternEaster = calendar.GregorianEaster(res.Gregorian.Year)
	res.OrthodoxEaster = calendar.OrthodoxEaster(res.Gregorian.Year)
	return res, nil
}

// parseISODate parses YEAR-MM-DD, keeping a leading minus on the year.
func parseISODate(s string) (calendar.Date, error) {
	rest := s
	neg := strings.HasPrefix(rest, "-")
	if neg {
		rest = rest[1:]
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return calendar.Date{}, fmt.Errorf("expected YYYY-MM-DD or a CJDN, got %q", s)
	}
	year := parts[0]
	if neg {
		year = "-" + year
	}
	return convert.ParseDate(year, parts[1], parts[2])
}
