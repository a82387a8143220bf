package calendar

// Weekday names indexed by ISO 8601 weekday number (Monday=1).
var weekdayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekday returns the ISO 8601 day of the week for a CJDN: 1 for Monday
// through 7 for Sunday. CJDN 0 is a Monday, so no offset constant is
// needed. The weekday of a CJDN is the same on every calendar.
func Weekday(j int) int {
	return floorMod(j, 7) + 1
}

// WeekdayName returns the English name for an ISO weekday number, or ""
// if n is outside 1-7.
func WeekdayName(n int) string {
	if n < 1 || n > 7 {
		return ""
	}
	return weekdayNames[n]
}

// DayOfWeek returns the ISO weekday for j. The calendar selector does not
// influence the result (a given CJDN falls on the same weekday however it
// is written); it is accepted for symmetry with the conversion functions
// and validated so callers cannot silently pass garbage.
func DayOfWeek(j int, s System) (int, error) {
	if !s.Valid() {
		return 0, ErrUnknownSystem
	}
	return Weekday(j), nil
}
