package calendar

// Easter computation. The project these conversions were built for exists
// to locate Easter Sunday on the three calendars, so the computus lives
// next to them.

// GregorianEaster returns the date of Western Easter Sunday for a year,
// on the Gregorian calendar. It uses the anonymous Gregorian computus
// (the algorithm printed in Meeus, valid for all years of the calendar).
func GregorianEaster(year int) Date {
	a := floorMod(year, 19)
	b := floorDiv(year, 100)
	c := floorMod(year, 100)
	d := floorDiv(b, 4)
	e := floorMod(b, 4)
	f := floorDiv(b+8, 25)
	g := floorDiv(b-f+1, 3)
	h := floorMod(19*a+b-d-g+15, 30)
	i := floorDiv(c, 4)
	k := floorMod(c, 4)
	l := floorMod(32+2*e+2*i-h-k, 7)
	m := floorDiv(a+11*h+22*l, 451)
	n := h + l - 7*m + 114
	return Date{Year: year, Month: floorDiv(n, 31), Day: floorMod(n, 31) + 1}
}

// JulianEaster returns the date of Easter Sunday for a year as reckoned
// on the Julian calendar (Meeus' Julian computus). The result is a
// Julian-calendar date; convert it through the CJDN to express it on
// another calendar.
func JulianEaster(year int) Date {
	a := floorMod(year, 4)
	b := floorMod(year, 7)
	c := floorMod(year, 19)
	d := floorMod(19*c+15, 30)
	e := floorMod(2*a+4*b-d+34, 7)
	n := d + e + 114
	return Date{Year: year, Month: floorDiv(n, 31), Day: floorMod(n, 31) + 1}
}

// OrthodoxEaster returns Eastern Orthodox Easter Sunday for a year,
// expressed on the Gregorian calendar: the Julian computus result routed
// through the CJDN.
func OrthodoxEaster(year int) Date {
	return Gregorian.FromCJDN(Julian.ToCJDN(JulianEaster(year)))
}
