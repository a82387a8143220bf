package calendar

// Epoch offsets between the CJDN day count and the internal "day of era"
// counts of each formula. CJDN 0 is 1 January -4712 proleptic Julian.
const (
	gregorianEpochOffset = 1721119 // CJDN of Gregorian -1-02-29, the era base
	gregorianEpochShift  = 1721120
	julianEpochOffset    = 1721117
	julianEpochShift     = 1721118

	// Days per cycle: 146097 days per 400 Gregorian years, 328718 days
	// per 900 Milanković years, 1461 days per 4 Julian years, and 36525
	// days per 100 Julian-rule years inside a cycle. 153 days span five
	// months of the shifted (March-first) year.
	gregorianCycle  = 146097
	milankovicCycle = 328718
	julianCycle     = 1461
	centuryDays     = 36525
	fiveMonths      = 153
)

// floorDiv returns the floor of a/b. Unlike Go's native division it
// rounds toward negative infinity, which the proleptic formulas require
// for years before the epoch.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a, b)*b; the result has the sign of b.
func floorMod(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

// ToCJDN converts a date on calendar s to its Chronological Julian Day
// Number. Month and day are not validated: out-of-range values feed
// straight into the arithmetic and yield a deterministic, possibly
// meaningless CJDN (Gregorian 1900-02-29 lands on the CJDN of
// 1900-03-01, for example).
func (s System) ToCJDN(d Date) int {
	switch s {
	case Julian:
		return julianToCJDN(d)
	case Milankovic:
		return milankovicToCJDN(d)
	default:
		return gregorianToCJDN(d)
	}
}

// FromCJDN converts a CJDN to its date on calendar s. Any integer is
// accepted; there is no range restriction.
func (s System) FromCJDN(j int) Date {
	switch s {
	case Julian:
		return julianFromCJDN(j)
	case Milankovic:
		return milankovicFromCJDN(j)
	default:
		return gregorianFromCJDN(j)
	}
}

// The forward formulas shift the year to start in March (c0 is -1 for
// January and February), split it into century and year-of-century, and
// accumulate whole days per century, per year and per month.

func gregorianToCJDN(d Date) int {
	c0 := floorDiv(d.Month-3, 12)
	x4 := d.Year + c0
	x3 := floorDiv(x4, 100)
	x2 := floorMod(x4, 100)
	x1 := d.Month - 12*c0 - 3
	return floorDiv(gregorianCycle*x3, 4) +
		floorDiv(centuryDays*x2, 100) +
		floorDiv(fiveMonths*x1+2, 5) +
		d.Day + gregorianEpochOffset
}

func milankovicToCJDN(d Date) int {
	c0 := floorDiv(d.Month-3, 12)
	x4 := d.Year + c0
	x3 := floorDiv(x4, 100)
	x2 := floorMod(x4, 100)
	x1 := d.Month - 12*c0 - 3
	return floorDiv(milankovicCycle*x3+6, 9) +
		floorDiv(centuryDays*x2, 100) +
		floorDiv(fiveMonths*x1+2, 5) +
		d.Day + gregorianEpochOffset
}

func julianToCJDN(d Date) int {
	c0 := floorDiv(d.Month-3, 12)
	j1 := floorDiv((d.Year+c0)*julianCycle, 4)
	j2 := floorDiv(fiveMonths*d.Month-1836*c0-457, 5)
	return j1 + j2 + d.Day + julianEpochOffset
}

// The inverse formulas run the same decomposition backwards: recover the
// century from the day of era, the year from the day of century, and the
// month from the day of year, then undo the March shift.

func gregorianFromCJDN(j int) Date {
	k3 := 4*(j-gregorianEpochShift) + 3
	x3 := floorDiv(k3, gregorianCycle)
	k2 := 100*floorDiv(floorMod(k3, gregorianCycle), 4) + 99
	x2 := floorDiv(k2, centuryDays)
	k1 := 5*floorDiv(floorMod(k2, centuryDays), 100) + 2
	return assemble(100*x3+x2, k1)
}

func milankovicFromCJDN(j int) Date {
	k3 := 9*(j-gregorianEpochShift) + 2
	x3 := floorDiv(k3, milankovicCycle)
	k2 := 100*floorDiv(floorMod(k3, milankovicCycle), 9) + 99
	x2 := floorDiv(k2, centuryDays)
	k1 := 5*floorDiv(floorMod(k2, centuryDays), 100) + 2
	return assemble(100*x3+x2, k1)
}

func julianFromCJDN(j int) Date {
	k2 := 4*(j-julianEpochShift) + 3
	k1 := 5*floorDiv(floorMod(k2, julianCycle), 4) + 2
	return assemble(floorDiv(k2, julianCycle), k1)
}

// assemble turns a shifted year and a scaled day-of-year quantity into a
// calendar date, moving the year start back from March to January.
func assemble(shiftedYear, k1 int) Date {
	x1 := floorDiv(k1, fiveMonths)
	c0 := floorDiv(x1+2, 12)
	return Date{
		Year:  shiftedYear + c0,
		Month: x1 - 12*c0 + 3,
		Day:   floorDiv(floorMod(k1, fiveMonths), 5) + 1,
	}
}
