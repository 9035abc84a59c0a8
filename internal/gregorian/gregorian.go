// Package gregorian provides proleptic-Gregorian day counting for the
// Hanke-Henry leap-week rule. The rule inserts the extra week whenever the
// Gregorian day-of-week alignment crosses a Thursday boundary, so the only
// thing the calendar core needs from the Gregorian calendar is the cumulative
// day count at the end of a year, reduced mod 7.
//
// All divisions are floored, not truncated, so the counts stay consistent
// for negative years.
package gregorian

// FloorDiv returns the quotient of a/b rounded towards negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a-FloorDiv(a,b)*b. The result has the sign of b.
func FloorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

// CumulativeDays returns the number of days in the proleptic-Gregorian
// years 1..year, i.e. 365*year plus the accumulated leap days. For
// year <= 0 the count is negative, extending the same rule backwards.
func CumulativeDays(year int64) int64 {
	return year*365 + FloorDiv(year, 4) - FloorDiv(year, 100) + FloorDiv(year, 400)
}

// WeekdayShift returns CumulativeDays(year) mod 7 in 0..6. Proleptic-Gregorian
// 0001-01-01 is a Monday, so the shift gives the weekday of the following
// year's January 1st relative to Monday.
func WeekdayShift(year int64) int {
	return int(FloorMod(CumulativeDays(year), 7))
}
