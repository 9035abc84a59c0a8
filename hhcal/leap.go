package hhcal

import "github.com/apokalipsys/joda-time-chrono/internal/gregorian"

// IsLeapYear reports whether the year carries the intercalary week.
//
// A year is leap when its Gregorian counterpart begins or ends on a
// Thursday. The calendar drifts against the Gregorian year by one
// weekday per common year and two per Gregorian leap year; the Thursday
// test is where that drift crosses the midpoint of the week, which is
// when the extra week is inserted to pull the Monday-aligned year back
// towards January 1st.
func IsLeapYear(year int) bool {
	startsThursday := gregorian.WeekdayShift(int64(year)-1) == 3
	endsThursday := gregorian.WeekdayShift(int64(year)) == 4
	return startsThursday || endsThursday
}

// The Gregorian cycle is 146097 days, exactly 20871 weeks, so weekday
// alignment and with it the leap pattern repeats every 400 years.
const (
	yearsPerCycle     = 400
	leapWeeksPerCycle = 71 // (146097 - 400*364) / 7
)

// leapCycle[i] is the number of leap years in [0, i) of one cycle.
var leapCycle [yearsPerCycle + 1]int16

func init() {
	for y := 0; y < yearsPerCycle; y++ {
		n := leapCycle[y]
		if IsLeapYear(y) {
			n++
		}
		leapCycle[y+1] = n
	}
}

// leapYearsBefore returns the number of leap years in [0, year), counted
// negatively for year < 0. Closed form over the 400-year cycle, so year
// boundary computation does not scan year by year.
func leapYearsBefore(year int64) int64 {
	cycles := gregorian.FloorDiv(year, yearsPerCycle)
	rem := gregorian.FloorMod(year, yearsPerCycle)
	return cycles*leapWeeksPerCycle + int64(leapCycle[rem])
}
