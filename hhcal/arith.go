package hhcal

import "fmt"

// YearsBetween returns the number of whole calendar years by which the
// minuend instant exceeds the subtrahend instant. The count is negative
// when the minuend is the earlier instant.
//
// Before comparing offsets within the year, an offset inside an
// intercalary week is pulled back by one day when the other operand's
// year is common: the intercalary day has no counterpart there, so its
// anniversary is deemed to fall on the last ordinary day of the year.
func YearsBetween(minuend, subtrahend int64) int {
	minuendYear := YearOf(minuend)
	subtrahendYear := YearOf(subtrahend)

	minuendRem := minuend - firstInstantOfYear(minuendYear)
	subtrahendRem := subtrahend - firstInstantOfYear(subtrahendYear)

	if subtrahendRem >= intercalaryStart && IsLeapYear(subtrahendYear) && !IsLeapYear(minuendYear) {
		subtrahendRem -= MillisPerDay
	} else if minuendRem >= intercalaryStart && IsLeapYear(minuendYear) && subtrahendRem < intercalaryStart {
		minuendRem -= MillisPerDay
	}

	difference := minuendYear - subtrahendYear
	if minuendRem < subtrahendRem {
		difference--
	}
	return difference
}

// WithYear returns the instant with its year component replaced,
// preserving day of year and time of day. A day of year inside the
// intercalary week clamps to the last ordinary day, 364, when the
// target year is common.
func WithYear(instant int64, year int) (int64, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}

	thisYear := YearOf(instant)
	dayOfYear := DayOfYear(instant, thisYear)
	millisOfDay := MillisOfDay(instant)

	if dayOfYear > DaysPerCommonYear && !IsLeapYear(year) {
		dayOfYear = DaysPerCommonYear
	}

	return firstInstantOfYear(year) + int64(dayOfYear-1)*MillisPerDay + millisOfDay, nil
}
