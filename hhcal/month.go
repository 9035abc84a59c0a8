package hhcal

import "fmt"

// Month lengths repeat in four 91-day quarters of 30, 30 and 31 days.
// A leap year extends the last month by the intercalary week.
var (
	daysPerMonth    = [MaxMonth]int{30, 30, 31, 30, 30, 31, 30, 30, 31, 30, 30, 31}
	maxDaysPerMonth = [MaxMonth]int{30, 30, 31, 30, 30, 31, 30, 30, 31, 30, 30, 38}
	monthStartDay   = [MaxMonth]int{0, 30, 60, 91, 121, 151, 182, 212, 242, 273, 303, 333}
)

// MonthOf returns the month (1..12) containing the instant. year must be
// YearOf(instant).
func MonthOf(instant int64, year int) int {
	return monthOfDay(dayOfYearZero(instant, year))
}

// monthOfDay maps a zero-based day of year to its month. Day 364 onward
// is the intercalary week, which belongs to month 12 unconditionally.
// Every other day resolves by quarter arithmetic: each 91-day quarter
// holds exactly three months, so scaling by 3 before dividing by 91
// recovers the month index. The +2 places the month boundaries at days
// 30 and 60 of the quarter; without it the division splits the quarter
// 31, 30, 30 instead of 30, 30, 31.
func monthOfDay(doy int) int {
	if doy >= DaysPerCommonYear {
		return MaxMonth
	}
	return (doy*3+2)/91 + 1
}

// DaysInMonth returns the length of the month in the given year.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > MaxMonth {
		return 0, fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}
	if IsLeapYear(year) {
		return maxDaysPerMonth[month-1], nil
	}
	return daysPerMonth[month-1], nil
}

// MaxDaysInMonth returns the length of the month in a leap year, the
// year-independent upper bound used for validation before the year is
// known.
func MaxDaysInMonth(month int) (int, error) {
	if month < 1 || month > MaxMonth {
		return 0, fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}
	return maxDaysPerMonth[month-1], nil
}

// DaysInMonthAt returns the length of the month containing the instant.
func DaysInMonthAt(instant int64) int {
	year := YearOf(instant)
	n, _ := DaysInMonth(year, MonthOf(instant, year))
	return n
}

func dayOfYearZero(instant int64, year int) int {
	return int((instant - firstInstantOfYear(year)) / MillisPerDay)
}

// DayOfYear returns the one-based ordinal of the instant's day within
// the year. year must be YearOf(instant).
func DayOfYear(instant int64, year int) int {
	return dayOfYearZero(instant, year) + 1
}

// DayOfMonth returns the day of the month of the instant, one-based.
// Intercalary days are days 32..38 of month 12. year must be
// YearOf(instant).
func DayOfMonth(instant int64, year int) int {
	doy := dayOfYearZero(instant, year)
	return doy - monthStartDay[monthOfDay(doy)-1] + 1
}

// YearMonthDayMillis returns the instant at midnight of the given
// calendar date. The day is not range-checked against the month length;
// validation against DaysInMonth or MaxDaysInMonth is the caller's
// concern.
func YearMonthDayMillis(year, month, day int) (int64, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}
	if month < 1 || month > MaxMonth {
		return 0, fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}
	return firstInstantOfYear(year) + int64(monthStartDay[month-1]+day-1)*MillisPerDay, nil
}
