// Package hhcal implements the date arithmetic of the Hanke-Henry
// Permanent Calendar. Every year has twelve months of 30, 30 and 31 days
// (364 days, exactly 52 weeks); every five or six years a 7-day
// intercalary week ("Xtr") is appended to the last month to keep the
// calendar aligned with the solar year. Because every year is a whole
// number of weeks, every year begins on a Monday.
// https://henry.pha.jhu.edu/calendar.html
//
// The package is proleptic: the rules extend unchanged to years before
// the calendar's proposal, including negative years.
//
// Instants are signed millisecond counts since the Gregorian epoch
// 1970-01-01T00:00:00Z. All functions are pure; there is no shared state
// beyond constant tables built at init.
package hhcal

import "errors"

// Errors reported for arguments outside the supported domain. Every
// other operation is total.
var (
	ErrYearOutOfRange  = errors.New("year out of range")
	ErrMonthOutOfRange = errors.New("month out of range")
)

const (
	// MillisPerDay is the fixed length of a calendar day.
	MillisPerDay int64 = 86_400_000

	// DaysPerCommonYear is the length of a year without the
	// intercalary week; DaysPerLeapYear includes it.
	DaysPerCommonYear = 364
	DaysPerLeapYear   = 371
	DaysPerWeek       = 7

	// MinYear and MaxYear bound the years whose first instant is
	// representable as an int64 millisecond count.
	MinYear = -292_275_054
	MaxYear = 292_278_993

	// MaxMonth is the number of months in every year.
	MaxMonth = 12

	// DaysInYearMax is the length of the longest possible year.
	DaysInYearMax = DaysPerLeapYear

	// AverageMillisPerYear is the mean year length, 146097/400 days.
	// The year estimator in YearOf relies on this being exact: a looser
	// constant accumulates drift over the ±292-million-year range and
	// breaks the one-step correction bound.
	AverageMillisPerYear  int64 = 31_556_952_000
	AverageMillisPerMonth       = AverageMillisPerYear / MaxMonth

	// epochYear is the calendar year containing instant 0.
	epochYear = 1970

	// epochCorrectionDays aligns the epoch instant with the calendar:
	// 1970-01-01 Gregorian is a Thursday, and the Hanke-Henry year 1970
	// begins on the preceding Monday, Gregorian 1969-12-29. Verified
	// against the 2018-01-01 anchor, where both calendars coincide.
	epochCorrectionDays = -3

	// approxMillisAtEpoch estimates the span from the year-zero
	// boundary to the epoch, used to seed the year estimator.
	approxMillisAtEpoch = epochYear * AverageMillisPerYear

	// intercalaryStart is the offset within a leap year at which the
	// intercalary week begins.
	intercalaryStart = DaysPerCommonYear * MillisPerDay
)

// DaysInYear returns 371 for leap years and 364 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return DaysPerLeapYear
	}
	return DaysPerCommonYear
}

// WeeksInYear returns the number of whole weeks in the year, 52 or 53.
func WeeksInYear(year int) int {
	return DaysInYear(year) / DaysPerWeek
}
