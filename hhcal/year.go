package hhcal

import (
	"fmt"

	"github.com/apokalipsys/joda-time-chrono/internal/gregorian"
)

// FirstInstantOfYear returns the instant at which the year begins.
// Consecutive year boundaries are gapless: the difference between year
// y+1 and year y is always DaysInYear(y)*MillisPerDay.
func FirstInstantOfYear(year int) (int64, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}
	return firstInstantOfYear(year), nil
}

func firstInstantOfYear(year int) int64 {
	return firstDayOfYear(year) * MillisPerDay
}

// firstDayOfYear returns the epoch-relative day number of the year's
// first day: 364 days per year plus one week per intervening leap year,
// counted with sign on both sides of the epoch.
func firstDayOfYear(year int) int64 {
	relative := int64(year) - epochYear
	leaps := leapYearsBefore(int64(year)) - leapYearsBefore(epochYear)
	return relative*DaysPerCommonYear + leaps*DaysPerWeek + epochCorrectionDays
}

// YearOf returns the year containing the instant.
//
// The initial estimate divides halved operands so the arithmetic stays
// within int64 across the whole instant range. The estimate is then
// checked against the materialized year start and corrected by at most
// one year in either direction; AverageMillisPerYear is tight enough
// that a second correction step is never needed.
func YearOf(instant int64) int {
	unit := AverageMillisPerYear / 2
	i2 := (instant >> 1) + approxMillisAtEpoch/2
	if i2 < 0 {
		i2 = i2 - unit + 1
	}
	year := int(i2 / unit)

	// Instants past the last representable year boundary would overflow
	// when materialized; pin the estimate and let the correction step
	// resolve the boundary years exactly.
	if year < MinYear {
		year = MinYear
	} else if year > MaxYear {
		year = MaxYear
	}

	yearStart := firstInstantOfYear(year)
	diff := instant - yearStart

	if diff < 0 {
		year--
	} else if diff >= intercalaryStart {
		oneYear := int64(DaysInYear(year)) * MillisPerDay
		if yearStart+oneYear <= instant {
			year++
		}
	}
	return year
}

// MillisOfDay returns the time-of-day component of the instant.
func MillisOfDay(instant int64) int64 {
	return gregorian.FloorMod(instant, MillisPerDay)
}

// DayOfWeek returns the ISO weekday of the instant, 1 (Monday) through
// 7 (Sunday). Years are whole weeks, so the cycle runs unbroken across
// year boundaries, intercalary weeks included.
func DayOfWeek(instant int64) int {
	day := gregorian.FloorDiv(instant, MillisPerDay)
	return int(gregorian.FloorMod(day-epochCorrectionDays, DaysPerWeek)) + 1
}
