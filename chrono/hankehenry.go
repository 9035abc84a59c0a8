package chrono

import "github.com/apokalipsys/joda-time-chrono/hhcal"

// hankeHenry adapts the hhcal package to the Calendar capability set.
// It is stateless; all instances are interchangeable.
type hankeHenry struct{}

func (hankeHenry) IsLeapYear(year int) bool {
	return hhcal.IsLeapYear(year)
}

func (hankeHenry) FirstInstantOfYear(year int) (int64, error) {
	return hhcal.FirstInstantOfYear(year)
}

func (hankeHenry) YearOf(instant int64) int {
	return hhcal.YearOf(instant)
}

func (hankeHenry) DaysInYear(year int) int {
	return hhcal.DaysInYear(year)
}

func (hankeHenry) MonthOf(instant int64, year int) int {
	return hhcal.MonthOf(instant, year)
}

func (hankeHenry) DayOfMonth(instant int64, year int) int {
	return hhcal.DayOfMonth(instant, year)
}

func (hankeHenry) DayOfYear(instant int64, year int) int {
	return hhcal.DayOfYear(instant, year)
}

func (hankeHenry) DaysInMonth(year, month int) (int, error) {
	return hhcal.DaysInMonth(year, month)
}

func (hankeHenry) MaxDaysInMonth(month int) (int, error) {
	return hhcal.MaxDaysInMonth(month)
}

func (hankeHenry) YearMonthDayMillis(year, month, day int) (int64, error) {
	return hhcal.YearMonthDayMillis(year, month, day)
}

func (hankeHenry) MillisOfDay(instant int64) int64 {
	return hhcal.MillisOfDay(instant)
}

func (hankeHenry) YearsBetween(minuend, subtrahend int64) int {
	return hhcal.YearsBetween(minuend, subtrahend)
}

func (hankeHenry) WithYear(instant int64, year int) (int64, error) {
	return hhcal.WithYear(instant, year)
}

func (hankeHenry) MinYear() int { return hhcal.MinYear }

func (hankeHenry) MaxYear() int { return hhcal.MaxYear }

func (hankeHenry) MaxMonth() int { return hhcal.MaxMonth }

func (hankeHenry) DaysInYearMax() int { return hhcal.DaysInYearMax }

func (hankeHenry) AverageMillisPerYear() int64 { return hhcal.AverageMillisPerYear }

func (hankeHenry) AverageMillisPerMonth() int64 { return hhcal.AverageMillisPerMonth }
