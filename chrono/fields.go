package chrono

import "github.com/apokalipsys/joda-time-chrono/internal/gregorian"

// Fields is the field set assembled for a calendar system.
type Fields struct {
	Year  YearField
	Month MonthField
}

// AssembleFields builds the year and month fields for the calendar. The
// month field is bound to the calendar's months-per-year count.
func AssembleFields(cal Calendar) Fields {
	return Fields{
		Year:  YearField{cal: cal},
		Month: MonthField{cal: cal, monthsPerYear: cal.MaxMonth()},
	}
}

// YearField exposes the year component of an instant.
type YearField struct {
	cal Calendar
}

// Get returns the year of the instant.
func (f YearField) Get(instant int64) int {
	return f.cal.YearOf(instant)
}

// Set returns the instant with the year replaced, preserving day of
// year and time of day where the target year's structure allows.
func (f YearField) Set(instant int64, year int) (int64, error) {
	return f.cal.WithYear(instant, year)
}

// Add shifts the instant by a number of years.
func (f YearField) Add(instant int64, years int) (int64, error) {
	if years == 0 {
		return instant, nil
	}
	return f.cal.WithYear(instant, f.cal.YearOf(instant)+years)
}

// Difference returns the number of whole years by which minuend exceeds
// subtrahend.
func (f YearField) Difference(minuend, subtrahend int64) int {
	return f.cal.YearsBetween(minuend, subtrahend)
}

// MonthField exposes the month component of an instant for a calendar
// with a fixed number of months per year.
type MonthField struct {
	cal           Calendar
	monthsPerYear int
}

// Get returns the month of the instant.
func (f MonthField) Get(instant int64) int {
	return f.cal.MonthOf(instant, f.cal.YearOf(instant))
}

// Add shifts the instant by a number of months, carrying whole years
// and clamping the day of month to the target month's length.
func (f MonthField) Add(instant int64, months int) (int64, error) {
	year := f.cal.YearOf(instant)
	month := f.cal.MonthOf(instant, year)
	day := f.cal.DayOfMonth(instant, year)

	m := int64(month-1) + int64(months)
	year += int(gregorian.FloorDiv(m, int64(f.monthsPerYear)))
	month = int(gregorian.FloorMod(m, int64(f.monthsPerYear))) + 1

	length, err := f.cal.DaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day > length {
		day = length
	}

	midnight, err := f.cal.YearMonthDayMillis(year, month, day)
	if err != nil {
		return 0, err
	}
	return midnight + f.cal.MillisOfDay(instant), nil
}

// Difference returns the number of whole months by which minuend
// exceeds subtrahend. A started month only counts once the day of month
// and time of day of the subtrahend have been reached.
func (f MonthField) Difference(minuend, subtrahend int64) int {
	minuendYear := f.cal.YearOf(minuend)
	subtrahendYear := f.cal.YearOf(subtrahend)

	diff := (minuendYear-subtrahendYear)*f.monthsPerYear +
		f.cal.MonthOf(minuend, minuendYear) - f.cal.MonthOf(subtrahend, subtrahendYear)

	minuendDay := f.cal.DayOfMonth(minuend, minuendYear)
	subtrahendDay := f.cal.DayOfMonth(subtrahend, subtrahendYear)
	minuendTime := f.cal.MillisOfDay(minuend)
	subtrahendTime := f.cal.MillisOfDay(subtrahend)

	if diff > 0 && (minuendDay < subtrahendDay ||
		(minuendDay == subtrahendDay && minuendTime < subtrahendTime)) {
		diff--
	}
	if diff < 0 && (minuendDay > subtrahendDay ||
		(minuendDay == subtrahendDay && minuendTime > subtrahendTime)) {
		diff++
	}
	return diff
}
