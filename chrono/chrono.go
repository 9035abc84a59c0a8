// Package chrono assembles calendar systems into the chronology surface
// used by period and duration arithmetic: zone-bound instances, year and
// month fields, and an instance registry.
//
// A calendar system contributes only the capability set named by
// Calendar; everything in this package derives from that interface and
// never depends on a concrete calendar.
package chrono

// Calendar is the capability set a calendar system implements: the leap
// predicate, year boundary computation, instant-to-year resolution,
// month mapping, year arithmetic and the constants the field layer
// consumes. Instants are millisecond counts since 1970-01-01T00:00:00Z.
//
// Implementations must be immutable and safe for concurrent use.
type Calendar interface {
	IsLeapYear(year int) bool
	FirstInstantOfYear(year int) (int64, error)
	YearOf(instant int64) int
	DaysInYear(year int) int

	// MonthOf, DayOfMonth and DayOfYear require year == YearOf(instant).
	MonthOf(instant int64, year int) int
	DayOfMonth(instant int64, year int) int
	DayOfYear(instant int64, year int) int
	DaysInMonth(year, month int) (int, error)
	MaxDaysInMonth(month int) (int, error)
	YearMonthDayMillis(year, month, day int) (int64, error)
	MillisOfDay(instant int64) int64

	YearsBetween(minuend, subtrahend int64) int
	WithYear(instant int64, year int) (int64, error)

	MinYear() int
	MaxYear() int
	MaxMonth() int
	DaysInYearMax() int
	AverageMillisPerYear() int64
	AverageMillisPerMonth() int64
}
