package chrono

import "time"

// Chronology is an immutable calendar system bound to a time zone.
// Field accessors shift the instant by the zone's offset at that instant
// before delegating to the calendar, mirroring how a zone-naive instant
// maps to local calendar fields. Resolution of ambiguous or skipped
// local times during zone transitions is out of scope here.
type Chronology struct {
	cal                Calendar
	loc                *time.Location
	minDaysInFirstWeek int
}

// Calendar returns the underlying zone-independent calendar system.
func (c *Chronology) Calendar() Calendar { return c.cal }

// Location returns the zone the chronology is bound to.
func (c *Chronology) Location() *time.Location { return c.loc }

// MinDaysInFirstWeek returns the week-numbering parameter the instance
// was built with.
func (c *Chronology) MinDaysInFirstWeek() int { return c.minDaysInFirstWeek }

// Fields assembles the year and month fields for the calendar.
func (c *Chronology) Fields() Fields { return AssembleFields(c.cal) }

// local shifts a zone-naive instant to the local frame of the
// chronology's zone.
func (c *Chronology) local(instant int64) int64 {
	if c.loc == time.UTC {
		return instant
	}
	_, offset := time.UnixMilli(instant).In(c.loc).Zone()
	return instant + int64(offset)*1000
}

// Year returns the local year of the instant.
func (c *Chronology) Year(instant int64) int {
	return c.cal.YearOf(c.local(instant))
}

// Month returns the local month of the instant.
func (c *Chronology) Month(instant int64) int {
	local := c.local(instant)
	return c.cal.MonthOf(local, c.cal.YearOf(local))
}

// Day returns the local day of month of the instant.
func (c *Chronology) Day(instant int64) int {
	local := c.local(instant)
	return c.cal.DayOfMonth(local, c.cal.YearOf(local))
}

// DayOfYear returns the local day of year of the instant.
func (c *Chronology) DayOfYear(instant int64) int {
	local := c.local(instant)
	return c.cal.DayOfYear(local, c.cal.YearOf(local))
}

// IsLeapYear reports whether the year carries the intercalary week.
func (c *Chronology) IsLeapYear(year int) bool { return c.cal.IsLeapYear(year) }

// WithUTC returns the UTC instance of the same calendar system.
func (c *Chronology) WithUTC() *Chronology {
	return c.WithZone(time.UTC)
}

// WithZone returns the instance of the same calendar system bound to
// the given zone, reusing cached instances.
func (c *Chronology) WithZone(loc *time.Location) *Chronology {
	if loc == nil {
		loc = time.UTC
	}
	if loc == c.loc {
		return c
	}
	z, err := HankeHenry(loc, c.minDaysInFirstWeek)
	if err != nil {
		// minDaysInFirstWeek was validated when c was built.
		panic(err)
	}
	return z
}
