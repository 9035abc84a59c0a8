package hhcal

import (
	"errors"
	"testing"
)

func mustFirst(t *testing.T, year int) int64 {
	t.Helper()
	instant, err := FirstInstantOfYear(year)
	if err != nil {
		t.Fatalf("FirstInstantOfYear(%d): %v", year, err)
	}
	return instant
}

func TestFirstInstantOfYear_Epoch(t *testing.T) {
	// 1970-01-01 Gregorian is a Thursday; the calendar year 1970 begins
	// on the preceding Monday, three days before the epoch.
	if got := mustFirst(t, 1970); got != -3*MillisPerDay {
		t.Errorf("FirstInstantOfYear(1970) = %d, want %d", got, -3*MillisPerDay)
	}
}

func TestFirstInstantOfYear_Anchor2018(t *testing.T) {
	// 2018-01-01 Gregorian is a Monday and both calendars coincide
	// there: unix 1514764800.
	if got := mustFirst(t, 2018); got != 1514764800000 {
		t.Errorf("FirstInstantOfYear(2018) = %d, want 1514764800000", got)
	}
}

func TestFirstInstantOfYear_LeapYearSpan(t *testing.T) {
	// 1970 and 2015 are leap years; 2017 is not.
	if got := mustFirst(t, 1971) - mustFirst(t, 1970); got != 371*MillisPerDay {
		t.Errorf("1970 spans %d ms, want %d", got, 371*MillisPerDay)
	}
	if got := mustFirst(t, 2016) - mustFirst(t, 2015); got != 371*MillisPerDay {
		t.Errorf("2015 spans %d ms, want %d", got, 371*MillisPerDay)
	}
	if got := mustFirst(t, 2018) - mustFirst(t, 2017); got != 364*MillisPerDay {
		t.Errorf("2017 spans %d ms, want %d", got, 364*MillisPerDay)
	}
}

func TestFirstInstantOfYear_MonotonicGapless(t *testing.T) {
	ranges := [][2]int{
		{1900, 2101},
		{-1200, -799},
		{MinYear, MinYear + 5},
		{MaxYear - 5, MaxYear},
	}
	for _, r := range ranges {
		for y := r[0]; y < r[1]; y++ {
			gap := mustFirst(t, y+1) - mustFirst(t, y)
			if want := int64(DaysInYear(y)) * MillisPerDay; gap != want {
				t.Fatalf("boundary gap at year %d = %d, want %d", y, gap, want)
			}
		}
	}
}

func TestFirstInstantOfYear_OutOfRange(t *testing.T) {
	for _, y := range []int{MinYear - 1, MaxYear + 1} {
		if _, err := FirstInstantOfYear(y); !errors.Is(err, ErrYearOutOfRange) {
			t.Errorf("FirstInstantOfYear(%d) error = %v, want ErrYearOutOfRange", y, err)
		}
	}
}

func TestYearOf_RoundTripAtBoundaries(t *testing.T) {
	ranges := [][2]int{
		{-3000, 3000},
		{MinYear, MinYear + 5},
		{MaxYear - 5, MaxYear},
		{-1000000, -999995},
		{999995, 1000000},
	}
	for _, r := range ranges {
		for y := r[0]; y <= r[1]; y++ {
			first := mustFirst(t, y)
			if got := YearOf(first); got != y {
				t.Fatalf("YearOf(FirstInstantOfYear(%d)) = %d", y, got)
			}
			if y > MinYear {
				if got := YearOf(first - 1); got != y-1 {
					t.Fatalf("YearOf(boundary-1) at year %d = %d, want %d", y, got, y-1)
				}
			}
		}
	}
}

func TestYearOf_Epoch(t *testing.T) {
	cases := []struct {
		instant int64
		want    int
	}{
		{0, 1970},
		{-3 * MillisPerDay, 1970},
		{-3*MillisPerDay - 1, 1969},
		{368*MillisPerDay - 1, 1970}, // 1970 is leap: 371 days from -3d
		{368 * MillisPerDay, 1971},
	}
	for _, c := range cases {
		if got := YearOf(c.instant); got != c.want {
			t.Errorf("YearOf(%d) = %d, want %d", c.instant, got, c.want)
		}
	}
}

func TestYearOf_WithinYear(t *testing.T) {
	for _, y := range []int{1970, 2015, 2017, -44, 1234567} {
		first := mustFirst(t, y)
		span := int64(DaysInYear(y)) * MillisPerDay
		for _, off := range []int64{0, 12345, 180 * MillisPerDay, span - 1} {
			if got := YearOf(first + off); got != y {
				t.Errorf("YearOf(first(%d)+%d) = %d, want %d", y, off, got, y)
			}
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	cases := []struct {
		instant int64
		want    int
	}{
		{-3 * MillisPerDay, 1},   // first day of 1970 is a Monday
		{-3*MillisPerDay - 1, 7}, // the millisecond before belongs to a Sunday
		{0, 4},                   // the Gregorian epoch is a Thursday
		{1514764800000, 1},       // 2018-01-01
		{1514764800000 + 6*MillisPerDay, 7},
	}
	for _, c := range cases {
		if got := DayOfWeek(c.instant); got != c.want {
			t.Errorf("DayOfWeek(%d) = %d, want %d", c.instant, got, c.want)
		}
	}
}

func TestDayOfWeek_YearsStartOnMonday(t *testing.T) {
	for y := 1960; y <= 2060; y++ {
		if got := DayOfWeek(mustFirst(t, y)); got != 1 {
			t.Errorf("year %d starts on weekday %d, want Monday", y, got)
		}
	}
}

func TestMillisOfDay(t *testing.T) {
	cases := []struct {
		instant, want int64
	}{
		{0, 0},
		{43_200_000, 43_200_000},
		{MillisPerDay, 0},
		{-1, MillisPerDay - 1},
		{-3*MillisPerDay + 1, 1},
	}
	for _, c := range cases {
		if got := MillisOfDay(c.instant); got != c.want {
			t.Errorf("MillisOfDay(%d) = %d, want %d", c.instant, got, c.want)
		}
	}
}

func TestWeeksInYear(t *testing.T) {
	if got := WeeksInYear(1970); got != 53 {
		t.Errorf("WeeksInYear(1970) = %d, want 53", got)
	}
	if got := WeeksInYear(1971); got != 52 {
		t.Errorf("WeeksInYear(1971) = %d, want 52", got)
	}
}
