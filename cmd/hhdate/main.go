package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/apokalipsys/joda-time-chrono/chrono"
	"github.com/apokalipsys/joda-time-chrono/hhcal"
)

var (
	millisFlag = flag.Int64("millis", 0, "Instant as milliseconds since 1970-01-01T00:00:00Z")
	dateFlag   = flag.String("date", "", "Gregorian date YYYY-MM-DD, taken at UTC midnight")
	hhFlag     = flag.String("hh", "", "Hanke-Henry date YYYY-MM-DD, resolved to an instant")
)

func main() {
	flag.Parse()

	switch {
	case *hhFlag != "":
		printHankeHenryDate(*hhFlag)
	case *dateFlag != "":
		t, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			fmt.Println("parsing -date:", err)
			os.Exit(1)
		}
		printInstant(t.UnixMilli())
	default:
		printInstant(*millisFlag)
	}
}

func printHankeHenryDate(s string) {
	var year, month, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day); err != nil {
		fmt.Println("parsing -hh:", err)
		os.Exit(1)
	}
	max, err := hhcal.MaxDaysInMonth(month)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if day < 1 || day > max {
		fmt.Printf("day %d out of range for month %d\n", day, month)
		os.Exit(1)
	}
	instant, err := hhcal.YearMonthDayMillis(year, month, day)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("Instant")
	fmt.Println("  millis =", instant)
	fmt.Println("  gregorian =", time.UnixMilli(instant).UTC().Format("2006-01-02"))
}

func printInstant(instant int64) {
	c := chrono.HankeHenryUTC()
	year := c.Year(instant)

	fmt.Println("Hanke-Henry date")
	fmt.Println("  millis =", instant)
	fmt.Println("  year =", year)
	fmt.Println("  leapYear =", c.IsLeapYear(year))
	fmt.Println("  month =", c.Month(instant))
	fmt.Println("  dayOfMonth =", c.Day(instant))
	fmt.Println("  dayOfYear =", c.DayOfYear(instant))
	fmt.Println("  dayOfWeek =", hhcal.DayOfWeek(instant))
}
