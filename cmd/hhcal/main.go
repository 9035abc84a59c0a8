package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/apokalipsys/joda-time-chrono/hhcal"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: hhcal <year>")
		os.Exit(1)
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("parsing year:", err)
		os.Exit(1)
	}

	first, err := hhcal.FirstInstantOfYear(year)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("Year", year)
	fmt.Println("  leapYear =", hhcal.IsLeapYear(year))
	fmt.Println("  days =", hhcal.DaysInYear(year))
	fmt.Println("  weeks =", hhcal.WeeksInYear(year))
	fmt.Println("  firstInstant =", first)
	fmt.Println("  firstDayGregorian =", time.UnixMilli(first).UTC().Format("2006-01-02"))
	fmt.Println()

	for m := 1; m <= hhcal.MaxMonth; m++ {
		days, err := hhcal.DaysInMonth(year, m)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("  month %2d = %d days\n", m, days)
	}
}
