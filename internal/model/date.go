package model

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day without a time of day or zone.
type Date struct {
	Month int
	Day   int
	Year  int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{Month: int(t.Month()), Day: t.Day(), Year: t.Year()}
}

// ParseDate parses "MM/DD/YYYY". Only the shape is checked here;
// calendar validity is IsValid's job.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q: expected MM/DD/YYYY", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("date %q: %w", s, err)
		}
		nums[i] = n
	}
	return Date{Month: nums[0], Day: nums[1], Year: nums[2]}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

// IsValid reports whether the day exists in the Gregorian calendar.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= DaysIn(d.Month, d.Year)
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// DaysIn returns the number of days in month of year, or 0 for an unknown month.
func DaysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}

// IsInTheFuture reports whether d falls strictly after the local day of now.
// Invalid dates are never in the future.
func (d Date) IsInTheFuture(now time.Time) bool {
	if !d.IsValid() {
		return false
	}
	return Compare(d, DateOf(now)) > 0
}

// IsWithinMonthsOf reports whether d is in the future and no later than
// the same day `months` calendar months after now.
func (d Date) IsWithinMonthsOf(now time.Time, months int) bool {
	if !d.IsInTheFuture(now) {
		return false
	}
	return Compare(d, AddMonths(DateOf(now), months)) <= 0
}

func (d Date) IsWithinSixMonthsOf(now time.Time) bool {
	return d.IsWithinMonthsOf(now, 6)
}

// AddMonths moves d forward by n calendar months, clamping the day to the
// length of the target month (8/31 + 6 months is the last day of February).
func AddMonths(d Date, n int) Date {
	idx := d.Year*12 + (d.Month - 1) + n
	out := Date{Year: idx / 12, Month: idx%12 + 1, Day: d.Day}
	if last := DaysIn(out.Month, out.Year); out.Day > last {
		out.Day = last
	}
	return out
}

// Compare orders dates by (year, month, day).
func Compare(a, b Date) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

func (d Date) Equal(o Date) bool {
	return Compare(d, o) == 0
}

// At returns the wall-clock instant hour:minute on d in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, loc)
}
