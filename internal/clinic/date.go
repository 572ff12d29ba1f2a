package clinic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	quadrennial      = 4
	centennial       = 100
	quatercentennial = 400
)

var ErrMalformedDate = errors.New("date must be in M/D/YYYY format")

// Date is a calendar date without a time of day. The zero value is invalid.
type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate reads M/D/YYYY. It does not check calendar validity.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		nums[i] = n
	}
	return Date{Year: nums[2], Month: nums[0], Day: nums[1]}, nil
}

// Today returns the local calendar date.
func Today() Date {
	return FromTime(time.Now())
}

func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

func IsLeapYear(year int) bool {
	if year%quadrennial != 0 {
		return false
	}
	if year%centennial == 0 {
		return year%quatercentennial == 0
	}
	return true
}

// IsValid reports whether the date exists on the calendar.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return false
	}
	if d.Day == 31 {
		switch d.Month {
		case 2, 4, 6, 9, 11:
			return false
		}
	}
	if d.Month == 2 && d.Day == 30 {
		return false
	}
	if d.Month == 2 && d.Day == 29 {
		return IsLeapYear(d.Year)
	}
	return true
}

func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Equal(o Date) bool {
	return d.Compare(o) == 0
}

func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Weekday is only meaningful for valid dates.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddMonths moves the date n calendar months, clamping the day to the end of
// the target month (8/31 + 6 months is 2/28 or 2/29).
func (d Date) AddMonths(n int) Date {
	total := d.Year*12 + (d.Month - 1) + n
	year, month := total/12, total%12+1
	if last := DaysIn(year, month); d.Day > last {
		return Date{Year: year, Month: month, Day: last}
	}
	return Date{Year: year, Month: month, Day: d.Day}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
