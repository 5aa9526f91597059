// Package dateutil provides calendar arithmetic for the journal.
//
// The journal keys entries by calendar day, so the conversion between epoch
// milliseconds and dates has to be exact and the textual form has to sort
// chronologically. Everything here is pure arithmetic on an already
// localized millisecond value; nothing reads the system clock or a zone
// database.
package dateutil

import (
	"fmt"
	"time"
)

const (
	msPerDay  = 24 * 60 * 60 * 1000
	epochYear = 1970
)

// Date is a proleptic Gregorian calendar day.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// FromEpochMS converts an already-localized epoch-millisecond value to the
// calendar day it falls on. Sub-day precision is discarded. Values before
// the epoch clamp to 1970-01-01.
func FromEpochMS(ms int64) Date {
	if ms < 0 {
		ms = 0
	}
	days := int(ms / msPerDay)

	year := epochYear
	for {
		n := 365
		if isLeap(year) {
			n = 366
		}
		if days < n {
			break
		}
		days -= n
		year++
	}

	month := 1
	for days >= daysInMonth(year, month) {
		days -= daysInMonth(year, month)
		month++
	}
	return Date{Year: year, Month: month, Day: days + 1}
}

// EpochMS returns the epoch-millisecond value of the date's midnight.
func (d Date) EpochMS() int64 {
	return int64(d.daysSinceEpoch()) * msPerDay
}

// Weekday returns the day of the week. 1970-01-01 was a Thursday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((d.daysSinceEpoch() + 4) % 7)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	if d.Day < daysInMonth(d.Year, d.Month) {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	}
	if d.Month < 12 {
		return Date{Year: d.Year, Month: d.Month + 1, Day: 1}
	}
	return Date{Year: d.Year + 1, Month: 1, Day: 1}
}

// Prev returns the preceding calendar day. The epoch date 1970-01-01 is the
// floor and returns itself.
func (d Date) Prev() Date {
	if d == (Date{Year: epochYear, Month: 1, Day: 1}) {
		return d
	}
	if d.Day > 1 {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day - 1}
	}
	if d.Month > 1 {
		return Date{Year: d.Year, Month: d.Month - 1, Day: daysInMonth(d.Year, d.Month-1)}
	}
	return Date{Year: d.Year - 1, Month: 12, Day: 31}
}

// String returns the canonical zero-padded YYYY-MM-DD key. Lexicographic
// order of these keys equals chronological order; the store relies on that
// to list journal entries without re-parsing.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Parse reads a YYYY-MM-DD key back into a Date. The day must exist on the
// calendar; "2023-02-29" is an error.
func Parse(s string) (Date, error) {
	var d Date
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("dateutil: malformed date %q", s)
	}
	if _, err := fmt.Sscanf(s, "%04d-%02d-%02d", &d.Year, &d.Month, &d.Day); err != nil {
		return Date{}, fmt.Errorf("dateutil: malformed date %q: %w", s, err)
	}
	if d.Year < epochYear || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > daysInMonth(d.Year, d.Month) {
		return Date{}, fmt.Errorf("dateutil: no such day %q", s)
	}
	return d, nil
}

func (d Date) daysSinceEpoch() int {
	days := 0
	for y := epochYear; y < d.Year; y++ {
		if isLeap(y) {
			days += 366
		} else {
			days += 365
		}
	}
	for m := 1; m < d.Month; m++ {
		days += daysInMonth(d.Year, m)
	}
	return days + d.Day - 1
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeap(year) {
			return 29
		}
		return 28
	}
}

func isLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
