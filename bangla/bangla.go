// Package bangla formats numbers and Gregorian dates in Bangla script.
package bangla

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMonth is returned for month numbers outside 1..12.
var ErrMonth = errors.New("bangla: month out of range")

var digits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

var months = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// Offset is the fixed UTC offset "today" is computed in.
const Offset = 6 * time.Hour

var zone = time.FixedZone("UTC+6", int(Offset/time.Second))

// Digits replaces ASCII digits with Bangla digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits[r-'0']
		}
		return r
	}, s)
}

// Month returns the Bangla name of month m (1-12).
func Month(m time.Month) (string, error) {
	if m < time.January || m > time.December {
		return "", fmt.Errorf("%w: %d", ErrMonth, m)
	}
	return months[m-1], nil
}

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a yyyy-mm-dd date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("bangla: parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the calendar date at UTC+6 for the instant now, whatever the
// process's local zone is.
func Today(now time.Time) Date {
	return DateOf(now.In(zone))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns d as yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// FormatDate renders d as "{day} {month} {year}" in Bangla, for example
// "১৫ জুলাই ২০২৫". The day is not zero-padded.
func FormatDate(d Date) (string, error) {
	name, err := Month(d.Month)
	if err != nil {
		return "", err
	}
	return Digits(strconv.Itoa(d.Day)) + " " + name + " " + Digits(strconv.Itoa(d.Year)), nil
}

// FormatISO formats a yyyy-mm-dd string. The empty string formats as empty.
func FormatISO(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FormatDate(d)
}
