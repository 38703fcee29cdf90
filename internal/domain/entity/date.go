package entity

import (
	"time"
)

const dateLayout = "20060102"

// Date is a calendar date with day granularity. It wraps a UTC-midnight
// time.Time so comparisons use real calendar ordering rather than string
// comparison of formatted dates.
type Date struct {
	t time.Time
}

// NewDate creates a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYYMMDD token. It rejects tokens that are not exactly
// 8 digits or do not name a real calendar date (e.g. 20240230).
func ParseDate(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, ErrInvalidDate
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Date{}, ErrInvalidDate
		}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t.UTC()}, nil
}

// MustParseDate is ParseDate for fixtures and tests; it panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic("entity: bad date literal " + s)
	}
	return d
}

// String formats the date back to YYYYMMDD.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// InMonth reports whether the date falls within the given year and month.
func (d Date) InMonth(year int, month time.Month) bool {
	return d.t.Year() == year && d.t.Month() == month
}

// FirstOfMonth returns the first calendar day of the given month.
func FirstOfMonth(year int, month time.Month) Date {
	return NewDate(year, month, 1)
}

// LastOfMonth returns the last calendar day of the given month, honoring
// month lengths and leap years.
func LastOfMonth(year int, month time.Month) Date {
	return Date{t: time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)}
}
