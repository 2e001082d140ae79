package ledger

import (
	"fmt"
	"time"
)

// DateLayout is the fixed on-disk date format: zero-padded day/month/year.
const DateLayout = "02/01/2006"

// DefaultTimezone is the civil timezone all day boundaries are anchored to.
// Streaks must not move when the process runs in a different locale.
const DefaultTimezone = "Europe/Brussels"

// Date is a civil calendar date. It is a comparable value type so it can be
// used as a map key; all arithmetic goes through time.Date to stay correct
// across month and year boundaries.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a strict DD/MM/YYYY token. Non-zero-padded or otherwise
// malformed tokens are rejected; callers drop the fragment per the ledger's
// best-effort policy.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	d := DateOf(t)
	if d.String() != s {
		return Date{}, fmt.Errorf("parse date %q: not zero-padded", s)
	}
	return d, nil
}

// DateOf truncates a wall-clock instant to its civil date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current civil date in loc. A nil loc falls back to the
// default timezone so "today" never silently becomes UTC or system-local.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = DefaultLocation()
	}
	return DateOf(time.Now().In(loc))
}

// DefaultLocation resolves the default timezone, falling back to UTC only if
// the zone database is missing entirely.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (d Date) String() string {
	return d.time().Format(DateLayout)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Prev returns the previous calendar day.
func (d Date) Prev() Date {
	return DateOf(d.time().AddDate(0, 0, -1))
}

// Next returns the next calendar day.
func (d Date) Next() Date {
	return DateOf(d.time().AddDate(0, 0, 1))
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.time().Before(o.time())
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// YearDay returns the 1-based day of year, used by the daily prompt picker.
func (d Date) YearDay() int {
	return d.time().YearDay()
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
