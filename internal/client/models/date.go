package models

import (
	"fmt"
	"time"
)

// DateFormat is the text representation of Date values, both in the store
// and in user input.
const DateFormat = "2006-01-02"

// Date is a calendar date with day granularity. The zero value represents
// "no date" and marshals as an empty string.
type Date struct {
	t time.Time
}

// NewDate returns a Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a Date from its "2006-01-02" text form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DateFormat, err)
	}
	return Date{t: t}, nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.t.Before(x.t) }

// String formats the date in its standard format, or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateFormat)
}

// MarshalJSON encodes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "2006-01-02" string. An empty string yields the
// zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date literal %q", string(data))
	}
	s := string(data[1 : len(data)-1])
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
