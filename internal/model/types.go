package model

import (
	"bytes"
	"strconv"
	"time"
)

// ─── Date ────────────────────────────────────────────────────────────────────

// DateLayout is the wire format for calendar dates across the snapshot and API.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component. Field data originates in
// HTML date inputs and hand-migrated backups, so unmarshalling accepts a bare
// YYYY-MM-DD string, a full RFC 3339 timestamp (truncated to the day), or an
// empty string (zero Date).
type Date struct {
	time.Time
}

// NewDate builds a Date from year/month/day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysSince returns the whole days elapsed from start to d (negative when d
// precedes start).
func (d Date) DaysSince(start Date) int {
	return int(d.Time.Sub(start.Time) / (24 * time.Hour))
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		// Not a string — tolerate JSON null
		if bytes.Equal(data, []byte("null")) {
			*d = Date{}
			return nil
		}
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses a YYYY-MM-DD string or an RFC 3339 timestamp, normalizing
// to the calendar day. An empty string parses to the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// ─── Quantity / Count ────────────────────────────────────────────────────────
// Numeric log fields arrive as strings from form inputs ("1500", "") in old
// backups and as plain numbers from the API. Both types normalize at the JSON
// boundary so the aggregation code only ever sees numbers, with empty/missing
// treated as zero.

// Quantity is a non-negative measure (kilograms, grams, degrees).
type Quantity float64

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(q), 'f', -1, 64)), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	f, err := flexFloat(data)
	if err != nil {
		return err
	}
	*q = Quantity(f)
	return nil
}

// Count is a whole-number tally (birds placed, birds dead).
type Count int

func (c Count) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

func (c *Count) UnmarshalJSON(data []byte) error {
	f, err := flexFloat(data)
	if err != nil {
		return err
	}
	*c = Count(f)
	return nil
}

func flexFloat(data []byte) (float64, error) {
	if bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
