package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date. It is always stored at 00:00 UTC, the zero
// value means that no date is set.
type Date time.Time

// NewDate returns a new Date. Out of range values are normalized the same
// way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}

	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses "YYYY-MM-DD" or an ISO-8601 timestamp. Only the date
// part is used, any time component is ignored.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(dateLayout) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	if rest := s[len(dateLayout):]; rest != "" && rest[0] != 'T' && rest[0] != ' ' {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	t, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on malformed input. It is meant
// for literals in tests and fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date formatted as YYYY-MM-DD, or an empty string for
// the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(dateLayout)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Malformed dates decode to the zero Date instead of failing, so that a
// single broken record does not prevent a whole snapshot from loading.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)

	parsed, err := ParseDate(value)
	if err != nil {
		*d = Date{}
		return nil
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case string:
		*d, _ = ParseDate(v)
	case []byte:
		*d, _ = ParseDate(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDate, value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is unset.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Time returns the date as a time.Time at 00:00 UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Month returns the month the date is in.
func (d Date) Month() Month {
	t := time.Time(d)
	return NewMonth(t.Year(), t.Month())
}

// Weekday returns the day of the week of the date.
func (d Date) Weekday() time.Weekday {
	return time.Time(d).Weekday()
}

// IsWeekend reports whether the date is a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same calendar date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after e.
func (d Date) Compare(e Date) int {
	return time.Time(d).Compare(time.Time(e))
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// InMonth returns the given day of the month that lies n months after the
// month of d. Days past the end of that month are clamped to its last day,
// so day 31 in February yields the 28th or 29th.
func (d Date) InMonth(n, day int) Date {
	first := d.Month().AddDate(0, n)
	t := time.Time(first)

	if last := daysIn(t.Year(), t.Month()); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}

	return NewDate(t.Year(), t.Month(), day)
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
