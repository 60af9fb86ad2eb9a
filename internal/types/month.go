// Package types implements the calendar types used by the financial core.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year. It is always the first day of the
// month at 00:00 UTC.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q is not a YYYY-MM month", ErrInvalidMonth, s)
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Accepts "YYYY-MM" as well as everything Date accepts. Everything except
// the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*m = Month{}
		return nil
	}

	if month, err := ParseMonth(value); err == nil {
		*m = month
		return nil
	}

	d, err := ParseDate(value)
	if err != nil {
		return err
	}

	*m = d.Month()
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value any) error {
	var d Date
	if err := d.Scan(value); err != nil {
		return err
	}

	if d.IsZero() {
		*m = Month{}
		return nil
	}

	*m = d.Month()
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}
	return m.FirstDay().String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the calendar date is in the month.
func (m Month) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return d.Month().Equal(m)
}

// FirstDay returns the first calendar day of the month.
func (m Month) FirstDay() Date {
	t := time.Time(m)
	return NewDate(t.Year(), t.Month(), 1)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	t := time.Time(m)
	return daysIn(t.Year(), t.Month())
}
