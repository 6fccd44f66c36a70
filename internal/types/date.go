// Package types implements special types for the backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with day precision, always in UTC.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time instant occurs, in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.In(time.UTC).Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both full-date and RFC3339 timestamp strings are accepted,
// everything but the date is discarded.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02"
	if strings.Contains(value, "T") {
		pattern = "2006-01-02T15:04:05Z07:00"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// UnmarshalParam parses the date from a gin URI or form parameter.
// An empty parameter binds to the zero date.
func (d *Date) UnmarshalParam(param string) error {
	if param == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// AddDays adds the specified number of days, which may be negative.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// AddMonths adds the specified number of calendar months, keeping the
// day of the month. When the target month is shorter than the day of d,
// the date is clamped to the last day of the target month, so repeated
// calls on the original date preserve the day:
//
//	2024-01-31 +1 month = 2024-02-29, +2 months = 2024-03-31.
//
// This is not the same as time.Time.AddDate, which normalizes
// 2024-01-31 +1 month to 2024-03-02.
func (d Date) AddMonths(months int) Date {
	year, month, day := time.Time(d).Date()

	// Normalize the target year and month before clamping the day
	total := int(month) - 1 + months
	targetYear := year + total/12
	targetMonth := time.Month(total%12 + 1)
	if total < 0 {
		// Integer division truncates towards zero, correct for that
		if total%12 != 0 {
			targetYear--
			targetMonth = time.Month(total%12 + 13)
		}
	}

	if last := daysIn(targetYear, targetMonth); day > last {
		day = last
	}

	return NewDate(targetYear, targetMonth, day)
}

// daysIn returns the number of days in a month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfWeek returns the Monday of the week the date is in.
func (d Date) StartOfWeek() Date {
	weekday := int(time.Time(d).Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return d.AddDays(1 - weekday)
}

// EndOfWeek returns the Sunday of the week the date is in.
func (d Date) EndOfWeek() Date {
	return d.StartOfWeek().AddDays(6)
}

// StartOfMonth returns the first day of the month the date is in.
func (d Date) StartOfMonth() Date {
	year, month, _ := time.Time(d).Date()
	return NewDate(year, month, 1)
}

// YearMonth returns the date formatted as YYYY-MM.
func (d Date) YearMonth() string {
	return time.Time(d).Format("2006-01")
}

// Min returns the earlier of two dates.
func Min(d, e Date) Date {
	if d.Before(e) {
		return d
	}

	return e
}
