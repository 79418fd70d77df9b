package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DateLayout is the wire format of an observation date
const DateLayout = "2006-01-02"

// Date is a wrapper around gorm.io/datatypes.Date that serializes as YYYY-MM-DD
type Date struct {
	datatypes.Date
}

// NewDate truncates t to its calendar day in UTC
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// Time returns the date as a time.Time at midnight
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// IsZero reports whether the date was never set
func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Value promotes the embedded Date's Value method
func (d Date) Value() (driver.Value, error) {
	return d.Date.Value()
}

// Scan promotes the embedded Date's Scan method
func (d *Date) Scan(value interface{}) error {
	return d.Date.Scan(value)
}

// GormDBDataType keeps the column a plain calendar date on every driver.
func (Date) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql", "postgres", "sqlserver", "mssql":
		return "DATE"
	}
	return "date"
}

// MarshalJSON writes the date as "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" or a full RFC3339 timestamp
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Date: expected string, got %s", string(data))
	}

	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("Date: invalid date %q", s)
	}
	*d = NewDate(t)
	return nil
}
