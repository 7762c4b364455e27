package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

// TimeString represents a time of day in "HH:MM" format.
// It is used for slot boundaries and booking start times, where only the
// wall-clock position within a day matters and date/zone must not leak in.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses a "HH:MM" string into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return NewTimeString(t), nil
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero returns true if the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// Minutes returns the number of minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of
// minutes. Returns an error if the result crosses midnight - slots never wrap
// to the next day.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	total := current + minutes
	if total > 24*60 {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", ts, minutes)
	}
	if total == 24*60 {
		// 24:00 не является валидным значением для time.Parse,
		// поэтому полночь конца дня представляем как "24:00" вручную
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Comparison is lexicographic, which is correct for zero-padded "HH:MM".
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// MarshalJSON implements json.Marshaler.
func (ts TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(ts))
}

// UnmarshalJSON implements json.Unmarshaler with format validation.
func (ts *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Value implements driver.Valuer for writing to Postgres TIME columns.
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return string(ts), nil
}

// Scan implements sql.Scanner for reading Postgres TIME columns.
// Postgres returns TIME values as "HH:MM:SS"; seconds are dropped.
func (ts *TimeString) Scan(value interface{}) error {
	if value == nil {
		*ts = ""
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

func (ts *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
