package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Mode tells the parser which kind of value to extract.
// The zero Mode is not a valid parse mode.
type Mode uint8

const (
	ModeDate Mode = iota + 1
	ModeTime
	ModeDateTime
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	dateTimeLayout = dateLayout + " " + timeLayout
)

// Pure times are anchored to this date so only the time of day affects ordering.
var placeholderYear, placeholderMonth, placeholderDay = 2000, time.January, 1

func (m Mode) String() string {
	switch m {
	case ModeDate:
		return "date"
	case ModeTime:
		return "time"
	case ModeDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of ModeDate, ModeTime or ModeDateTime.
func (m Mode) Valid() bool {
	return m >= ModeDate && m <= ModeDateTime
}

// ParseMode converts a mode name ("date", "time", "datetime", "date_time" or
// "date-time") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return ModeDate, nil
	case "time":
		return ModeTime, nil
	case "datetime", "date_time", "date-time":
		return ModeDateTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Value is a calendar-valid date, time of day, or both.
// Values of the same mode are totally ordered.
type Value struct {
	mode Mode
	t    time.Time
}

// Date returns the date value for the given components, or ErrInvalidDate if
// they do not form a real calendar date.
func Date(year, month, day int) (Value, error) {
	if !validDate(year, month, day) {
		return Value{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Value{mode: ModeDate, t: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}, nil
}

// Clock returns the time-of-day value for the given components.
func Clock(hour, minute, second int) (Value, error) {
	if !validClock(hour, minute, second) {
		return Value{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, hour, minute, second)
	}
	return Value{
		mode: ModeTime,
		t:    time.Date(placeholderYear, placeholderMonth, placeholderDay, hour, minute, second, 0, time.UTC),
	}, nil
}

// DateTime returns the combined value for the given components.
func DateTime(year, month, day, hour, minute, second int) (Value, error) {
	if !validDate(year, month, day) || !validClock(hour, minute, second) {
		return Value{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d",
			ErrInvalidDateTime, year, month, day, hour, minute, second)
	}
	return Value{
		mode: ModeDateTime,
		t:    time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC),
	}, nil
}

// FromTime projects t onto mode using t's own wall clock. Sub-second precision is dropped.
func FromTime(t time.Time, mode Mode) Value {
	switch mode {
	case ModeDate:
		return Value{mode: mode, t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
	case ModeTime:
		return Value{mode: mode, t: time.Date(placeholderYear, placeholderMonth, placeholderDay,
			t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
	default:
		return Value{mode: ModeDateTime, t: time.Date(t.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
	}
}

func (v Value) Mode() Mode { return v.mode }

// Time returns the value as a UTC time.Time. Pure times sit on 2000-01-01.
func (v Value) Time() time.Time { return v.t }

func (v Value) Year() int   { return v.t.Year() }
func (v Value) Month() int  { return int(v.t.Month()) }
func (v Value) Day() int    { return v.t.Day() }
func (v Value) Hour() int   { return v.t.Hour() }
func (v Value) Minute() int { return v.t.Minute() }
func (v Value) Second() int { return v.t.Second() }

// IsZero reports whether v was never produced by a successful parse.
func (v Value) IsZero() bool { return v.mode == 0 }

// In re-projects v onto another mode, e.g. the date part of a date-time.
func (v Value) In(mode Mode) Value {
	if v.mode == mode {
		return v
	}
	return FromTime(v.t, mode)
}

// Compare returns -1, 0 or +1 depending on whether v is before, equal to or after o.
func (v Value) Compare(o Value) int { return v.t.Compare(o.t) }

func (v Value) Before(o Value) bool { return v.Compare(o) < 0 }
func (v Value) After(o Value) bool  { return v.Compare(o) > 0 }
func (v Value) Equal(o Value) bool  { return v.mode == o.mode && v.t.Equal(o.t) }

// String returns the canonical form: 2006-01-02, 15:04:05 or 2006-01-02 15:04:05.
// Parsing the canonical form with the same mode yields an equal Value.
func (v Value) String() string {
	switch v.mode {
	case ModeDate:
		return v.t.Format(dateLayout)
	case ModeTime:
		return v.t.Format(timeLayout)
	case ModeDateTime:
		return v.t.Format(dateTimeLayout)
	default:
		return ""
	}
}

// MarshalText renders the canonical form so values serialize cleanly to JSON and YAML.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func validDate(year, month, day int) bool {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysIn(year, time.Month(month))
}

func validClock(hour, minute, second int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 && second >= 0 && second <= 59
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
