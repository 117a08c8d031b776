package model

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used for every persisted date and time-of-day value.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Weekdays lists the lower-case weekday names in time.Weekday order.
var Weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD into midnight of that day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ValidTime reports whether value is a well-formed HH:MM time.
func ValidTime(value string) bool {
	_, err := time.Parse(TimeLayout, value)
	return err == nil && len(value) == len(TimeLayout)
}

// WeekdayName returns the lower-case English weekday of t.
func WeekdayName(t time.Time) string {
	return Weekdays[t.Weekday()]
}

// NormalizeWeekday maps full names and common abbreviations to a weekday name.
func NormalizeWeekday(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", false
	}
	for _, day := range Weekdays {
		if v == day || (len(v) >= 3 && strings.HasPrefix(day, v)) {
			return day, true
		}
	}
	return "", false
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Clock12 formats an HH:MM value as "1:05 PM". Malformed input is returned as is.
func Clock12(value string) string {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
