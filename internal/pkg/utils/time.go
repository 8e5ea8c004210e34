package utils

import (
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"fmt"
	"strings"
	"time"
)

// To24Hour converts a "h:mm AM/PM" clock time into "HH:MM:00".
func To24Hour(clock string) (string, error) {
	parsed, err := parseClock12(clock)
	if err != nil {
		return "", err
	}
	return parsed.Format(constvars.Clock24Layout), nil
}

// ToReferenceTimestamp places a weekday letter and clock time on the reference
// week and returns an ISO-8601 local timestamp such as "2100-01-04T09:00:00".
func ToReferenceTimestamp(day, clock string) (string, error) {
	date, err := referenceDate(day)
	if err != nil {
		return "", err
	}
	clock24, err := To24Hour(clock)
	if err != nil {
		return "", err
	}
	return date + "T" + clock24, nil
}

// ReferenceTime is ToReferenceTimestamp as a time.Time in UTC.
func ReferenceTime(day, clock string) (time.Time, error) {
	timestamp, err := ToReferenceTimestamp(day, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(constvars.ReferenceTimestampFmt, timestamp, time.UTC)
}

func IsCollectorWeekday(day string) bool {
	for _, weekday := range constvars.CollectorWeekdays {
		if day == weekday {
			return true
		}
	}
	return false
}

// SortWeekdays returns the distinct known days of days in M,T,W,R,F order.
func SortWeekdays(days []string) []string {
	present := make(map[string]bool, len(days))
	for _, day := range days {
		present[day] = true
	}

	sorted := make([]string, 0, len(present))
	for _, weekday := range constvars.CollectorWeekdays {
		if present[weekday] {
			sorted = append(sorted, weekday)
		}
	}
	return sorted
}

func referenceDate(day string) (string, error) {
	date, ok := constvars.ReferenceWeekDates[strings.ToUpper(strings.TrimSpace(day))]
	if !ok {
		return "", exceptions.ErrInvalidWeekday(fmt.Errorf("unknown weekday %q", day))
	}
	return date, nil
}

func parseClock12(clock string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(clock))
	parsed, err := time.Parse(constvars.Clock12Layout, normalized)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidClockTime(err)
	}
	return parsed, nil
}
