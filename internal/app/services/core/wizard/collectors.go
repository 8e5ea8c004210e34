package wizard

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"fmt"
	"strings"
)

// Collector edits never touch the slice or record they are given; each one
// returns a replacement for the caller to store.

func AddCourse(courses []models.Course) []models.Course {
	return appendEntry(courses)
}

// RemoveCourse deletes the course at index. The first course is never removed.
func RemoveCourse(courses []models.Course, index int) ([]models.Course, error) {
	return removeEntry(courses, index)
}

// UpdateCourse upper-cases the value. A new subject clears the course number.
func UpdateCourse(courses []models.Course, index int, field, value string) ([]models.Course, error) {
	if err := checkIndex(index, len(courses)); err != nil {
		return nil, err
	}

	value = strings.ToUpper(strings.TrimSpace(value))
	updated := copyEntries(courses)
	switch field {
	case constvars.CourseFieldSubject:
		if updated[index].Subject != value {
			updated[index].CourseNumber = ""
		}
		updated[index].Subject = value
	case constvars.CourseFieldCourseNumber:
		updated[index].CourseNumber = value
	default:
		return nil, exceptions.ErrUnknownField(fmt.Errorf("course field %q", field))
	}
	return updated, nil
}

func AddBreak(breaks []models.BreakPeriod) []models.BreakPeriod {
	return appendEntry(breaks)
}

func RemoveBreak(breaks []models.BreakPeriod, index int) ([]models.BreakPeriod, error) {
	return removeEntry(breaks, index)
}

// UpdateBreak accepts a blank value or a "h:mm AM/PM" clock time.
func UpdateBreak(breaks []models.BreakPeriod, index int, field, value string) ([]models.BreakPeriod, error) {
	if err := checkIndex(index, len(breaks)); err != nil {
		return nil, err
	}

	value = strings.TrimSpace(value)
	if value != "" {
		if _, err := utils.To24Hour(value); err != nil {
			return nil, err
		}
	}

	updated := copyEntries(breaks)
	switch field {
	case constvars.BreakFieldStartTime:
		updated[index].StartTime = value
	case constvars.BreakFieldEndTime:
		updated[index].EndTime = value
	default:
		return nil, exceptions.ErrUnknownField(fmt.Errorf("break field %q", field))
	}
	return updated, nil
}

// ToggleDay adds or removes one weekday, keeping days in M,T,W,R,F order.
func ToggleDay(preferences models.Preferences, day string) (models.Preferences, error) {
	day = strings.ToUpper(strings.TrimSpace(day))
	if !utils.IsCollectorWeekday(day) {
		return preferences, exceptions.ErrInvalidWeekday(fmt.Errorf("unknown weekday %q", day))
	}

	days := make([]string, 0, len(preferences.Days)+1)
	found := false
	for _, existing := range preferences.Days {
		if existing == day {
			found = true
			continue
		}
		days = append(days, existing)
	}
	if !found {
		days = append(days, day)
	}

	updated := preferences
	updated.Days = utils.SortWeekdays(days)
	return updated, nil
}

func SetTimeOfDay(preferences models.Preferences, timeOfDay string) (models.Preferences, error) {
	timeOfDay = strings.ToLower(strings.TrimSpace(timeOfDay))
	switch timeOfDay {
	case constvars.TimeOfDayMorning, constvars.TimeOfDayAfternoon, constvars.TimeOfDayEvening:
	default:
		return preferences, exceptions.ErrInputValidation(fmt.Errorf("unknown time of day %q", timeOfDay))
	}

	updated := copyPreferences(preferences)
	updated.TimeOfDay = timeOfDay
	return updated, nil
}

func SetDayWeight(preferences models.Preferences, weight float64) (models.Preferences, error) {
	if !weightInRange(weight) {
		return preferences, exceptions.ErrWeightOutOfRange(fmt.Errorf("day_weight %v", weight))
	}
	updated := copyPreferences(preferences)
	updated.DayWeight = weight
	return updated, nil
}

func SetTimeWeight(preferences models.Preferences, weight float64) (models.Preferences, error) {
	if !weightInRange(weight) {
		return preferences, exceptions.ErrWeightOutOfRange(fmt.Errorf("time_weight %v", weight))
	}
	updated := copyPreferences(preferences)
	updated.TimeWeight = weight
	return updated, nil
}

func weightInRange(weight float64) bool {
	return weight >= 0 && weight <= 1
}

func appendEntry[T any](entries []T) []T {
	if len(entries) >= constvars.MaxCollectorEntries {
		return entries
	}
	var blank T
	return append(copyEntries(entries), blank)
}

func removeEntry[T any](entries []T, index int) ([]T, error) {
	if err := checkIndex(index, len(entries)); err != nil {
		return nil, err
	}
	if index == 0 {
		return entries, nil
	}

	updated := make([]T, 0, len(entries)-1)
	updated = append(updated, entries[:index]...)
	return append(updated, entries[index+1:]...), nil
}

func copyEntries[T any](entries []T) []T {
	return append(make([]T, 0, len(entries)+1), entries...)
}

func copyPreferences(preferences models.Preferences) models.Preferences {
	updated := preferences
	updated.Days = append([]string{}, preferences.Days...)
	return updated
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return exceptions.ErrIndexOutOfRange(fmt.Errorf("index %d, length %d", index, length))
	}
	return nil
}
