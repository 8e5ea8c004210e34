package wizard

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"fmt"
)

// ValidateWeights requires each weight in [0,1] and a sum of exactly 1.0.
func ValidateWeights(preferences models.Preferences) error {
	if !weightInRange(preferences.DayWeight) || !weightInRange(preferences.TimeWeight) {
		return exceptions.ErrWeightOutOfRange(fmt.Errorf("day_weight %v, time_weight %v", preferences.DayWeight, preferences.TimeWeight))
	}
	sum := preferences.DayWeight + preferences.TimeWeight
	if sum != 1.0 {
		return exceptions.ErrWeightsMustSumToOne(fmt.Errorf("day_weight %v + time_weight %v = %v", preferences.DayWeight, preferences.TimeWeight, sum))
	}
	return nil
}

// BuildPayload turns the collector state into the generator request body.
// Incomplete courses and breaks are left out.
func BuildPayload(courses []models.Course, breaks []models.BreakPeriod, preferences models.Preferences) (*requests.GenerateSchedules, error) {
	err := ValidateWeights(preferences)
	if err != nil {
		return nil, err
	}

	payload := &requests.GenerateSchedules{
		Courses:       []string{},
		Breaks:        []requests.BreakWindow{},
		PreferredDays: utils.SortWeekdays(preferences.Days),
		PreferredTime: preferences.TimeOfDay,
		DayWeight:     preferences.DayWeight,
		TimeWeight:    preferences.TimeWeight,
	}
	if payload.PreferredTime == "" {
		payload.PreferredTime = constvars.DefaultTimeOfDay
	}

	for _, course := range courses {
		if !course.IsComplete() {
			continue
		}
		payload.Courses = append(payload.Courses, fmt.Sprintf(constvars.CourseCodeFormat, course.Subject, course.CourseNumber))
	}
	if len(payload.Courses) == 0 {
		return nil, exceptions.ErrCourseRequired(nil)
	}

	for _, period := range breaks {
		if !period.IsComplete() {
			continue
		}
		beginTime, err := utils.To24Hour(period.StartTime)
		if err != nil {
			return nil, err
		}
		endTime, err := utils.To24Hour(period.EndTime)
		if err != nil {
			return nil, err
		}
		payload.Breaks = append(payload.Breaks, requests.BreakWindow{
			BeginTime: beginTime,
			EndTime:   endTime,
		})
	}

	return payload, nil
}
