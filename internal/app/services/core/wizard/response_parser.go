package wizard

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/responses"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"
)

// ParseSchedules converts the returned schedules into calendar events. Only the
// first schedule must be readable; an unreadable alternative is left out and
// its error returned in dropped.
func ParseSchedules(response *responses.GenerateSchedules) (views []models.ScheduleView, dropped []error, err error) {
	first, err := ParseFirstSchedule(response)
	if err != nil {
		return nil, nil, err
	}

	views = make([]models.ScheduleView, 0, len(response.Schedules))
	views = append(views, *first)
	for i := 1; i < len(response.Schedules); i++ {
		view, err := parseSchedule(i, response.Schedules[i])
		if err != nil {
			dropped = append(dropped, err)
			continue
		}
		views = append(views, view)
	}
	return views, dropped, nil
}

// ParseFirstSchedule converts only the first returned schedule.
func ParseFirstSchedule(response *responses.GenerateSchedules) (*models.ScheduleView, error) {
	if response == nil || len(response.Schedules) == 0 {
		return nil, exceptions.ErrScheduleProtocol(errors.New("response has no schedules"))
	}
	view, err := parseSchedule(0, response.Schedules[0])
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// parseSchedule walks the day keys in calendar order. Keys that are not
// weekday letters, such as "Online/ARR", have no slot on the grid.
func parseSchedule(index int, schedule responses.ScheduleResult) (models.ScheduleView, error) {
	view := models.ScheduleView{
		Name:    schedule.Name,
		Events:  []models.ClassEvent{},
		Details: map[string]string{},
	}
	if view.Name == "" {
		view.Name = fmt.Sprintf(constvars.DefaultScheduleNameFmt, index+1)
	}

	for _, day := range constvars.CalendarWeekdays {
		for _, classInfo := range schedule.Days[day] {
			event, err := parseClassInfo(day, classInfo, schedule.CRNs)
			if err != nil {
				return view, exceptions.ErrScheduleProtocol(fmt.Errorf("schedule %d, day %s: %w", index, day, err))
			}
			view.Events = append(view.Events, event)
			view.Details[event.Title] = event.Info
		}
	}
	return view, nil
}

// parseClassInfo reads one "Title: h:mm AM - h:mm PM" entry.
func parseClassInfo(day, classInfo string, crns map[string]responses.CRN) (models.ClassEvent, error) {
	title, timeRange, found := strings.Cut(classInfo, constvars.ClassInfoTitleSep)
	if !found || title == "" {
		return models.ClassEvent{}, fmt.Errorf("class info %q has no title", classInfo)
	}
	startClock, endClock, found := strings.Cut(timeRange, constvars.ClassInfoTimeRangeSep)
	if !found {
		return models.ClassEvent{}, fmt.Errorf("class info %q has no time range", classInfo)
	}

	start, err := utils.ReferenceTime(day, startClock)
	if err != nil {
		return models.ClassEvent{}, fmt.Errorf("class info %q start: %w", classInfo, err)
	}
	end, err := utils.ReferenceTime(day, endClock)
	if err != nil {
		return models.ClassEvent{}, fmt.Errorf("class info %q end: %w", classInfo, err)
	}
	if !end.After(start) {
		return models.ClassEvent{}, fmt.Errorf("class info %q ends before it starts", classInfo)
	}

	crn, found := crns[title]
	if !found {
		return models.ClassEvent{}, fmt.Errorf("no crn for %q", title)
	}

	return models.ClassEvent{
		Title: title,
		Start: start.Format(constvars.ReferenceTimestampFmt),
		End:   end.Format(constvars.ReferenceTimestampFmt),
		Info:  fmt.Sprintf(constvars.EventInfoFormat, string(crn)),
	}, nil
}
