package calendar

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// RenderICS writes the schedule as weekly recurring events. The reference week
// is moved onto the first Monday on or after now, and times are floating so
// calendar apps show them in the reader's own zone.
func RenderICS(sessionID string, view *models.ScheduleView, now time.Time) ([]byte, error) {
	referenceMonday, err := time.ParseInLocation(constvars.ReferenceDateLayout, constvars.ReferenceWeekDates[constvars.WeekdayMonday], time.UTC)
	if err != nil {
		return nil, exceptions.ErrCalendarRender(err)
	}
	anchor := upcomingMonday(now)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(constvars.CalendarProductID)
	cal.SetName(view.Name)

	for i, classEvent := range view.Events {
		start, err := time.ParseInLocation(constvars.ReferenceTimestampFmt, classEvent.Start, time.UTC)
		if err != nil {
			return nil, exceptions.ErrCalendarRender(err)
		}
		end, err := time.ParseInLocation(constvars.ReferenceTimestampFmt, classEvent.End, time.UTC)
		if err != nil {
			return nil, exceptions.ErrCalendarRender(err)
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d@class-planner", sessionID, i))
		event.SetDtStampTime(now)
		event.SetProperty(ics.ComponentPropertyDtStart, anchor.Add(start.Sub(referenceMonday)).Format(constvars.FloatingICalTimeFmt))
		event.SetProperty(ics.ComponentPropertyDtEnd, anchor.Add(end.Sub(referenceMonday)).Format(constvars.FloatingICalTimeFmt))
		event.SetSummary(classEvent.Title)
		event.SetDescription(classEvent.Info)
		event.AddRrule("FREQ=WEEKLY")
	}

	return []byte(cal.Serialize()), nil
}

// upcomingMonday is midnight of now's date when it is a Monday, else of the
// following Monday.
func upcomingMonday(now time.Time) time.Time {
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	daysAhead := (int(time.Monday) - int(midnight.Weekday()) + 7) % 7
	return midnight.AddDate(0, 0, daysAhead)
}
