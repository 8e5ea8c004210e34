package calendar

import (
	"bytes"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"fmt"
	"html/template"
	"time"
)

var scheduleEmailTemplate = template.Must(template.New("schedule").Parse(`<html><body>
<h2>{{.Name}}</h2>
<table>
<tr><th>Day</th><th>Class</th><th>Time</th><th>Details</th></tr>
{{range .Rows}}<tr><td>{{.Day}}</td><td>{{.Title}}</td><td>{{.Time}}</td><td>{{.Info}}</td></tr>
{{end}}</table>
</body></html>`))

type scheduleEmailRow struct {
	Day   string
	Title string
	Time  string
	Info  string
}

func renderScheduleEmail(view *models.ScheduleView) (string, error) {
	rows := make([]scheduleEmailRow, 0, len(view.Events))
	for _, event := range view.Events {
		start, startErr := time.Parse(constvars.ReferenceTimestampFmt, event.Start)
		end, endErr := time.Parse(constvars.ReferenceTimestampFmt, event.End)
		if startErr != nil || endErr != nil {
			return "", exceptions.ErrCalendarRender(fmt.Errorf("event %q has an invalid time", event.Title))
		}
		rows = append(rows, scheduleEmailRow{
			Day:   start.Weekday().String(),
			Title: event.Title,
			Time:  start.Format(constvars.Clock12Layout) + constvars.ClassInfoTimeRangeSep + end.Format(constvars.Clock12Layout),
			Info:  event.Info,
		})
	}

	var body bytes.Buffer
	err := scheduleEmailTemplate.Execute(&body, struct {
		Name string
		Rows []scheduleEmailRow
	}{Name: view.Name, Rows: rows})
	if err != nil {
		return "", exceptions.ErrCalendarRender(err)
	}
	return body.String(), nil
}
