package responses

import (
	"class-planner-service/internal/app/models"
	"time"
)

type CreateSession struct {
	Token   string                `json:"token"`
	Session *models.WizardSession `json:"session"`
}

type Calendar struct {
	ActiveSchedule int                 `json:"active_schedule"`
	Schedules      []ScheduleSummary   `json:"schedules"`
	Events         []models.ClassEvent `json:"events"`
	SelectedEvent  *models.ClassEvent  `json:"selected_event"`
}

type ScheduleSummary struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	EventCount int    `json:"event_count"`
}

type CalendarExport struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
