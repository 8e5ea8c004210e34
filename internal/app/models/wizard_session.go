package models

import (
	"class-planner-service/internal/pkg/constvars"
	"time"
)

type Course struct {
	Subject      string `json:"subject"`
	CourseNumber string `json:"courseNumber"`
}

// IsComplete reports whether both fields are filled in.
func (c Course) IsComplete() bool {
	return c.Subject != "" && c.CourseNumber != ""
}

type BreakPeriod struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (b BreakPeriod) IsComplete() bool {
	return b.StartTime != "" && b.EndTime != ""
}

type Preferences struct {
	Days       []string `json:"days"`
	TimeOfDay  string   `json:"time_of_day"`
	DayWeight  float64  `json:"day_weight"`
	TimeWeight float64  `json:"time_weight"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Days:       append([]string{}, constvars.CollectorWeekdays...),
		TimeOfDay:  constvars.DefaultTimeOfDay,
		DayWeight:  constvars.DefaultDayWeight,
		TimeWeight: constvars.DefaultTimeWeight,
	}
}

// ClassEvent is one class meeting placed on the reference week.
type ClassEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Info  string `json:"info"`
}

// ScheduleView is one parsed candidate schedule. Details maps an event title
// to the text shown in the detail overlay.
type ScheduleView struct {
	Name    string            `json:"name"`
	Events  []ClassEvent      `json:"events"`
	Details map[string]string `json:"details"`
}

type WizardSession struct {
	ID              string         `json:"id"`
	Step            int            `json:"step"`
	InFlight        bool           `json:"in_flight"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	Courses         []Course       `json:"courses"`
	Breaks          []BreakPeriod  `json:"breaks"`
	Preferences     Preferences    `json:"preferences"`
	Schedules       []ScheduleView `json:"schedules"`
	ActiveSchedule  int            `json:"active_schedule"`
	SelectedEvent   *ClassEvent    `json:"selected_event,omitempty"`
	GenerationCount int            `json:"generation_count"`
	TimeModel
}

// NewWizardSession starts on the courses step with one blank course and one
// blank break.
func NewWizardSession(id string, now time.Time) *WizardSession {
	session := &WizardSession{
		ID:          id,
		Step:        constvars.WizardStepCourses,
		Courses:     []Course{{}},
		Breaks:      []BreakPeriod{{}},
		Preferences: DefaultPreferences(),
		Schedules:   []ScheduleView{},
	}
	session.SetCreatedAtUpdatedAt(now)
	return session
}

// Next advances through the collector steps. The results step is only entered
// through CompleteGeneration.
func (s *WizardSession) Next() {
	if s.Step < constvars.WizardStepPreferences {
		s.Step++
	}
}

// Previous steps back; from the results step it returns to preferences and
// keeps the last results until the next generation replaces them.
func (s *WizardSession) Previous() {
	if s.Step > constvars.WizardStepCourses {
		s.Step--
	}
}

func (s *WizardSession) CanGenerate() bool {
	return s.Step == constvars.WizardStepPreferences && !s.InFlight
}

func (s *WizardSession) BeginGeneration() {
	s.InFlight = true
	s.ErrorMessage = ""
}

// FailGeneration records a rejected or failed attempt. The step and any earlier
// results are kept.
func (s *WizardSession) FailGeneration(message string) {
	s.InFlight = false
	s.ErrorMessage = message
}

func (s *WizardSession) CompleteGeneration(schedules []ScheduleView) {
	s.InFlight = false
	s.ErrorMessage = ""
	s.Schedules = schedules
	s.ActiveSchedule = 0
	s.SelectedEvent = nil
	s.GenerationCount++
	s.Step = constvars.WizardStepResults
}

// ActiveView returns the schedule currently shown on the calendar.
func (s *WizardSession) ActiveView() (*ScheduleView, bool) {
	if s.ActiveSchedule < 0 || s.ActiveSchedule >= len(s.Schedules) {
		return nil, false
	}
	return &s.Schedules[s.ActiveSchedule], true
}
