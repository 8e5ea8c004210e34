package models

import (
	"class-planner-service/internal/pkg/dto/requests"
	"time"
)

// GenerationLog records one generate attempt for a wizard session.
type GenerationLog struct {
	ID            string                      `json:"id" bson:"_id"`
	SessionID     string                      `json:"session_id" bson:"session_id"`
	RequestID     string                      `json:"request_id" bson:"request_id"`
	Payload       *requests.GenerateSchedules `json:"payload,omitempty" bson:"payload,omitempty"`
	Outcome       string                      `json:"outcome" bson:"outcome"`
	ScheduleCount int                         `json:"schedule_count" bson:"schedule_count"`
	FirstCRNs     []string                    `json:"first_crns,omitempty" bson:"first_crns,omitempty"`
	ErrorKind     string                      `json:"error_kind,omitempty" bson:"error_kind,omitempty"`
	ErrorMessage  string                      `json:"error_message,omitempty" bson:"error_message,omitempty"`
	Duration      time.Duration               `json:"duration" bson:"duration"`
	CreatedAt     time.Time                   `json:"created_at" bson:"created_at"`
}
