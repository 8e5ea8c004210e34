package contracts

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"context"
)

type WizardUsecase interface {
	CreateSession(ctx context.Context) (*responses.CreateSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Next(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Previous(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Generate(ctx context.Context, sessionID string) (*models.WizardSession, error)
	AddCourse(ctx context.Context, sessionID string) (*models.WizardSession, error)
	UpdateCourse(ctx context.Context, sessionID string, index int, request *requests.UpdateCourse) (*models.WizardSession, error)
	RemoveCourse(ctx context.Context, sessionID string, index int) (*models.WizardSession, error)
	AddBreak(ctx context.Context, sessionID string) (*models.WizardSession, error)
	UpdateBreak(ctx context.Context, sessionID string, index int, request *requests.UpdateBreak) (*models.WizardSession, error)
	RemoveBreak(ctx context.Context, sessionID string, index int) (*models.WizardSession, error)
	ToggleDay(ctx context.Context, sessionID, day string) (*models.WizardSession, error)
	SetTimeOfDay(ctx context.Context, sessionID string, request *requests.SetTimeOfDay) (*models.WizardSession, error)
	SetWeights(ctx context.Context, sessionID string, request *requests.SetWeights) (*models.WizardSession, error)
}

type CalendarUsecase interface {
	GetCalendar(ctx context.Context, sessionID string) (*responses.Calendar, error)
	ActivateSchedule(ctx context.Context, sessionID string, index int) (*responses.Calendar, error)
	SelectEvent(ctx context.Context, sessionID string, index int) (*responses.Calendar, error)
	DismissSelection(ctx context.Context, sessionID string) (*responses.Calendar, error)
	Export(ctx context.Context, sessionID string) (*responses.CalendarExport, error)
	Email(ctx context.Context, sessionID string, request *requests.EmailSchedule) error
}

type GenerationLogUsecase interface {
	FindBySessionID(ctx context.Context, sessionID string, query *requests.GenerationLogQuery) ([]models.GenerationLog, *responses.Pagination, error)
}

type GenerationLogRepository interface {
	Insert(ctx context.Context, log *models.GenerationLog) error
	FindBySessionID(ctx context.Context, sessionID string, skip, limit int64) ([]models.GenerationLog, int64, error)
}
