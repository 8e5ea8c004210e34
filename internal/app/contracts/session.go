package contracts

import (
	"class-planner-service/internal/app/models"
	"context"
)

type SessionService interface {
	Create(ctx context.Context) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Save(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
	IssueToken(sessionID string) (string, error)
	VerifyToken(token string) (string, error)
}
