package session

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	JWTSecret       string
	JWTExpiryHours  int
	SessionTTL      time.Duration
}

func NewSessionService(
	redisRepository contracts.RedisRepository,
	jwtSecret string,
	jwtExpiryHours int,
	sessionTTL time.Duration,
	logger *zap.Logger,
) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		JWTSecret:       jwtSecret,
		JWTExpiryHours:  jwtExpiryHours,
		SessionTTL:      sessionTTL,
	}
}

func (svc *sessionService) Create(ctx context.Context) (*models.WizardSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	session := models.NewWizardSession(utils.GenerateRequestID(), time.Now())
	svc.Log.Info("sessionService.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)

	err := svc.Save(ctx, session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s", sessionID))
	}

	session := new(models.WizardSession)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

// Save replaces the stored session and restarts its TTL.
func (svc *sessionService) Save(ctx context.Context, session *models.WizardSession) error {
	session.SetUpdatedAt(time.Now())
	return svc.RedisRepository.Set(ctx, sessionKey(session.ID), session, svc.SessionTTL)
}

func (svc *sessionService) Delete(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func (svc *sessionService) IssueToken(sessionID string) (string, error) {
	token, err := utils.GenerateSessionJWT(sessionID, svc.JWTSecret, svc.JWTExpiryHours)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

func (svc *sessionService) VerifyToken(token string) (string, error) {
	sessionID, err := utils.ParseJWT(token, svc.JWTSecret)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return sessionID, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyWizardSessionFormat, sessionID)
}
