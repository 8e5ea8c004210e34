package wizard

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

type wizardUsecase struct {
	SessionService          contracts.SessionService
	LockerService           contracts.LockerService
	ScheduleGenerator       contracts.ScheduleGenerator
	GenerationLogRepository contracts.GenerationLogRepository
	GenerateTimeout         time.Duration
	GenerateLockTTL         time.Duration
	EditLockTTL             time.Duration
	Log                     *zap.Logger
}

func NewWizardUsecase(
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	scheduleGenerator contracts.ScheduleGenerator,
	generationLogRepository contracts.GenerationLogRepository,
	generateTimeout time.Duration,
	generateLockTTL time.Duration,
	editLockTTL time.Duration,
	logger *zap.Logger,
) contracts.WizardUsecase {
	return &wizardUsecase{
		SessionService:          sessionService,
		LockerService:           lockerService,
		ScheduleGenerator:       scheduleGenerator,
		GenerationLogRepository: generationLogRepository,
		GenerateTimeout:         generateTimeout,
		GenerateLockTTL:         generateLockTTL,
		EditLockTTL:             editLockTTL,
		Log:                     logger,
	}
}

// LoadLocked reads a session whose lock the caller holds. A set in-flight flag
// can only be left over from a generation whose lock expired, so it is cleared.
func LoadLocked(ctx context.Context, sessionService contracts.SessionService, sessionID string) (*models.WizardSession, error) {
	session, err := sessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.InFlight = false
	return session, nil
}

func (uc *wizardUsecase) CreateSession(ctx context.Context) (*responses.CreateSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.Create(ctx)
	if err != nil {
		uc.Log.Error("wizardUsecase.CreateSession error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := uc.SessionService.IssueToken(session.ID)
	if err != nil {
		uc.Log.Error("wizardUsecase.CreateSession error issuing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.CreateSession{
		Token:   token,
		Session: session,
	}, nil
}

func (uc *wizardUsecase) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return uc.SessionService.Get(ctx, sessionID)
}

func (uc *wizardUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	unlock, err := LockSession(ctx, uc.SessionService, uc.LockerService, sessionID, uc.EditLockTTL, uc.Log)
	if err != nil {
		return err
	}
	defer unlock()

	_, err = uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return uc.SessionService.Delete(ctx, sessionID)
}

func (uc *wizardUsecase) Next(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "Next", func(session *models.WizardSession) error {
		session.Next()
		return nil
	})
}

func (uc *wizardUsecase) Previous(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "Previous", func(session *models.WizardSession) error {
		session.Previous()
		return nil
	})
}

func (uc *wizardUsecase) AddCourse(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "AddCourse", func(session *models.WizardSession) error {
		session.Courses = AddCourse(session.Courses)
		return nil
	})
}

func (uc *wizardUsecase) UpdateCourse(ctx context.Context, sessionID string, index int, request *requests.UpdateCourse) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "UpdateCourse", func(session *models.WizardSession) error {
		courses, err := UpdateCourse(session.Courses, index, request.Field, request.Value)
		if err != nil {
			return err
		}
		session.Courses = courses
		return nil
	})
}

func (uc *wizardUsecase) RemoveCourse(ctx context.Context, sessionID string, index int) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "RemoveCourse", func(session *models.WizardSession) error {
		courses, err := RemoveCourse(session.Courses, index)
		if err != nil {
			return err
		}
		session.Courses = courses
		return nil
	})
}

func (uc *wizardUsecase) AddBreak(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "AddBreak", func(session *models.WizardSession) error {
		session.Breaks = AddBreak(session.Breaks)
		return nil
	})
}

func (uc *wizardUsecase) UpdateBreak(ctx context.Context, sessionID string, index int, request *requests.UpdateBreak) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "UpdateBreak", func(session *models.WizardSession) error {
		breaks, err := UpdateBreak(session.Breaks, index, request.Field, request.Value)
		if err != nil {
			return err
		}
		session.Breaks = breaks
		return nil
	})
}

func (uc *wizardUsecase) RemoveBreak(ctx context.Context, sessionID string, index int) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "RemoveBreak", func(session *models.WizardSession) error {
		breaks, err := RemoveBreak(session.Breaks, index)
		if err != nil {
			return err
		}
		session.Breaks = breaks
		return nil
	})
}

func (uc *wizardUsecase) ToggleDay(ctx context.Context, sessionID, day string) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "ToggleDay", func(session *models.WizardSession) error {
		preferences, err := ToggleDay(session.Preferences, day)
		if err != nil {
			return err
		}
		session.Preferences = preferences
		return nil
	})
}

func (uc *wizardUsecase) SetTimeOfDay(ctx context.Context, sessionID string, request *requests.SetTimeOfDay) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "SetTimeOfDay", func(session *models.WizardSession) error {
		preferences, err := SetTimeOfDay(session.Preferences, request.TimeOfDay)
		if err != nil {
			return err
		}
		session.Preferences = preferences
		return nil
	})
}

func (uc *wizardUsecase) SetWeights(ctx context.Context, sessionID string, request *requests.SetWeights) (*models.WizardSession, error) {
	return uc.mutate(ctx, sessionID, "SetWeights", func(session *models.WizardSession) error {
		if request.DayWeight == nil && request.TimeWeight == nil {
			return exceptions.ErrInputValidation(errors.New("no weight given"))
		}

		preferences := session.Preferences
		var err error
		if request.DayWeight != nil {
			preferences, err = SetDayWeight(preferences, *request.DayWeight)
			if err != nil {
				return err
			}
		}
		if request.TimeWeight != nil {
			preferences, err = SetTimeWeight(preferences, *request.TimeWeight)
			if err != nil {
				return err
			}
		}
		session.Preferences = preferences
		return nil
	})
}

// Generate submits the preferences step. Validation failures never reach the
// generator; every failure is left on the session as its error message.
func (uc *wizardUsecase) Generate(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	started := time.Now()

	unlock, err := LockSession(ctx, uc.SessionService, uc.LockerService, sessionID, uc.GenerateLockTTL, uc.Log)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := LoadLocked(ctx, uc.SessionService, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.CanGenerate() {
		return nil, exceptions.ErrGenerateNotAllowed(fmt.Errorf("step %d", session.Step))
	}

	payload, err := BuildPayload(session.Courses, session.Breaks, session.Preferences)
	if err != nil {
		uc.Log.Info("wizardUsecase.Generate payload rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		)
		session.FailGeneration(exceptions.ClientMessageOf(err))
		uc.recordGeneration(ctx, session.ID, nil, nil, err, started)
		if saveErr := uc.SessionService.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	session.BeginGeneration()
	err = uc.SessionService.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	generateCtx, cancel := context.WithTimeout(ctx, uc.GenerateTimeout)
	defer cancel()

	response, err := uc.ScheduleGenerator.Generate(generateCtx, payload)
	var schedules []models.ScheduleView
	if err == nil {
		var dropped []error
		schedules, dropped, err = ParseSchedules(response)
		for _, dropErr := range dropped {
			uc.Log.Warn("wizardUsecase.Generate dropped unreadable alternative schedule",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(dropErr),
			)
		}
	}
	if err != nil {
		uc.Log.Error("wizardUsecase.Generate generation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		session.FailGeneration(exceptions.ClientMessageOf(err))
		uc.recordGeneration(ctx, session.ID, payload, nil, err, started)
		if saveErr := uc.SessionService.Save(context.WithoutCancel(ctx), session); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	session.CompleteGeneration(schedules)
	uc.recordGeneration(ctx, session.ID, payload, response, nil, started)
	err = uc.SessionService.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("wizardUsecase.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScheduleCount, len(schedules)),
	)
	return session, nil
}

func (uc *wizardUsecase) mutate(ctx context.Context, sessionID, operation string, apply func(session *models.WizardSession) error) (*models.WizardSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	unlock, err := LockSession(ctx, uc.SessionService, uc.LockerService, sessionID, uc.EditLockTTL, uc.Log)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := LoadLocked(ctx, uc.SessionService, sessionID)
	if err != nil {
		return nil, err
	}

	err = apply(session)
	if err != nil {
		uc.Log.Info("wizardUsecase."+operation+" rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.SessionService.Save(ctx, session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// recordGeneration stores the attempt; failures to store it are only logged.
func (uc *wizardUsecase) recordGeneration(ctx context.Context, sessionID string, payload *requests.GenerateSchedules, response *responses.GenerateSchedules, generateErr error, started time.Time) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	entry := &models.GenerationLog{
		SessionID: sessionID,
		RequestID: requestID,
		Payload:   payload,
		Outcome:   constvars.GenerationOutcomeSucceeded,
		Duration:  time.Since(started),
		CreatedAt: time.Now(),
	}

	if generateErr != nil {
		entry.ErrorKind = string(exceptions.KindOf(generateErr))
		entry.ErrorMessage = generateErr.Error()
		switch exceptions.KindOf(generateErr) {
		case exceptions.KindValidation:
			entry.Outcome = constvars.GenerationOutcomeValidationFailed
		case exceptions.KindProtocol:
			entry.Outcome = constvars.GenerationOutcomeProtocolFailed
		default:
			entry.Outcome = constvars.GenerationOutcomeTransportFailed
		}
	}

	if response != nil {
		entry.ScheduleCount = len(response.Schedules)
		if len(response.Schedules) > 0 {
			for _, crn := range response.Schedules[0].CRNs {
				entry.FirstCRNs = append(entry.FirstCRNs, string(crn))
			}
			sort.Strings(entry.FirstCRNs)
		}
	}

	err := uc.GenerationLogRepository.Insert(context.WithoutCancel(ctx), entry)
	if err != nil {
		uc.Log.Error("wizardUsecase.recordGeneration error inserting generation log",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
