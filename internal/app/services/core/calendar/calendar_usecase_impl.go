package calendar

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/app/services/core/wizard"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	exportFileName     = "schedule.ics"
	emailSubjectFormat = "Your class schedule: %s"
)

type calendarUsecase struct {
	SessionService contracts.SessionService
	LockerService  contracts.LockerService
	Storage        contracts.Storage
	MailerService  contracts.MailerService
	BucketName     string
	PresignExpiry  time.Duration
	MailSender     string
	EditLockTTL    time.Duration
	Log            *zap.Logger
}

func NewCalendarUsecase(
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	storage contracts.Storage,
	mailerService contracts.MailerService,
	bucketName string,
	presignExpiry time.Duration,
	mailSender string,
	editLockTTL time.Duration,
	logger *zap.Logger,
) contracts.CalendarUsecase {
	return &calendarUsecase{
		SessionService: sessionService,
		LockerService:  lockerService,
		Storage:        storage,
		MailerService:  mailerService,
		BucketName:     bucketName,
		PresignExpiry:  presignExpiry,
		MailSender:     mailSender,
		EditLockTTL:    editLockTTL,
		Log:            logger,
	}
}

func (uc *calendarUsecase) GetCalendar(ctx context.Context, sessionID string) (*responses.Calendar, error) {
	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildCalendar(session)
}

// ActivateSchedule switches to another returned schedule and clears the selection.
func (uc *calendarUsecase) ActivateSchedule(ctx context.Context, sessionID string, index int) (*responses.Calendar, error) {
	return uc.mutate(ctx, sessionID, "ActivateSchedule", func(session *models.WizardSession) error {
		if index < 0 || index >= len(session.Schedules) {
			return exceptions.ErrIndexOutOfRange(fmt.Errorf("schedule %d of %d", index, len(session.Schedules)))
		}
		session.ActiveSchedule = index
		session.SelectedEvent = nil
		return nil
	})
}

// SelectEvent opens the detail overlay for one event of the active schedule.
func (uc *calendarUsecase) SelectEvent(ctx context.Context, sessionID string, index int) (*responses.Calendar, error) {
	return uc.mutate(ctx, sessionID, "SelectEvent", func(session *models.WizardSession) error {
		view, ok := session.ActiveView()
		if !ok {
			return exceptions.ErrNoScheduleGenerated(nil)
		}
		if index < 0 || index >= len(view.Events) {
			return exceptions.ErrIndexOutOfRange(fmt.Errorf("event %d of %d", index, len(view.Events)))
		}
		selected := view.Events[index]
		session.SelectedEvent = &selected
		return nil
	})
}

func (uc *calendarUsecase) DismissSelection(ctx context.Context, sessionID string) (*responses.Calendar, error) {
	return uc.mutate(ctx, sessionID, "DismissSelection", func(session *models.WizardSession) error {
		session.SelectedEvent = nil
		return nil
	})
}

// Export uploads the active schedule as an iCalendar file and returns a
// presigned download link.
func (uc *calendarUsecase) Export(ctx context.Context, sessionID string) (*responses.CalendarExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("calendarUsecase.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, view, err := uc.activeView(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, err := RenderICS(session.ID, view, now)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf(constvars.CalendarExportObjectNameFormat, session.ID, uuid.NewString())
	_, err = uc.Storage.UploadObject(ctx, uc.BucketName, objectName, constvars.MIMETextCalendar, content)
	if err != nil {
		uc.Log.Error("calendarUsecase.Export error uploading calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, uc.BucketName),
			zap.Error(err),
		)
		return nil, err
	}

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, objectName, uc.PresignExpiry)
	if err != nil {
		uc.Log.Error("calendarUsecase.Export error presigning calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.CalendarExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(uc.PresignExpiry),
	}, nil
}

// Email queues the active schedule, with the iCalendar file attached.
func (uc *calendarUsecase) Email(ctx context.Context, sessionID string, request *requests.EmailSchedule) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("calendarUsecase.Email called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, view, err := uc.activeView(ctx, sessionID)
	if err != nil {
		return err
	}

	content, err := RenderICS(session.ID, view, time.Now())
	if err != nil {
		return err
	}
	htmlBody, err := renderScheduleEmail(view)
	if err != nil {
		return err
	}

	payload := &requests.EmailPayload{
		Subject:  fmt.Sprintf(emailSubjectFormat, view.Name),
		From:     uc.MailSender,
		To:       []string{request.Email},
		HTMLCode: htmlBody,
		Attachments: []requests.EmailAttachment{
			{
				FileName:    exportFileName,
				ContentType: constvars.MIMETextCalendar,
				Content:     content,
			},
		},
	}
	return uc.MailerService.SendEmail(ctx, payload)
}

func (uc *calendarUsecase) activeView(ctx context.Context, sessionID string) (*models.WizardSession, *models.ScheduleView, error) {
	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	view, ok := session.ActiveView()
	if !ok {
		return nil, nil, exceptions.ErrNoScheduleGenerated(nil)
	}
	return session, view, nil
}

func (uc *calendarUsecase) mutate(ctx context.Context, sessionID, operation string, apply func(session *models.WizardSession) error) (*responses.Calendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("calendarUsecase."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	unlock, err := wizard.LockSession(ctx, uc.SessionService, uc.LockerService, sessionID, uc.EditLockTTL, uc.Log)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := wizard.LoadLocked(ctx, uc.SessionService, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Schedules) == 0 {
		return nil, exceptions.ErrNoScheduleGenerated(nil)
	}

	err = apply(session)
	if err != nil {
		return nil, err
	}

	err = uc.SessionService.Save(ctx, session)
	if err != nil {
		return nil, err
	}
	return buildCalendar(session)
}

func buildCalendar(session *models.WizardSession) (*responses.Calendar, error) {
	view, ok := session.ActiveView()
	if !ok {
		return nil, exceptions.ErrNoScheduleGenerated(nil)
	}

	summaries := make([]responses.ScheduleSummary, len(session.Schedules))
	for i, schedule := range session.Schedules {
		summaries[i] = responses.ScheduleSummary{
			Index:      i,
			Name:       schedule.Name,
			EventCount: len(schedule.Events),
		}
	}

	return &responses.Calendar{
		ActiveSchedule: session.ActiveSchedule,
		Schedules:      summaries,
		Events:         view.Events,
		SelectedEvent:  session.SelectedEvent,
	}, nil
}
