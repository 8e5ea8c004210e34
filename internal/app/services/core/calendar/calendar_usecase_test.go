package calendar

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionService struct {
	sessions map[string]*models.WizardSession
	saved    int
}

func (s *stubSessionService) Create(ctx context.Context) (*models.WizardSession, error) {
	return nil, errors.New("not used")
}

func (s *stubSessionService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	copied := *session
	return &copied, nil
}

func (s *stubSessionService) Save(ctx context.Context, session *models.WizardSession) error {
	s.saved++
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionService) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubSessionService) IssueToken(sessionID string) (string, error) { return sessionID, nil }

func (s *stubSessionService) VerifyToken(token string) (string, error) { return token, nil }

type stubLocker struct {
	locked   bool
	acquired int
	released int
}

func (l *stubLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if l.locked {
		return false, "", nil
	}
	l.acquired++
	return true, "owner", nil
}

func (l *stubLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.released++
	return nil
}

func (l *stubLocker) IsLocked(ctx context.Context, key string) (bool, error) { return l.locked, nil }

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, content)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func generatedSession() *models.WizardSession {
	session := models.NewWizardSession("session-1", time.Now())
	session.Step = constvars.WizardStepPreferences
	session.CompleteGeneration([]models.ScheduleView{
		{
			Name: "Schedule 1",
			Events: []models.ClassEvent{
				{Title: "CS-101", Start: "2100-01-04T09:00:00", End: "2100-01-04T09:50:00", Info: "CRN: 12345"},
				{Title: "MATH-200", Start: "2100-01-05T13:00:00", End: "2100-01-05T14:15:00", Info: "CRN: 67890"},
			},
			Details: map[string]string{"CS-101": "CRN: 12345", "MATH-200": "CRN: 67890"},
		},
		{
			Name: "Schedule 2",
			Events: []models.ClassEvent{
				{Title: "CS-101", Start: "2100-01-06T15:00:00", End: "2100-01-06T15:50:00", Info: "CRN: 11111"},
			},
			Details: map[string]string{"CS-101": "CRN: 11111"},
		},
	})
	return session
}

type calendarFixture struct {
	usecase  *calendarUsecase
	sessions *stubSessionService
	locker   *stubLocker
	storage  *MockStorage
	mailer   *MockMailerService
}

func newCalendarFixture(sessions ...*models.WizardSession) *calendarFixture {
	fixture := &calendarFixture{
		sessions: &stubSessionService{sessions: map[string]*models.WizardSession{}},
		locker:   &stubLocker{},
		storage:  new(MockStorage),
		mailer:   new(MockMailerService),
	}
	for _, session := range sessions {
		fixture.sessions.sessions[session.ID] = session
	}
	fixture.usecase = NewCalendarUsecase(
		fixture.sessions,
		fixture.locker,
		fixture.storage,
		fixture.mailer,
		"calendars",
		time.Hour,
		"no-reply@example.edu",
		10*time.Second,
		zap.NewNop(),
	).(*calendarUsecase)
	return fixture
}

func TestCalendarUsecase_GetCalendar(t *testing.T) {
	ctx := context.Background()

	t.Run("Shows The Active Schedule", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())

		result, err := fixture.usecase.GetCalendar(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, 0, result.ActiveSchedule)
		assert.Len(t, result.Events, 2)
		require.Len(t, result.Schedules, 2)
		assert.Equal(t, 1, result.Schedules[1].EventCount)
		assert.Nil(t, result.SelectedEvent)
	})

	t.Run("Nothing Generated Yet", func(t *testing.T) {
		fixture := newCalendarFixture(models.NewWizardSession("session-1", time.Now()))

		_, err := fixture.usecase.GetCalendar(ctx, "session-1")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientNoScheduleGenerated, exceptions.ClientMessageOf(err))
	})
}

func TestCalendarUsecase_Selection(t *testing.T) {
	ctx := context.Background()

	t.Run("Select Then Dismiss", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())

		result, err := fixture.usecase.SelectEvent(ctx, "session-1", 1)
		require.NoError(t, err)
		require.NotNil(t, result.SelectedEvent)
		assert.Equal(t, "MATH-200", result.SelectedEvent.Title)
		assert.Equal(t, "CRN: 67890", result.SelectedEvent.Info)

		result, err = fixture.usecase.DismissSelection(ctx, "session-1")
		require.NoError(t, err)
		assert.Nil(t, result.SelectedEvent)
		assert.Nil(t, fixture.sessions.sessions["session-1"].SelectedEvent)
	})

	t.Run("Select Out Of Range", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())

		_, err := fixture.usecase.SelectEvent(ctx, "session-1", 2)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
	})

	t.Run("Activate Clears Selection", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())
		_, err := fixture.usecase.SelectEvent(ctx, "session-1", 0)
		require.NoError(t, err)

		result, err := fixture.usecase.ActivateSchedule(ctx, "session-1", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ActiveSchedule)
		assert.Len(t, result.Events, 1)
		assert.Nil(t, result.SelectedEvent)
	})

	t.Run("Activate Out Of Range", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())

		_, err := fixture.usecase.ActivateSchedule(ctx, "session-1", 5)
		assert.Error(t, err)
	})

	t.Run("Refused While Generating", func(t *testing.T) {
		session := generatedSession()
		session.InFlight = true
		fixture := newCalendarFixture(session)
		fixture.locker.locked = true

		_, err := fixture.usecase.SelectEvent(ctx, "session-1", 0)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		assert.Equal(t, 0, fixture.sessions.saved)
	})

	t.Run("Refused While Another Edit Holds The Lock", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())
		fixture.locker.locked = true

		_, err := fixture.usecase.ActivateSchedule(ctx, "session-1", 1)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		assert.Equal(t, constvars.ErrClientSessionBusy, exceptions.ClientMessageOf(err))
		assert.Equal(t, 0, fixture.sessions.saved)
	})

	t.Run("Edit Releases The Lock", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())

		_, err := fixture.usecase.SelectEvent(ctx, "session-1", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.locker.acquired)
		assert.Equal(t, 1, fixture.locker.released)
	})
}

func TestCalendarUsecase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads And Presigns", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())
		isCalendarObject := mock.MatchedBy(func(objectName string) bool {
			return strings.HasPrefix(objectName, "calendars/session-1/") && strings.HasSuffix(objectName, ".ics")
		})
		fixture.storage.On("UploadObject", mock.Anything, "calendars", isCalendarObject, constvars.MIMETextCalendar, mock.MatchedBy(func(content []byte) bool {
			return strings.Contains(string(content), "BEGIN:VCALENDAR")
		})).Return("ignored", nil).Once()
		fixture.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "calendars", isCalendarObject, time.Hour).
			Return("https://minio.local/calendars/session-1/x.ics?sig=1", nil).Once()

		result, err := fixture.usecase.Export(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/calendars/session-1/x.ics?sig=1", result.URL)
		assert.True(t, strings.HasPrefix(result.ObjectName, "calendars/session-1/"))
		fixture.storage.AssertExpectations(t)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())
		fixture.storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", exceptions.ErrMinioCreateObject(errors.New("bucket gone"), "calendars")).Once()

		_, err := fixture.usecase.Export(ctx, "session-1")
		require.Error(t, err)
		fixture.storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCalendarUsecase_Email(t *testing.T) {
	ctx := context.Background()

	t.Run("Queues Schedule With Attachment", func(t *testing.T) {
		fixture := newCalendarFixture(generatedSession())
		fixture.mailer.On("SendEmail", mock.Anything, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
			return payload.From == "no-reply@example.edu" &&
				len(payload.To) == 1 && payload.To[0] == "student@example.edu" &&
				strings.Contains(payload.HTMLCode, "CS-101") &&
				len(payload.Attachments) == 1 && payload.Attachments[0].FileName == "schedule.ics"
		})).Return(nil).Once()

		err := fixture.usecase.Email(ctx, "session-1", &requests.EmailSchedule{Email: "student@example.edu"})
		require.NoError(t, err)
		fixture.mailer.AssertExpectations(t)
	})

	t.Run("Nothing Generated Yet", func(t *testing.T) {
		fixture := newCalendarFixture(models.NewWizardSession("session-1", time.Now()))

		err := fixture.usecase.Email(ctx, "session-1", &requests.EmailSchedule{Email: "student@example.edu"})
		require.Error(t, err)
		fixture.mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}
