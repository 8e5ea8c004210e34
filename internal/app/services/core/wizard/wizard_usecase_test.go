package wizard

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySessionService struct {
	mu       sync.Mutex
	sessions map[string][]byte
	nextID   int

	// beforeSave runs ahead of every Save and may block it.
	beforeSave func(session *models.WizardSession)
}

func newMemorySessionService() *memorySessionService {
	return &memorySessionService{sessions: map[string][]byte{}}
}

func (s *memorySessionService) Create(ctx context.Context) (*models.WizardSession, error) {
	s.mu.Lock()
	s.nextID++
	id := fmt.Sprintf("session-%d", s.nextID)
	s.mu.Unlock()

	session := models.NewWizardSession(id, time.Now())
	return session, s.Save(ctx, session)
}

func (s *memorySessionService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	session := new(models.WizardSession)
	return session, json.Unmarshal(data, session)
}

func (s *memorySessionService) Save(ctx context.Context, session *models.WizardSession) error {
	if s.beforeSave != nil {
		s.beforeSave(session)
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = data
	return nil
}

func (s *memorySessionService) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *memorySessionService) IssueToken(sessionID string) (string, error) {
	return "token-" + sessionID, nil
}

func (s *memorySessionService) VerifyToken(token string) (string, error) {
	return token[len("token-"):], nil
}

type memoryLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: map[string]string{}}
}

func (l *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	l.held[key] = "owner"
	return true, "owner", nil
}

func (l *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
}

func (l *memoryLocker) IsLocked(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[key]
	return ok, nil
}

type MockScheduleGenerator struct {
	mock.Mock
}

func (m *MockScheduleGenerator) Generate(ctx context.Context, payload *requests.GenerateSchedules) (*responses.GenerateSchedules, error) {
	args := m.Called(ctx, payload)
	response, _ := args.Get(0).(*responses.GenerateSchedules)
	return response, args.Error(1)
}

type memoryGenerationLogRepository struct {
	mu   sync.Mutex
	logs []models.GenerationLog
}

func (r *memoryGenerationLogRepository) Insert(ctx context.Context, log *models.GenerationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *memoryGenerationLogRepository) FindBySessionID(ctx context.Context, sessionID string, skip, limit int64) ([]models.GenerationLog, int64, error) {
	return r.logs, int64(len(r.logs)), nil
}

type wizardFixture struct {
	usecase   *wizardUsecase
	sessions  *memorySessionService
	locker    *memoryLocker
	generator *MockScheduleGenerator
	logs      *memoryGenerationLogRepository
}

func newWizardFixture() *wizardFixture {
	fixture := &wizardFixture{
		sessions:  newMemorySessionService(),
		locker:    newMemoryLocker(),
		generator: new(MockScheduleGenerator),
		logs:      &memoryGenerationLogRepository{},
	}
	fixture.usecase = NewWizardUsecase(
		fixture.sessions,
		fixture.locker,
		fixture.generator,
		fixture.logs,
		time.Second,
		2*time.Second,
		time.Second,
		zap.NewNop(),
	).(*wizardUsecase)
	return fixture
}

// readySession stores a session on the preferences step with one complete course.
func (f *wizardFixture) readySession(t *testing.T) *models.WizardSession {
	t.Helper()
	session, err := f.sessions.Create(context.Background())
	require.NoError(t, err)
	session.Step = constvars.WizardStepPreferences
	session.Courses = []models.Course{{Subject: "CS", CourseNumber: "101"}}
	session.Breaks = []models.BreakPeriod{{StartTime: "12:00 PM", EndTime: "1:00 PM"}}
	require.NoError(t, f.sessions.Save(context.Background(), session))
	return session
}

func generatorResponse() *responses.GenerateSchedules {
	return &responses.GenerateSchedules{
		Schedules: []responses.ScheduleResult{{
			Days: map[string][]string{"M": {"CS-101: 9:00 AM - 9:50 AM"}},
			CRNs: map[string]responses.CRN{"CS-101": "12345"},
		}},
	}
}

func TestWizardUsecase_CreateSession(t *testing.T) {
	fixture := newWizardFixture()

	result, err := fixture.usecase.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-"+result.Session.ID, result.Token)
	assert.Equal(t, constvars.WizardStepCourses, result.Session.Step)

	stored, err := fixture.sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, stored.ID)
}

func TestWizardUsecase_Navigation(t *testing.T) {
	fixture := newWizardFixture()
	ctx := context.Background()
	created, err := fixture.usecase.CreateSession(ctx)
	require.NoError(t, err)
	sessionID := created.Session.ID

	for _, want := range []int{2, 3, 3} {
		session, err := fixture.usecase.Next(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, want, session.Step)
	}

	session, err := fixture.usecase.Previous(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, session.Step)
}

func TestWizardUsecase_Collectors(t *testing.T) {
	fixture := newWizardFixture()
	ctx := context.Background()
	created, err := fixture.usecase.CreateSession(ctx)
	require.NoError(t, err)
	sessionID := created.Session.ID

	t.Run("Courses", func(t *testing.T) {
		session, err := fixture.usecase.AddCourse(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, session.Courses, 2)

		session, err = fixture.usecase.UpdateCourse(ctx, sessionID, 1, &requests.UpdateCourse{Field: "subject", Value: "math"})
		require.NoError(t, err)
		assert.Equal(t, "MATH", session.Courses[1].Subject)

		session, err = fixture.usecase.RemoveCourse(ctx, sessionID, 1)
		require.NoError(t, err)
		assert.Len(t, session.Courses, 1)

		_, err = fixture.usecase.RemoveCourse(ctx, sessionID, 5)
		assert.Error(t, err)
	})

	t.Run("Breaks", func(t *testing.T) {
		session, err := fixture.usecase.UpdateBreak(ctx, sessionID, 0, &requests.UpdateBreak{Field: "startTime", Value: "11:00 AM"})
		require.NoError(t, err)
		assert.Equal(t, "11:00 AM", session.Breaks[0].StartTime)

		session, err = fixture.usecase.AddBreak(ctx, sessionID)
		require.NoError(t, err)
		assert.Len(t, session.Breaks, 2)

		session, err = fixture.usecase.RemoveBreak(ctx, sessionID, 1)
		require.NoError(t, err)
		assert.Len(t, session.Breaks, 1)
	})

	t.Run("Preferences", func(t *testing.T) {
		session, err := fixture.usecase.ToggleDay(ctx, sessionID, "F")
		require.NoError(t, err)
		assert.Equal(t, []string{"M", "T", "W", "R"}, session.Preferences.Days)

		session, err = fixture.usecase.SetTimeOfDay(ctx, sessionID, &requests.SetTimeOfDay{TimeOfDay: "afternoon"})
		require.NoError(t, err)
		assert.Equal(t, "afternoon", session.Preferences.TimeOfDay)

		dayWeight, timeWeight := 0.25, 0.75
		session, err = fixture.usecase.SetWeights(ctx, sessionID, &requests.SetWeights{DayWeight: &dayWeight, TimeWeight: &timeWeight})
		require.NoError(t, err)
		assert.Equal(t, 0.25, session.Preferences.DayWeight)
		assert.Equal(t, 0.75, session.Preferences.TimeWeight)

		_, err = fixture.usecase.SetWeights(ctx, sessionID, &requests.SetWeights{})
		assert.Error(t, err)
	})

	t.Run("Failed Edit Is Not Stored", func(t *testing.T) {
		before, err := fixture.sessions.Get(ctx, sessionID)
		require.NoError(t, err)

		_, err = fixture.usecase.UpdateBreak(ctx, sessionID, 0, &requests.UpdateBreak{Field: "unknown", Value: ""})
		require.Error(t, err)

		after, err := fixture.sessions.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, before.Breaks, after.Breaks)
	})
}

func TestWizardUsecase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Moves To Results", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		fixture.generator.On("Generate", mock.Anything, mock.MatchedBy(func(payload *requests.GenerateSchedules) bool {
			return len(payload.Courses) == 1 && payload.Courses[0] == "CS-101" &&
				len(payload.Breaks) == 1 && payload.Breaks[0].BeginTime == "12:00:00"
		})).Return(generatorResponse(), nil).Once()

		result, err := fixture.usecase.Generate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.WizardStepResults, result.Step)
		assert.False(t, result.InFlight)
		assert.Empty(t, result.ErrorMessage)
		require.Len(t, result.Schedules, 1)
		assert.Equal(t, "CRN: 12345", result.Schedules[0].Events[0].Info)
		assert.Equal(t, 1, result.GenerationCount)

		locked, _ := fixture.locker.IsLocked(ctx, SessionLockKey(session.ID))
		assert.False(t, locked, "lock should be released")

		require.Len(t, fixture.logs.logs, 1)
		assert.Equal(t, constvars.GenerationOutcomeSucceeded, fixture.logs.logs[0].Outcome)
		assert.Equal(t, []string{"12345"}, fixture.logs.logs[0].FirstCRNs)
		fixture.generator.AssertExpectations(t)
	})

	t.Run("Invalid Weights Never Reach The Generator", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		session.Preferences.DayWeight = 0.6
		session.Preferences.TimeWeight = 0.5
		require.NoError(t, fixture.sessions.Save(ctx, session))

		_, err := fixture.usecase.Generate(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))

		stored, err := fixture.sessions.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.ErrClientWeightsMustSumToOne, stored.ErrorMessage)
		assert.Equal(t, constvars.WizardStepPreferences, stored.Step)
		assert.False(t, stored.InFlight)

		require.Len(t, fixture.logs.logs, 1)
		assert.Equal(t, constvars.GenerationOutcomeValidationFailed, fixture.logs.logs[0].Outcome)
		fixture.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Transport Error Keeps Preferences Step", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		fixture.generator.On("Generate", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused"))).Once()

		_, err := fixture.usecase.Generate(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindTransport, exceptions.KindOf(err))

		stored, err := fixture.sessions.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.WizardStepPreferences, stored.Step)
		assert.False(t, stored.InFlight)
		assert.Equal(t, constvars.ErrClientScheduleServiceUnavailable, stored.ErrorMessage)

		locked, _ := fixture.locker.IsLocked(ctx, SessionLockKey(session.ID))
		assert.False(t, locked)
		assert.Equal(t, constvars.GenerationOutcomeTransportFailed, fixture.logs.logs[0].Outcome)
	})

	t.Run("Malformed Response Is A Protocol Error", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		fixture.generator.On("Generate", mock.Anything, mock.Anything).
			Return(&responses.GenerateSchedules{Schedules: []responses.ScheduleResult{{
				Days: map[string][]string{"M": {"CS-101 at nine"}},
				CRNs: map[string]responses.CRN{},
			}}}, nil).Once()

		_, err := fixture.usecase.Generate(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindProtocol, exceptions.KindOf(err))

		stored, err := fixture.sessions.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.ErrClientScheduleUnreadable, stored.ErrorMessage)
		assert.Empty(t, stored.Schedules)
		assert.Equal(t, constvars.GenerationOutcomeProtocolFailed, fixture.logs.logs[0].Outcome)
	})

	t.Run("Unreadable Alternative Is Dropped", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		response := generatorResponse()
		response.Schedules = append(response.Schedules, responses.ScheduleResult{
			Days: map[string][]string{"T": {"CS-101 at ten"}},
			CRNs: map[string]responses.CRN{},
		})
		fixture.generator.On("Generate", mock.Anything, mock.Anything).Return(response, nil).Once()

		result, err := fixture.usecase.Generate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.WizardStepResults, result.Step)
		assert.Empty(t, result.ErrorMessage)
		require.Len(t, result.Schedules, 1)
		assert.Equal(t, constvars.GenerationOutcomeSucceeded, fixture.logs.logs[0].Outcome)
	})

	t.Run("Held Lock Is A Conflict", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		_, _, err := fixture.locker.TryLock(ctx, SessionLockKey(session.ID), time.Minute)
		require.NoError(t, err)

		_, err = fixture.usecase.Generate(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		fixture.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Edits Are Refused While Generating", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		session.InFlight = true
		require.NoError(t, fixture.sessions.Save(ctx, session))
		_, _, err := fixture.locker.TryLock(ctx, SessionLockKey(session.ID), time.Minute)
		require.NoError(t, err)

		_, err = fixture.usecase.AddCourse(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
	})

	t.Run("Stale In Flight Flag Is Cleared", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)
		session.InFlight = true
		require.NoError(t, fixture.sessions.Save(ctx, session))
		fixture.generator.On("Generate", mock.Anything, mock.Anything).Return(generatorResponse(), nil).Once()

		result, err := fixture.usecase.Generate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.WizardStepResults, result.Step)
	})

	t.Run("Only From Preferences Step", func(t *testing.T) {
		fixture := newWizardFixture()
		created, err := fixture.usecase.CreateSession(ctx)
		require.NoError(t, err)

		_, err = fixture.usecase.Generate(ctx, created.Session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		fixture.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		fixture := newWizardFixture()
		_, err := fixture.usecase.Generate(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
	})
}

func TestWizardUsecase_EditAndGenerateInterleaved(t *testing.T) {
	ctx := context.Background()

	t.Run("Edit In Progress Blocks Generate", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)

		paused := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		fixture.sessions.beforeSave = func(*models.WizardSession) {
			once.Do(func() {
				close(paused)
				<-release
			})
		}

		editDone := make(chan error, 1)
		go func() {
			_, err := fixture.usecase.UpdateCourse(ctx, session.ID, 0, &requests.UpdateCourse{
				Field: constvars.CourseFieldCourseNumber,
				Value: "102",
			})
			editDone <- err
		}()
		<-paused

		_, err := fixture.usecase.Generate(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		fixture.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)

		close(release)
		require.NoError(t, <-editDone)

		fixture.generator.On("Generate", mock.Anything, mock.MatchedBy(func(payload *requests.GenerateSchedules) bool {
			return len(payload.Courses) == 1 && payload.Courses[0] == "CS-102"
		})).Return(generatorResponse(), nil).Once()

		result, err := fixture.usecase.Generate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.WizardStepResults, result.Step)
		require.Len(t, result.Schedules, 1)
		assert.Equal(t, "102", result.Courses[0].CourseNumber)
		fixture.generator.AssertExpectations(t)
	})

	t.Run("Generate In Progress Refuses Edits", func(t *testing.T) {
		fixture := newWizardFixture()
		session := fixture.readySession(t)

		started := make(chan struct{})
		release := make(chan struct{})
		fixture.generator.On("Generate", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return(generatorResponse(), nil).Once()

		generateDone := make(chan error, 1)
		go func() {
			_, err := fixture.usecase.Generate(ctx, session.ID)
			generateDone <- err
		}()
		<-started

		_, err := fixture.usecase.AddCourse(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
		assert.Equal(t, constvars.ErrClientGenerationInFlight, exceptions.ClientMessageOf(err))

		close(release)
		require.NoError(t, <-generateDone)

		stored, err := fixture.sessions.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.WizardStepResults, stored.Step)
		assert.False(t, stored.InFlight)
		assert.Len(t, stored.Schedules, 1)
		assert.Len(t, stored.Courses, 1)
	})
}

func TestWizardUsecase_DeleteSession(t *testing.T) {
	fixture := newWizardFixture()
	ctx := context.Background()
	created, err := fixture.usecase.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, fixture.usecase.DeleteSession(ctx, created.Session.ID))
	_, err = fixture.usecase.GetSession(ctx, created.Session.ID)
	assert.Error(t, err)
}
