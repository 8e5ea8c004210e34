package middlewares

import (
	"class-planner-service/internal/app/config"
	"class-planner-service/internal/app/services/core/session"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

func newTestMiddlewares() *Middlewares {
	internalConfig := &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1},
	}
	sessionService := session.NewSessionService(nil, testSecret, 1, time.Hour, zap.NewNop())
	return NewMiddlewares(zap.NewNop(), sessionService, internalConfig)
}

func TestRequireSession(t *testing.T) {
	m := newTestMiddlewares()

	var seenSessionID string
	handler := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSessionID = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Missing Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wizard", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Not A Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/wizard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Signed With Another Secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/wizard", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", testSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/wizard", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "session-1", seenSessionID, "session id should be placed on the context")
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seenRequestID string
	var seenIsClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		seenIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("Client Supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-request")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-request", seenRequestID)
		assert.True(t, seenIsClient)
		assert.Equal(t, "client-request", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seenRequestID)
		assert.False(t, seenIsClient)
		assert.Equal(t, seenRequestID, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	t.Run("Within Limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"CS"}`))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.NoError(t, readErr)
	})

	t.Run("Over Limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", (1<<20)+1)))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Error(t, readErr)
	})
}

func TestSessionRateLimit(t *testing.T) {
	m := newTestMiddlewares()
	token, err := utils.GenerateSessionJWT("session-1", testSecret, 1)
	require.NoError(t, err)
	otherToken, err := utils.GenerateSessionJWT("session-2", testSecret, 1)
	require.NoError(t, err)

	handler := m.RequireSession(m.SessionRateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	call := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/wizard/generate", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call(token))
	assert.Equal(t, http.StatusOK, call(token))
	assert.Equal(t, http.StatusTooManyRequests, call(token), "third call in the window should be limited")
	assert.Equal(t, http.StatusOK, call(otherToken), "another session has its own budget")
}
