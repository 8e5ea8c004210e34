package middlewares

import (
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RequireSession resolves the bearer token into a wizard session id.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		authorization := r.Header.Get(constvars.HeaderAuthorization)
		token, found := strings.CutPrefix(authorization, constvars.AuthorizationBearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("bearer token missing")))
			return
		}

		sessionID, err := m.SessionService.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			m.Log.Info("Middlewares.RequireSession rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
