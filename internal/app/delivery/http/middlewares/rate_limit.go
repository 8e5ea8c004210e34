package middlewares

import (
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// SessionRateLimit limits requests per wizard session rather than per IP.
// It must run after RequireSession.
func (m *Middlewares) SessionRateLimit(requestLimit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			sessionID := SessionIDFromContext(r.Context())
			if sessionID == "" {
				return httprate.KeyByIP(r)
			}
			return sessionID, nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("session rate limit exceeded")))
		}),
	)
}
