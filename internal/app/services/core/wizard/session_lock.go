package wizard

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SessionLockKey guards every write to a wizard session. Generate holds it for
// the whole remote call, edits only around their load, apply and save.
func SessionLockKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionLockFormat, sessionID)
}

// LockSession takes the session lock or fails with a conflict. When the lock is
// held the stored session tells a running generation apart from another edit.
func LockSession(
	ctx context.Context,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	sessionID string,
	ttl time.Duration,
	logger *zap.Logger,
) (unlock func(), err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := SessionLockKey(sessionID)

	acquired, lockValue, err := lockerService.TryLock(ctx, lockKey, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		session, err := sessionService.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if session.InFlight {
			return nil, exceptions.ErrGenerationInFlight(nil)
		}
		return nil, exceptions.ErrSessionBusy(nil)
	}

	return func() {
		unlockErr := lockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		if unlockErr != nil {
			logger.Error("wizard.LockSession error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}, nil
}
