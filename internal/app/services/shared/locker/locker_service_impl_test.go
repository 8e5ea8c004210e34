package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRedisRepository stores JSON-encoded values the way the redis repository does.
type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(data)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.values[key]; ok {
		return false, nil
	}
	r.values[key] = string(data)
	return true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "wizard:generate-lock:session-1"

	t.Run("Single Holder", func(t *testing.T) {
		locker := NewLockService(newFakeRedisRepository(), zap.NewNop())

		acquired, lockValue, err := locker.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		acquired, _, err = locker.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired, "second holder should not acquire the lock")

		locked, err := locker.IsLocked(ctx, key)
		require.NoError(t, err)
		assert.True(t, locked)
	})

	t.Run("Unlock Requires Ownership", func(t *testing.T) {
		locker := NewLockService(newFakeRedisRepository(), zap.NewNop())

		_, lockValue, err := locker.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		assert.Error(t, locker.Unlock(ctx, key, "someone-else"))
		locked, _ := locker.IsLocked(ctx, key)
		assert.True(t, locked)

		require.NoError(t, locker.Unlock(ctx, key, lockValue))
		locked, _ = locker.IsLocked(ctx, key)
		assert.False(t, locked)
	})

	t.Run("Unlock Of Missing Key", func(t *testing.T) {
		locker := NewLockService(newFakeRedisRepository(), zap.NewNop())
		assert.NoError(t, locker.Unlock(ctx, key, "anything"))
	})

	t.Run("Concurrent Attempts", func(t *testing.T) {
		locker := NewLockService(newFakeRedisRepository(), zap.NewNop())

		var wg sync.WaitGroup
		var mu sync.Mutex
		winners := 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				acquired, _, err := locker.TryLock(ctx, key, time.Minute)
				if err == nil && acquired {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, winners)
	})
}
