package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotHeld 表示鎖已過期或已被其他請求取得
var ErrLockNotHeld = errors.New("lock not held")

const defaultLockTTL = 30 * time.Second

// 只有持有者 (token 相符) 才能刪除
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var newLockToken = uuid.NewString

// FormLock keeps at most one submission per form instance in flight.
type FormLock struct {
	cache Cache
	ttl   time.Duration
}

// NewFormLock ttl must outlive the guarded call; <= 0 uses 30s.
func NewFormLock(c Cache, ttl time.Duration) *FormLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &FormLock{cache: c, ttl: ttl}
}

func formLockKey(formID string) string {
	return "user-form:inflight:" + formID
}

// Acquire reports whether the caller now owns the lock for formID. The
// returned token must be passed to Release.
func (l *FormLock) Acquire(ctx context.Context, formID string) (string, bool, error) {
	token := newLockToken()
	ok, err := l.cache.SetNX(ctx, formLockKey(formID), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("Acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release deletes the lock only while it still carries token.
func (l *FormLock) Release(ctx context.Context, formID, token string) error {
	n, err := releaseScript.Run(ctx, l.cache, []string{formLockKey(formID)}, token).Int64()
	if err != nil {
		return fmt.Errorf("Release: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Release: %w", ErrLockNotHeld)
	}
	return nil
}
