package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義表單送出鎖與健康檢查所需的快取操作
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
	redis.Scripter
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNXFn func(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	CloseFn func() error

	EvalFn    func(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
	EvalShaFn func(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if f.SetNXFn != nil {
		return f.SetNXFn(ctx, key, value, expiration)
	}
	panic("unexpected SetNX")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

func (f *FakeCache) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	if f.EvalFn != nil {
		return f.EvalFn(ctx, script, keys, args...)
	}
	panic("unexpected Eval")
}

// EvalSha 未設定時改走 EvalFn，Fake 不快取腳本
func (f *FakeCache) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	if f.EvalShaFn != nil {
		return f.EvalShaFn(ctx, sha1, keys, args...)
	}
	return f.Eval(ctx, sha1, keys, args...)
}

func (f *FakeCache) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	panic("unexpected EvalRO")
}

func (f *FakeCache) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	panic("unexpected EvalShaRO")
}

func (f *FakeCache) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	panic("unexpected ScriptExists")
}

func (f *FakeCache) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	panic("unexpected ScriptLoad")
}
