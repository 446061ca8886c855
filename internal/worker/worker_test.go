package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3, 8)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit(func(context.Context) {
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaults(t *testing.T) {
	p := NewPool(0, -1)
	ran := make(chan error, 1)
	require.True(t, p.Submit(func(ctx context.Context) { ran <- ctx.Err() }))
	require.NoError(t, <-ran)
	p.Stop()
}

func TestPoolSubmitAfterStop(t *testing.T) {
	p := NewPool(1, 0)
	p.Stop()
	p.Stop()
	require.False(t, p.Submit(func(context.Context) { t.Fatal("should not run") }))
}
