package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"awqaf/internal/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func (p *passthroughTx) RunInSnapshot(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (p *passthroughTx) RunInRepeatableRead(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestLocker(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *passthroughTx, WaqfLocker) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	txm := &passthroughTx{}
	return mr, txm, NewRedisLocker(rdb, txm, ttl, logger.Discard())
}

func TestRedisLocker_HoldsLockWhileRunning(t *testing.T) {
	mr, txm, locker := newTestLocker(t, time.Second)

	ran := false
	err := locker.WithWaqfLock(context.Background(), 7, func(ctx context.Context) error {
		ran = true
		assert.True(t, mr.Exists("waqf:rules:7"))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, txm.calls)
	assert.False(t, mr.Exists("waqf:rules:7"), "lock released after fn returns")
}

func TestRedisLocker_PropagatesErrorAndReleases(t *testing.T) {
	mr, _, locker := newTestLocker(t, time.Second)
	boom := errors.New("boom")

	err := locker.WithWaqfLock(context.Background(), 7, func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("waqf:rules:7"))
}

func TestRedisLocker_ContendedKey(t *testing.T) {
	mr, txm, locker := newTestLocker(t, 150*time.Millisecond)
	require.NoError(t, mr.Set("waqf:rules:7", "held-elsewhere"))

	err := locker.WithWaqfLock(context.Background(), 7, func(ctx context.Context) error {
		t.Fatal("fn must not run without the lock")
		return nil
	})
	assert.ErrorIs(t, err, ErrLockNotObtained)
	assert.Zero(t, txm.calls)

	// Other waqfs are unaffected.
	err = locker.WithWaqfLock(context.Background(), 8, func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
}
