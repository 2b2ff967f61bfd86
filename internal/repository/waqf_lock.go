package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrLockNotObtained is returned when a waqf lock could not be acquired in time.
var ErrLockNotObtained = errors.New("could not obtain waqf lock, try again")

// WaqfLocker serializes read-check-write sequences on one waqf. fn runs inside a
// transaction; the lock is held until that transaction ends.
type WaqfLocker interface {
	WithWaqfLock(ctx context.Context, govID int64, fn func(txCtx context.Context) error) error
}

func ruleLockKey(govID int64) string {
	return fmt.Sprintf("waqf:rules:%d", govID)
}

type advisoryLocker struct {
	db *gorm.DB
}

// NewAdvisoryLocker uses a transaction-scoped Postgres advisory lock, released at commit or rollback.
func NewAdvisoryLocker(db *gorm.DB) WaqfLocker {
	return &advisoryLocker{db: db}
}

func (l *advisoryLocker) WithWaqfLock(ctx context.Context, govID int64, fn func(txCtx context.Context) error) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", ruleLockKey(govID)).Error; err != nil {
			return fmt.Errorf("failed to acquire advisory lock: %w", err)
		}
		return fn(context.WithValue(ctx, txKey, tx))
	})
}

type redisLocker struct {
	locker *redislock.Client
	txm    TransactionManager
	ttl    time.Duration
	retry  redislock.RetryStrategy
	logger *logrus.Logger
}

// NewRedisLocker serializes across instances through redis; the work itself still runs
// in a database transaction.
func NewRedisLocker(rdb redis.UniversalClient, txm TransactionManager, ttl time.Duration, logger *logrus.Logger) WaqfLocker {
	return &redisLocker{
		locker: redislock.New(rdb),
		txm:    txm,
		ttl:    ttl,
		retry:  redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), int(ttl/(50*time.Millisecond))),
		logger: logger,
	}
}

func (l *redisLocker) WithWaqfLock(ctx context.Context, govID int64, fn func(txCtx context.Context) error) error {
	key := ruleLockKey(govID)
	lock, err := l.locker.Obtain(ctx, key, l.ttl, &redislock.Options{RetryStrategy: l.retry})
	if errors.Is(err, redislock.ErrNotObtained) {
		return ErrLockNotObtained
	} else if err != nil {
		return fmt.Errorf("failed to obtain redis lock: %w", err)
	}
	defer func() {
		if releaseErr := lock.Release(context.WithoutCancel(ctx)); releaseErr != nil && !errors.Is(releaseErr, redislock.ErrLockNotHeld) {
			l.logger.WithFields(logrus.Fields{
				"field":    "WithWaqfLock",
				"lock_key": key,
			}).Warn("failed to release redis lock: " + releaseErr.Error())
		}
	}()

	return l.txm.RunInTx(ctx, fn)
}
