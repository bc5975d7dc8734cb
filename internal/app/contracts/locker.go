package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	// Lock retries TryLock until acquired or wait elapses.
	Lock(ctx context.Context, key string, expiration, wait time.Duration) (string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
