package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEquals removes key only while it still holds value.
	DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error)
}
