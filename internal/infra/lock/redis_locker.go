// Package lock provides the per-key lock that serialises redemption attempts.
package lock

import (
	"context"
	"time"

	"perks/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Deletes the key only while it still carries the caller's token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

const keyPrefix = "perks:lock:"

type redisLocker struct {
	client redis.Cmdable
	script *redis.Script
}

// NewRedisLocker creates a RedemptionLocker shared by every instance using the same Redis.
func NewRedisLocker(client redis.Cmdable) service.RedemptionLocker {
	return &redisLocker{
		client: client,
		script: redis.NewScript(releaseScript),
	}
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if err := validate(key, ttl); err != nil {
		return "", false, err
	}

	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, errors.Wrap(err, "redis setnx")
	}

	return token, ok, nil
}

func (l *redisLocker) Release(ctx context.Context, key, token string) error {
	if key == "" || token == "" {
		return nil
	}

	if err := l.script.Run(ctx, l.client, []string{keyPrefix + key}, token).Err(); err != nil {
		return errors.Wrap(err, "redis release lock")
	}

	return nil
}

func validate(key string, ttl time.Duration) error {
	if key == "" {
		return errors.New("lock key is empty")
	}
	if ttl <= 0 {
		return errors.New("lock ttl must be positive")
	}

	return nil
}
