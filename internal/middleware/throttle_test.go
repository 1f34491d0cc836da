package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newThrottle(t *testing.T, limit int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLoginThrottle(rdb, limit, window), mr
}

func TestLoginThrottle_BlocksAfterLimit(t *testing.T) {
	throttle, _ := newThrottle(t, 5, 15*time.Minute)
	ctx := context.Background()
	const email = "victim@example.com"

	for i := 0; i < 5; i++ {
		assert.False(t, throttle.Blocked(ctx, email), "attempt %d should still be allowed", i+1)
		throttle.RecordFailure(ctx, email)
	}

	assert.True(t, throttle.Blocked(ctx, email), "sixth attempt is rejected before credential check")
}

func TestLoginThrottle_WindowExpiry(t *testing.T) {
	throttle, mr := newThrottle(t, 2, time.Minute)
	ctx := context.Background()
	const email = "user@example.com"

	throttle.RecordFailure(ctx, email)
	throttle.RecordFailure(ctx, email)
	assert.True(t, throttle.Blocked(ctx, email))

	mr.FastForward(2 * time.Minute)
	assert.False(t, throttle.Blocked(ctx, email), "budget resets once the window passes")
}

func TestLoginThrottle_PerEmailIsolation(t *testing.T) {
	throttle, _ := newThrottle(t, 1, time.Minute)
	ctx := context.Background()

	throttle.RecordFailure(ctx, "a@example.com")
	assert.True(t, throttle.Blocked(ctx, "a@example.com"))
	assert.False(t, throttle.Blocked(ctx, "b@example.com"))
}

func TestLoginThrottle_FailsOpenWithoutRedis(t *testing.T) {
	throttle := NewLoginThrottle(nil, 1, time.Minute)
	ctx := context.Background()

	throttle.RecordFailure(ctx, "a@example.com")
	assert.False(t, throttle.Blocked(ctx, "a@example.com"))
}
