package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle is a Redis-backed sliding-window counter of failed login
// attempts per email. Only failures consume the budget; once the limit is
// reached every further attempt in the window is rejected regardless of
// credential correctness.
//
// The throttle is best-effort: with no Redis client (or a Redis error) it
// fails open and never blocks a login.
type LoginThrottle struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing `limit` failures per `window`.
func NewLoginThrottle(rdb *redis.Client, limit int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{rdb: rdb, limit: limit, window: window}
}

func (t *LoginThrottle) key(email string) string {
	return "throttle:failed_login:" + email
}

// Blocked reports whether login attempts for this email must be rejected.
func (t *LoginThrottle) Blocked(ctx context.Context, email string) bool {
	if t == nil || t.rdb == nil {
		return false
	}
	n, err := t.rdb.Get(ctx, t.key(email)).Int64()
	if err != nil {
		// redis.Nil (no failures yet) or backend error: fail open.
		return false
	}
	return n >= int64(t.limit)
}

// RecordFailure counts a failed attempt, starting the window on the first one.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if t == nil || t.rdb == nil {
		return
	}
	key := t.key(email)
	cnt, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if cnt == 1 {
		t.rdb.Expire(ctx, key, t.window)
	}
}
