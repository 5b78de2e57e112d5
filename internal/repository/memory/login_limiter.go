package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	maxLoginAttempts = 6
	attemptWindow    = 10 * time.Minute
	blockDuration    = 15 * time.Minute
)

type attemptRecord struct {
	Count        int
	WindowStart  time.Time
	BlockedUntil time.Time
}

// LoginLimiter throttles credential guessing. Attempts are keyed by
// "ip:identifier" so one address cannot lock out a user from
// everywhere, and one user cannot be hammered from one address.
type LoginLimiter struct {
	cache *cache.Cache
}

func NewLoginLimiter() *LoginLimiter {
	c := cache.New(blockDuration, 5*time.Minute)
	return &LoginLimiter{
		cache: c,
	}
}

// Blocked reports whether key is currently locked out and, if so, for
// how much longer.
func (l *LoginLimiter) Blocked(key string) (bool, time.Duration) {
	x, found := l.cache.Get(key)
	if !found {
		return false, 0
	}
	rec := x.(*attemptRecord)
	if remaining := time.Until(rec.BlockedUntil); remaining > 0 {
		return true, remaining
	}
	return false, 0
}

// RecordFailure counts a failed attempt and starts a block once the
// limit is reached inside the window.
func (l *LoginLimiter) RecordFailure(key string) {
	now := time.Now()

	var rec *attemptRecord
	if x, found := l.cache.Get(key); found {
		rec = x.(*attemptRecord)
		if now.Sub(rec.WindowStart) > attemptWindow {
			rec = &attemptRecord{WindowStart: now}
		}
	} else {
		rec = &attemptRecord{WindowStart: now}
	}

	rec.Count++
	if rec.Count >= maxLoginAttempts {
		rec.BlockedUntil = now.Add(blockDuration)
	}

	l.cache.Set(key, rec, blockDuration+attemptWindow)
}

// RecordSuccess clears the attempt history after a good login.
func (l *LoginLimiter) RecordSuccess(key string) {
	l.cache.Delete(key)
}
