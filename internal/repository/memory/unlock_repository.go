package memory

import (
	"crypto/subtle"
	"time"

	"github.com/patrickmn/go-cache"
)

// UnlockTTL is how long a personal-vault unlock stays valid.
const UnlockTTL = 15 * time.Minute

// UnlockRepository tracks short-lived unlock tokens granting access to
// personal-vault memories. Tokens are opaque and expire server side.
type UnlockRepository struct {
	cache *cache.Cache
}

func NewUnlockRepository() *UnlockRepository {
	// Purge expired unlocks every few minutes.
	c := cache.New(UnlockTTL, 5*time.Minute)
	return &UnlockRepository{
		cache: c,
	}
}

func (r *UnlockRepository) Save(email, token string) {
	r.cache.Set(email, token, cache.DefaultExpiration)
}

// Valid reports whether token is the live unlock token for email,
// using a constant-time comparison.
func (r *UnlockRepository) Valid(email, token string) bool {
	if token == "" {
		return false
	}
	x, found := r.cache.Get(email)
	if !found {
		return false
	}
	stored, ok := x.(string)
	if !ok || len(stored) != len(token) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}

func (r *UnlockRepository) Delete(email string) {
	r.cache.Delete(email)
}
