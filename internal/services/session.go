package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SessionCacheTTL is how long a validated token is trusted without
	// re-asking the provider
	SessionCacheTTL = 5 * time.Minute
	// SessionKeyPrefix is the Redis key prefix for cached sessions
	SessionKeyPrefix = "session:"
)

// UserResolver resolves a bearer token to a user at the identity provider.
type UserResolver interface {
	GetUser(ctx context.Context, token string) (AuthUser, bool, error)
}

// SessionCache validates bearer tokens against the identity provider and
// keeps a short-lived Redis cache in front of it, so every request does not
// turn into a provider round trip.
type SessionCache struct {
	rdb      *redis.Client
	provider UserResolver
}

func NewSessionCache(rdb *redis.Client, provider UserResolver) *SessionCache {
	return &SessionCache{rdb: rdb, provider: provider}
}

// Validate checks a session token and returns the user it belongs to.
func (s *SessionCache) Validate(ctx context.Context, token string) (AuthUser, bool, error) {
	if token == "" {
		return AuthUser{}, false, nil
	}

	sessionKey := SessionKeyPrefix + token

	// Cache hit: trust it for the TTL
	if val, err := s.rdb.Get(ctx, sessionKey).Result(); err == nil {
		var user AuthUser
		if err := json.Unmarshal([]byte(val), &user); err == nil {
			return user, true, nil
		}
		// Corrupt entry, drop it and fall through to the provider
		s.rdb.Del(ctx, sessionKey)
	}

	user, ok, err := s.provider.GetUser(ctx, token)
	if err != nil || !ok {
		return AuthUser{}, false, err
	}

	// Cache failures are not fatal; the provider already answered
	if data, err := json.Marshal(user); err == nil {
		s.rdb.Set(ctx, sessionKey, data, SessionCacheTTL)
	}

	return user, true, nil
}

// Invalidate drops the cached session so a signed-out token stops working
// immediately instead of at TTL expiry.
func (s *SessionCache) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, SessionKeyPrefix+token).Err()
}
