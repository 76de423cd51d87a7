package auth

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

// sessions are cached in-process for a minute, to save a redis
// round trip on every authenticated request
const sessionCacheExpirySeconds = 60

// LoginChecker resolves a session token to the logged in user,
// with a small freecache layer above redis.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	cache       *freecache.Cache
}

func NewLoginChecker(
	ttl time.Duration,
	redisClient *redis.Client,
	cache *freecache.Cache,
) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		cache:       cache,
	}
}

// LoggedUserID returns the ID of the user holding the given session token,
// or ErrNotLoggedIn when the token is unknown or the session expired.
func (lc *LoginChecker) LoggedUserID(ctx context.Context, token string) (int, error) {
	if lc.cache != nil {
		if cachedVal, err := lc.cache.Get([]byte(token)); err == nil {
			userID, createdAt, err := parseSessionValue(string(cachedVal))
			if err == nil && time.Since(createdAt) <= lc.ttl {
				return userID, nil
			}
		}
	}

	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > lc.ttl {
		return 0, ErrNotLoggedIn
	}

	if lc.cache != nil {
		// best effort, the authoritative state lives in redis
		_ = lc.cache.Set([]byte(token), []byte(cmd.Val()), sessionCacheExpirySeconds)
	}

	return userID, nil
}
