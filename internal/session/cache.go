// internal/session/cache.go
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"campus-portal/internal/domain/auth"
	"campus-portal/internal/pkg/token"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultIdentityTTL bounds how long a validated identity is served without
// re-asking the upstream.
const DefaultIdentityTTL = 5 * time.Minute

// IdentityCache keeps validated identities in Redis, keyed by a digest of the
// bearer token. It only ever saves a round trip to the upstream current-user
// endpoint; every failure degrades to that round trip.
type IdentityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewIdentityCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *IdentityCache {
	if ttl <= 0 {
		ttl = DefaultIdentityTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdentityCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *IdentityCache) key(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return "portal:identity:" + hex.EncodeToString(sum[:])
}

// Get returns the cached identity for the token, if present.
func (c *IdentityCache) Get(ctx context.Context, raw string) (*auth.User, bool) {
	data, err := c.client.Get(ctx, c.key(raw)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("identity cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var user auth.User
	if err := json.Unmarshal(data, &user); err != nil {
		c.logger.Warn("identity cache entry corrupt, dropping", zap.Error(err))
		c.client.Del(ctx, c.key(raw))
		return nil, false
	}
	return &user, true
}

// Put stores the identity. The TTL never outlives the token itself.
func (c *IdentityCache) Put(ctx context.Context, raw string, user *auth.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	ttl := c.ttl
	if exp, ok := token.ExpiresAt(raw); ok {
		if until := time.Until(exp); until > 0 && until < ttl {
			ttl = until
		}
	}
	if err := c.client.Set(ctx, c.key(raw), data, ttl).Err(); err != nil {
		c.logger.Warn("identity cache write failed", zap.Error(err))
	}
}

// Invalidate drops the entry for the token.
func (c *IdentityCache) Invalidate(ctx context.Context, raw string) {
	if err := c.client.Del(ctx, c.key(raw)).Err(); err != nil {
		c.logger.Warn("identity cache invalidation failed", zap.Error(err))
	}
}
