// Package token abstracts where the bearer token for the upstream API lives.
// The portal keeps it in a browser cookie; tests and embedded consumers use the
// in-memory store.
package token

import (
	"context"
	"sync"
	"time"
)

// CookieName is the cookie the browser holds between visits.
const CookieName = "token"

// DefaultTTL bounds how long a persisted token is kept.
const DefaultTTL = 24 * time.Hour

// Store is a minimal key-value persistence surface for the bearer token.
type Store interface {
	// Get returns the persisted token, if any.
	Get() (string, bool)
	// Set persists the token for at most ttl.
	Set(token string, ttl time.Duration)
	// Remove discards the persisted token. Removing an absent token is a no-op.
	Remove()
}

// MemoryStore keeps the token in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", false
	}
	if !m.expiresAt.IsZero() && time.Now().After(m.expiresAt) {
		m.token = ""
		return "", false
	}
	return m.token, true
}

func (m *MemoryStore) Set(token string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	if ttl > 0 {
		m.expiresAt = time.Now().Add(ttl)
	} else {
		m.expiresAt = time.Time{}
	}
}

func (m *MemoryStore) Remove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.expiresAt = time.Time{}
}

type ctxKey struct{}

// NewContext returns a context carrying a request-scoped token store. The API
// client prefers this store over its default, so one shared client can serve
// many concurrent requests each bound to its own cookie.
func NewContext(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the request-scoped store, if one was attached.
func FromContext(ctx context.Context) (Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(Store)
	return s, ok
}
