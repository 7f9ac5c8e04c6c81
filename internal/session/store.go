// internal/session/store.go
package session

import (
	"context"
	"sync"
	"time"

	"campus-portal/internal/domain/auth"
	"campus-portal/internal/pkg/token"

	"go.uber.org/zap"
)

// Store owns the session lifecycle: Init (restore), Login, Logout, Teardown.
// All network work is delegated to the AuthAPI; the store's own side effects
// are limited to the token persistence it was given.
type Store struct {
	mu          sync.Mutex
	api         AuthAPI
	tokens      token.Store
	cache       *IdentityCache
	logger      *zap.Logger
	sess        Session
	initialized bool
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithIdentityCache lets restore consult a shared cache before calling the
// upstream current-user endpoint.
func WithIdentityCache(cache *IdentityCache) Option {
	return func(s *Store) { s.cache = cache }
}

func NewStore(api AuthAPI, tokens token.Store, opts ...Option) *Store {
	s := &Store{
		api:    api,
		tokens: tokens,
		logger: zap.NewNop(),
		sess:   Session{Loading: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init attempts to restore the session from the persisted token. It resolves
// exactly once: Loading transitions true to false and never flips back. With
// no persisted token it resolves unauthenticated without any network call.
// A persisted token is untrusted until revalidated; validation failure of any
// kind leaves the same end state as having no token at all.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	defer func() {
		s.sess.Loading = false
		s.initialized = true
	}()

	raw, ok := s.tokens.Get()
	if !ok {
		return nil
	}
	if token.Expired(raw) {
		s.logger.Debug("persisted token already expired, discarding")
		s.tokens.Remove()
		return nil
	}

	// Provisional until the identity is confirmed.
	s.sess.Token = raw
	ctx = token.NewContext(ctx, s.tokens)

	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, raw); ok {
			s.sess.User = user
			return nil
		}
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn("failed to restore session from persisted token", zap.Error(err))
		s.sess = Session{}
		s.tokens.Remove()
		if s.cache != nil {
			s.cache.Invalidate(ctx, raw)
		}
		return nil
	}

	s.sess.User = user
	if s.cache != nil {
		s.cache.Put(ctx, raw, user)
	}
	return nil
}

// Login authenticates against the upstream and, on success, atomically sets
// token and identity and persists the token. On failure nothing is mutated
// and the error propagates to the caller.
func (s *Store) Login(ctx context.Context, creds auth.Credentials) error {
	ctx = token.NewContext(ctx, s.tokens)
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	ttl := token.DefaultTTL
	if exp, ok := token.ExpiresAt(resp.Token); ok {
		if until := time.Until(exp); until > 0 && until < ttl {
			ttl = until
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{Token: resp.Token, User: resp.User()}
	s.initialized = true
	s.tokens.Set(resp.Token, ttl)
	if s.cache != nil {
		s.cache.Put(ctx, resp.Token, s.sess.User)
	}
	return nil
}

// Logout notifies the upstream best-effort, then unconditionally clears the
// in-memory state and the persisted token. Calling it when already logged
// out is a harmless no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	raw := s.sess.Token
	s.mu.Unlock()

	if raw != "" {
		ctx := token.NewContext(ctx, s.tokens)
		if err := s.api.Logout(ctx); err != nil {
			s.logger.Warn("upstream logout failed, clearing local session anyway", zap.Error(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
	s.initialized = true
	s.tokens.Remove()
	if s.cache != nil && raw != "" {
		s.cache.Invalidate(ctx, raw)
	}
}

// Teardown drops the in-memory state without touching persistence. Meant for
// shutdown paths; the persisted token survives for the next restore.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
}

// Snapshot returns the current session as a value. Consumers never see the
// store's internals mid-mutation.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}
