// internal/middleware/session_middleware.go
package middleware

import (
	"campus-portal/internal/pkg/token"
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionMiddleware restores a session for every request from the browser's
// token cookie. Each request gets its own cookie-bound store, so downstream
// handlers and the route guard only ever read an immutable snapshot.
type SessionMiddleware struct {
	api          session.AuthAPI
	cache        *session.IdentityCache
	cookieSecure bool
	logger       *zap.Logger
}

func NewSessionMiddleware(api session.AuthAPI, cache *session.IdentityCache, cookieSecure bool, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		api:          api,
		cache:        cache,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Restore runs the boot-time restore for the request: read the cookie, and if
// a token is present revalidate it (cache first, upstream second). The
// request context carries the cookie-bound token store so every upstream call
// made while serving this request reads and clears the same cookie.
func (m *SessionMiddleware) Restore() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokens := token.NewCookieStore(c, m.cookieSecure)
		c.Request = c.Request.WithContext(token.NewContext(c.Request.Context(), tokens))

		opts := []session.Option{session.WithLogger(m.logger)}
		if m.cache != nil {
			opts = append(opts, session.WithIdentityCache(m.cache))
		}
		store := session.NewStore(m.api, tokens, opts...)

		// Init never fails the request: a dead token just leaves an
		// unauthenticated session and a cleared cookie.
		if err := store.Init(c.Request.Context()); err != nil {
			m.logger.Error("session restore errored", zap.Error(err))
		}

		c.Set(sessionStoreKey, store)
		c.Set(sessionKey, store.Snapshot())
		c.Next()
	}
}
