// internal/middleware/helpers.go
package middleware

import (
	"campus-portal/internal/domain/auth"
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey      = "session"
	sessionStoreKey = "session_store"
	requestIDKey    = "request_id"
)

// GetSession returns the session snapshot restored for this request. Before
// the session middleware has run it reports a still-loading session.
func GetSession(c *gin.Context) session.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return session.Session{Loading: true}
	}
	sess, ok := v.(session.Session)
	if !ok {
		return session.Session{Loading: true}
	}
	return sess
}

// GetSessionStore returns the request's session store for mutations
// (login/logout handlers).
func GetSessionStore(c *gin.Context) (*session.Store, bool) {
	v, exists := c.Get(sessionStoreKey)
	if !exists {
		return nil, false
	}
	store, ok := v.(*session.Store)
	return store, ok
}

// CurrentUser returns the authenticated identity, if any.
func CurrentUser(c *gin.Context) (*auth.User, bool) {
	sess := GetSession(c)
	if sess.User == nil {
		return nil, false
	}
	return sess.User, true
}

// IsAuthenticated checks if the request carries a validated identity.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := CurrentUser(c)
	return ok
}

// GetRequestID returns the correlation id assigned to this request.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
