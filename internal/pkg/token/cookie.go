package token

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieStore binds token persistence to one request/response pair. Reads come
// from the request's Cookie header, writes become Set-Cookie on the response.
type CookieStore struct {
	c      *gin.Context
	secure bool

	// pending mirrors what we wrote this request, so a Set followed by a Get
	// within the same request observes the new value.
	pending    string
	hasPending bool
}

// NewCookieStore wraps the given request context. secure controls the Secure
// cookie flag and should be true outside local development.
func NewCookieStore(c *gin.Context, secure bool) *CookieStore {
	return &CookieStore{c: c, secure: secure}
}

func (s *CookieStore) Get() (string, bool) {
	if s.hasPending {
		if s.pending == "" {
			return "", false
		}
		return s.pending, true
	}
	val, err := s.c.Cookie(CookieName)
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func (s *CookieStore) Set(token string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", s.secure, true)
	s.pending = token
	s.hasPending = true
}

func (s *CookieStore) Remove() {
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
	s.pending = ""
	s.hasPending = true
}
