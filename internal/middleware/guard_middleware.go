// internal/middleware/guard_middleware.go
package middleware

import (
	"net/http"

	"campus-portal/internal/domain/auth"
	"campus-portal/internal/guard"
	"campus-portal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Protect gates a route group on the session snapshot. No roles means any
// authenticated user. MUST be used after SessionMiddleware.Restore().
func Protect(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := guard.Evaluate(GetSession(c), roles)
		switch decision.State {
		case guard.StateAllow:
			c.Next()
		case guard.StatePending:
			// Restore resolves before the guard runs, so this only fires if
			// the middleware chain was mis-ordered.
			response.Error(c, http.StatusServiceUnavailable, "session not resolved", nil)
		default:
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
		}
	}
}
