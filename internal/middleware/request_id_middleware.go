// internal/middleware/request_id_middleware.go
package middleware

import (
	"campus-portal/internal/pkg/requestid"

	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware assigns a ULID to every request, honoring an inbound
// X-Request-ID when present. The id rides the request context so the API
// client forwards it upstream.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestid.Header)
		if rid == "" {
			rid = requestid.New()
		}
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), rid))
		c.Writer.Header().Set(requestid.Header, rid)
		c.Set(requestIDKey, rid)
		c.Next()
	}
}
