// internal/handlers/nav/nav_handler.go
package nav

import (
	"net/http"

	"campus-portal/internal/domain/auth"
	"campus-portal/internal/middleware"
	"campus-portal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// NavHandler serves the navigation targets the route guard redirects to.
type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Login is the login entry point. An already-authenticated visitor gets
// their identity back so clients can skip the form.
func (h *NavHandler) Login(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		response.Success(c, http.StatusOK, "already authenticated", user)
		return
	}
	response.Success(c, http.StatusOK, "authentication required", nil)
}

// Dashboard routes an authenticated visitor to their role's landing view,
// the way the generic dashboard screen dispatches per role.
func (h *NavHandler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}
	switch user.Role {
	case auth.RoleAdmin:
		c.Redirect(http.StatusFound, "/portal/admin/dashboard")
	case auth.RoleInstructor:
		c.Redirect(http.StatusFound, "/portal/instructor/dashboard")
	case auth.RoleStudent:
		c.Redirect(http.StatusFound, "/portal/student/dashboard")
	default:
		response.Forbidden(c, "unknown role")
	}
}

// Unauthorized is the landing page for authenticated users whose role does
// not cover the screen they asked for. The session stays valid.
func (h *NavHandler) Unauthorized(c *gin.Context) {
	response.Error(c, http.StatusForbidden, "you do not have access to this page", nil)
}
