// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"campus-portal/internal/domain/auth"
	"campus-portal/internal/middleware"
	xerrors "campus-portal/internal/pkg/errors"
	"campus-portal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	logger *zap.Logger
}

func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		logger: logger,
	}
}

// Login authenticates against the upstream and persists the token in the
// browser cookie. Credential rejection leaves the session untouched.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	store, ok := middleware.GetSessionStore(c)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "session not initialized", nil)
		return
	}

	if err := store.Login(c.Request.Context(), creds); err != nil {
		h.logger.Warn("login failed",
			zap.String("username", creds.Username),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		// The upstream answers a bad credential with 401; that is a
		// rejection of this attempt, not an expired session.
		if xerrors.Is(err, xerrors.ErrSessionExpired) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.UpstreamError(c, err)
		return
	}

	sess := store.Snapshot()
	h.logger.Info("user logged in",
		zap.String("username", sess.User.Username),
		zap.String("role", string(sess.User.Role)),
	)
	response.Success(c, http.StatusOK, "login successful", sess.User)
}

// Logout clears the session. Upstream acknowledgment is best-effort; local
// state and the cookie are cleared regardless. Safe to call when already
// logged out.
func (h *AuthHandler) Logout(c *gin.Context) {
	store, ok := middleware.GetSessionStore(c)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "session not initialized", nil)
		return
	}

	store.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, "logout successful", nil)
}

// Me returns the identity restored for this request.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}
	response.Success(c, http.StatusOK, "current user", user)
}
