// internal/pkg/response/upstream.go
package response

import (
	"errors"
	"net/http"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/guard"
	xerrors "campus-portal/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// UpstreamError maps an API client failure onto the portal surface.
// A dead session becomes a navigation to login (the cookie is already
// cleared by the client); an authorization denial keeps the session and
// surfaces as 403; any other upstream status passes through for the calling
// screen to display. Transport failures become 502.
func UpstreamError(c *gin.Context, err error) {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, xerrors.ErrSessionExpired):
		c.Redirect(http.StatusFound, guard.LoginPath)
		c.Abort()
	case errors.Is(err, xerrors.ErrForbidden):
		Forbidden(c, "insufficient permissions")
	case errors.As(err, &apiErr):
		Error(c, apiErr.Status, apiErr.Message, nil)
	default:
		Error(c, http.StatusBadGateway, "upstream request failed", err)
	}
}
