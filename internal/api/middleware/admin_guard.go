package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jass-platform/distribution-service/internal/core/ports"
)

// AdminGuard allows a request through only when the authenticated user is
// an authorized administrator of the organization addressed by the route's
// :organizationId parameter. The membership check is delegated to the users
// service and is fail-closed: if the upstream cannot be reached, times out,
// or answers with anything unexpected, the request is denied.
func AdminGuard(orgs ports.OrganizationService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			organizationID := c.Param("organizationId")
			if organizationID == "" {
				return echo.NewHTTPError(http.StatusForbidden, "missing organization")
			}

			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if !orgs.IsAuthorizedAdmin(c.Request().Context(), organizationID, userID) {
				return echo.NewHTTPError(http.StatusForbidden, "not an authorized administrator")
			}

			return next(c)
		}
	}
}
