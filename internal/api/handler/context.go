package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran and the session record was intact.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxUserRole).(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// ctxRole returns the viewer role, empty for anonymous requests that passed
// through OptionalAuth without a token.
func ctxRole(c echo.Context) string {
	role, _ := c.Get(middleware.CtxUserRole).(string)
	return role
}

// clientMeta pulls the caller's IP and user agent for the login audit log.
// Extraction is best effort: proxy headers first, then the direct peer.
func clientMeta(c echo.Context) (ip, userAgent string) {
	ip = c.RealIP()
	userAgent = c.Request().UserAgent()
	return ip, userAgent
}
