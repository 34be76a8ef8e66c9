package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

// Context keys set by the auth middleware.
const (
	CtxSessionID = "session_id"
	CtxUserID    = "user_id"
	CtxUserRole  = "role"
)

// Auth validates the bearer token and the server-side session it points at,
// then injects the identity into context. A token whose session was deleted
// (logout) or expired is rejected even when its signature is still valid.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := resolveIdentity(c, jwtSecret, sessions); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// OptionalAuth resolves the identity when a bearer token is present but lets
// anonymous requests through. Used on list endpoints whose content is
// filtered by role rather than gated outright.
func OptionalAuth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "" {
				if err := resolveIdentity(c, jwtSecret, sessions); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, jwtSecret string, sessions ports.SessionStore) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
	}

	session, err := sessions.Get(c.Request().Context(), sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
	}
	if !session.Valid() {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
	}

	c.Set(CtxSessionID, sessionID)
	c.Set(CtxUserID, session.UserID)
	c.Set(CtxUserRole, session.UserRole)

	return nil
}
