package middleware

import (
	"net/http"
	"strings"

	"github.com/Madhav-Gupta-28/bazar-backend-go/metrics"
	"github.com/Madhav-Gupta-28/bazar-backend-go/utils"
	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// SessionVerifier checks a session token and returns its claims.
type SessionVerifier interface {
	ParseSessionToken(token string) (*utils.SessionClaims, error)
}

// IsAuth rejects requests without a valid session token. The scheme in
// "Authorization: <scheme> <token>" is not checked; only the token is.
func IsAuth(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejections.WithLabelValues(metrics.ReasonMissingHeader).Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Authorization header is required",
				})
			}

			var token string
			if parts := strings.Fields(authHeader); len(parts) >= 2 {
				token = parts[1]
			}

			claims, err := verifier.ParseSessionToken(token)
			if err != nil {
				metrics.AuthRejections.WithLabelValues(metrics.ReasonInvalidToken).Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Invalid or expired token",
				})
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the claims IsAuth attached, or nil.
func CurrentUser(c echo.Context) *utils.SessionClaims {
	claims, _ := c.Get(userContextKey).(*utils.SessionClaims)
	return claims
}
