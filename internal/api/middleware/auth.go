package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/task-api/internal/core/ports"
)

// Auth validates the bearer JWT, rejects revoked tokens, and injects the
// caller's identity into context under "user_id", "token_id" and
// "token_exp". Every guarded handler reads the identity from there; no
// global authentication state exists.
func Auth(jwtSecret string, sessions ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || userID <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			// A denylist read failure must not lock every caller out;
			// log it and let the signature check stand alone.
			revoked, err := sessions.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				log.Warn().Err(err).Msg("denylist check failed, accepting token")
			} else if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			c.Set("user_id", userID)
			c.Set("token_id", claims.ID)
			if claims.ExpiresAt != nil {
				c.Set("token_exp", claims.ExpiresAt.Time)
			}

			return next(c)
		}
	}
}
