package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxCallerID extracts the caller identity injected by the Auth
// middleware. Its presence proves the middleware ran; without it the
// request must not reach any resource-scoped operation.
func ctxCallerID(c echo.Context) (int64, error) {
	userID, _ := c.Get("user_id").(int64)
	if userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// ctxToken extracts the bearer token's id and expiry for logout.
func ctxToken(c echo.Context) (tokenID string, expiresAt time.Time, err error) {
	tokenID, _ = c.Get("token_id").(string)
	if tokenID == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	expiresAt, _ = c.Get("token_exp").(time.Time)
	return tokenID, expiresAt, nil
}
