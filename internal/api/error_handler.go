package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/task-api/internal/core/domain"
)

// errorEnvelope mirrors the success envelope with success:false and a
// populated errors object.
type errorEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the same envelope shape as success responses.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, fields := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg, Errors: fields})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, map[string][]string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Field-level validation failures → 422 with the field map.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, "The given data was invalid", ve.Fields
	}

	// Known domain errors → deterministic HTTP codes. Invalid credentials
	// stay field-agnostic, and the not-found message never says whether
	// the task exists under another owner.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnprocessableEntity, "Invalid credentials",
			map[string][]string{"general": {"Invalid credentials"}}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusUnprocessableEntity, "The given data was invalid",
			map[string][]string{"email": {"The email has already been taken"}}
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found or does not belong to user", nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong",
		map[string][]string{"general": {"Something went wrong"}}
}
