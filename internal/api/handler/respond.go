package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform response shape on every endpoint: success and
// error paths share it, differing only in the success flag and the
// populated side (data vs errors).
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    any                 `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}
