package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

// writeError maps the error taxonomy to HTTP statuses: validation and
// malformed ids → 400, missing records → 404, anything else → 500 with
// the error's message.
func writeError(c echo.Context, log *slog.Logger, err error, notFoundMsg string) error {
	var vErr *dashboard.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, Message{Message: vErr.Error()})
	case errors.Is(err, dashboard.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, Message{Message: "Invalid ID"})
	case errors.Is(err, dashboard.ErrNotFound):
		return c.JSON(http.StatusNotFound, Message{Message: notFoundMsg})
	default:
		log.Error("request failed", "error", err, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, Message{Message: err.Error()})
	}
}
