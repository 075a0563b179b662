package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps service sentinel errors to HTTP statuses.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrUnauthorized):
		return Error(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrRateLimited):
		return Error(c, http.StatusTooManyRequests, "rate limited")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}

// Error writes a JSON error response with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
