package dto

import (
	"errors"
	"net/http"

	"workdesk/internal/workspace/app"
	"workdesk/internal/workspace/ports/storage"
)

// StatusFromError подбирает HTTP статус для ошибки уровня приложения.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
