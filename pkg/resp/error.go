package resp

import (
	"errors"
	"net/http"

	"sponsor_backend/internal/model"
)

// WriteServiceError - переводит ошибку сервиса в HTTP статус.
// Детали внутренних ошибок и ошибок аутентификации раскрываются только при debug
func WriteServiceError(w http.ResponseWriter, err error, debug bool) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUnauthenticated):
		WriteError(w, http.StatusUnauthorized, model.ErrUnauthenticated.Error())
	case errors.Is(err, model.ErrAuthenticationFailed):
		message := model.ErrAuthenticationFailed.Error()
		if debug {
			message = err.Error()
		}
		WriteError(w, http.StatusForbidden, message)
	case errors.Is(err, model.ErrForbidden):
		WriteError(w, http.StatusForbidden, err.Error())
	default:
		message := "internal server error"
		if debug {
			message = err.Error()
		}
		WriteError(w, http.StatusInternalServerError, message)
	}
}
