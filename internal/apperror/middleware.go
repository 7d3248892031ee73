package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)

		var appErr *AppError
		if err != nil {
			if errors.As(err, &appErr) {
				w.WriteHeader(StatusCode(err))
				w.Write(appErr.Marshal())

				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			w.Write(InternalError("").Marshal())
		}
	}
}

// StatusCode maps an error to the HTTP status it is rendered with.
func StatusCode(err error) int {
	var appErr *AppError

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrCreditsDepleted):
		return http.StatusPaymentRequired
	case errors.As(err, &appErr) && appErr.Code == CodeInternalError:
		return http.StatusInternalServerError
	case errors.As(err, &appErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
