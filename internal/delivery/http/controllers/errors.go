package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// writeDomainError maps a service error to the API error taxonomy. Unmapped
// errors are logged and surfaced as 500 internal_error.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrQuotaExceeded):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeQuotaExceeded, domain.ErrQuotaExceeded.Error())
	case errors.Is(err, domain.ErrFeatureGated):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeFeatureGated, domain.ErrFeatureGated.Error())
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, domain.ErrForbidden.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrUserNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
