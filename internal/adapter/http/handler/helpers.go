package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response. Messages are stable strings; storage
// internals never leak to the caller.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Not-found, exists
// and insufficient-funds answer 403, matching the public API contract.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameUser),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidInitialBalance),
		errors.Is(err, domain.ErrTooManyDecimalPlaces):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the stable caller-facing message for err.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return "User already exists"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds"
	case mapDomainError(err) == http.StatusBadRequest:
		return err.Error()
	default:
		return "Internal server error"
	}
}

// writeDomainError maps err to its status and stable message. Details are
// suppressed for internal errors so storage internals never reach the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	status := mapDomainError(err)
	details := ""
	if status != http.StatusInternalServerError {
		details = err.Error()
	}
	writeError(w, status, errorMessage(err), details)
}

// parseUserIDParam parses the {userId} URL parameter.
func parseUserIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "userId")

	return strconv.ParseInt(raw, 10, 64)
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
