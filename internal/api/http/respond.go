package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps each domain error kind to a status code so callers can
// tell authorization failures from precondition failures from accounting
// failures.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnknownAccount), errors.Is(err, domain.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, domain.ErrItemNotAvailable),
		errors.Is(err, domain.ErrAlreadyRenting),
		errors.Is(err, domain.ErrOutstandingDebt),
		errors.Is(err, domain.ErrNoActiveRental),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrNoDebt),
		errors.Is(err, domain.ErrClockRegression):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}
