package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"task-manager-service/internal/dto"
	"task-manager-service/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondServiceError maps the sentinel error taxonomy onto HTTP statuses
// and stable error codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrEmptyField), errors.Is(err, my_errors.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	case errors.Is(err, my_errors.ErrInvalidCredentials),
		errors.Is(err, my_errors.ErrNotAuthenticated),
		errors.Is(err, my_errors.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, err.Error())
	case errors.Is(err, my_errors.ErrSessionExpired):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeSessionExpired, err.Error())
	case errors.Is(err, my_errors.ErrPremiumRequired):
		respondError(w, http.StatusForbidden, dto.ErrCodePremiumRequired, err.Error())
	case errors.Is(err, my_errors.ErrSubscriptionExpired):
		respondError(w, http.StatusForbidden, dto.ErrCodeSubscriptionExpired, err.Error())
	case errors.Is(err, my_errors.ErrNotTaskCreator), errors.Is(err, my_errors.ErrNotTeamMember):
		respondError(w, http.StatusForbidden, dto.ErrCodeForbidden, err.Error())
	case errors.Is(err, my_errors.ErrTaskNotFound),
		errors.Is(err, my_errors.ErrTeamNotFound),
		errors.Is(err, my_errors.ErrUserNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
	}
}
