package handler

import (
	"context"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/response"
)

type PaymentService interface {
	Subscribe(ctx context.Context, userID string) (domain.PaymentState, error)
	Status(ctx context.Context, userID string) (domain.PaymentState, error)
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Subscribe godoc
// @Summary Run the simulated payment flow
// @Description Complete the fake checkout and activate a 30-day premium subscription
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.PaymentResponse "Subscription active"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /payment/subscribe [post]
func (h *PaymentHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	state, err := h.service.Subscribe(r.Context(), caller.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.PaymentResponse{Payment: mapper.MapPaymentStateToDTO(state)})
}

// Status godoc
// @Summary Get the current subscription state
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.PaymentResponse "Subscription state"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /payment/status [get]
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	state, err := h.service.Status(r.Context(), caller.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.PaymentResponse{Payment: mapper.MapPaymentStateToDTO(state)})
}
