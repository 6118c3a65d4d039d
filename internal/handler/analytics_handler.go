package handler

import (
	"context"
	"fmt"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/response"
)

type AnalyticsService interface {
	Summary(ctx context.Context, caller *domain.UserInfo) (*domain.Analytics, error)
	Export(ctx context.Context, caller *domain.UserInfo, format string) ([]byte, string, error)
}

type AnalyticsHandler struct {
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Summary godoc
// @Summary Get the caller's productivity summary
// @Description Aggregate counts over the caller's tasks and teams
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AnalyticsResponse "Summary"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /analytics [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	summary, err := h.service.Summary(r.Context(), caller)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.AnalyticsResponse{Analytics: mapper.MapDomainAnalyticsToDTO(summary)})
}

// Export godoc
// @Summary Export the productivity summary
// @Description Render the summary as json, csv or pdf
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param format query string false "Export format" default(json)
// @Success 200 {file} file "Rendered report"
// @Failure 400 {object} dto.ErrorResponse "Unknown format"
// @Router /analytics/export [get]
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	format := r.URL.Query().Get("format")
	data, contentType, err := h.service.Export(r.Context(), caller, format)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}
