package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/request"
	"task-manager-service/internal/response"
	"task-manager-service/internal/service"

	"github.com/go-playground/validator/v10"
)

type TaskService interface {
	Create(ctx context.Context, caller *domain.UserInfo, input service.CreateTaskInput) (*domain.Task, error)
	Toggle(ctx context.Context, caller *domain.UserInfo, taskID string) (*domain.Task, error)
	Delete(ctx context.Context, caller *domain.UserInfo, taskID string) error
	AddComment(ctx context.Context, caller *domain.UserInfo, taskID, content string) (*domain.Comment, error)
	List(ctx context.Context, caller *domain.UserInfo, view, filter, teamID, projectID string) ([]domain.Task, error)
}

type TaskHandler struct {
	service   TaskService
	validator *validator.Validate
}

func NewTaskHandler(service TaskService, validator *validator.Validate) *TaskHandler {
	return &TaskHandler{
		service:   service,
		validator: validator,
	}
}

// Create godoc
// @Summary Create a task
// @Description Create a task owned by the caller; premium gated when the paywall is enabled
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTaskRequest true "Task creation request"
// @Success 201 {object} response.TaskResponse "Task created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Premium required or subscription expired"
// @Router /task/create [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	var req request.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	task, err := h.service.Create(r.Context(), caller, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
		TeamID:      req.TeamID,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.TaskResponse{Task: mapper.MapDomainTaskToDTO(task)})
}

// Toggle godoc
// @Summary Toggle task completion
// @Description Flip the completion flag; only the creator may do this
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ToggleTaskRequest true "Toggle request"
// @Success 200 {object} response.TaskResponse "Task updated"
// @Failure 403 {object} dto.ErrorResponse "Not the task creator"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /task/toggle [post]
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	var req request.ToggleTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	task, err := h.service.Toggle(r.Context(), caller, req.TaskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TaskResponse{Task: mapper.MapDomainTaskToDTO(task)})
}

// Delete godoc
// @Summary Delete a task
// @Description Remove the task; only the creator may do this
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.DeleteTaskRequest true "Delete request"
// @Success 200 {object} map[string]string "Task deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the task creator"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /task/delete [post]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	var req request.DeleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), caller, req.TaskID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddComment godoc
// @Summary Comment on a task
// @Description Append a comment; @mentions are extracted from the content. Blank content is a no-op
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.AddCommentRequest true "Comment request"
// @Success 200 {object} response.CommentResponse "Comment appended (null for a no-op)"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /task/comment [post]
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	var req request.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	comment, err := h.service.AddComment(r.Context(), caller, req.TaskID, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.CommentResponse{}
	if comment != nil {
		c := mapper.MapDomainCommentToDTO(comment)
		resp.Comment = &c
	}
	respondJSON(w, http.StatusOK, resp)
}

// List godoc
// @Summary List tasks for a view and filter
// @Description Pure projection over the task collection; view is one of personal/shared/all, filter one of all/active/completed/assigned-to-me/created-by-me
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param view query string false "View selector" default(all)
// @Param filter query string false "Secondary filter" default(all)
// @Param team_id query string false "Team scope for the shared view"
// @Param project_id query string false "Project scope within the team"
// @Success 200 {object} response.TaskListResponse "Tasks"
// @Failure 400 {object} dto.ErrorResponse "Unknown view or filter"
// @Router /task/list [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	q := r.URL.Query()
	tasks, err := h.service.List(r.Context(), caller, q.Get("view"), q.Get("filter"), q.Get("team_id"), q.Get("project_id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.TaskListResponse{
		Tasks: mapper.MapDomainTasksToDTO(tasks),
		Count: len(tasks),
	}
	respondJSON(w, http.StatusOK, resp)
}
