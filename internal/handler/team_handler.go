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

	"github.com/go-playground/validator/v10"
)

type TeamService interface {
	CreateTeam(ctx context.Context, caller *domain.UserInfo, name, description string) (*domain.Team, error)
	CreateProject(ctx context.Context, caller *domain.UserInfo, teamID, name, description, color string) (*domain.Project, error)
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context, caller *domain.UserInfo) ([]domain.Team, error)
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Create a team
// @Description Create a team with the caller as sole owner-member and a default "General" project
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} response.TeamResponse "Team created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Premium required"
// @Router /team/add [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.CreateTeam(r.Context(), caller, req.Name, req.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.TeamResponse{Team: mapper.MapDomainTeamToDTO(team)})
}

// CreateProject godoc
// @Summary Add a project to a team
// @Description Append a project to the selected team; without a team selection this is a no-op
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateProjectRequest true "Project creation request"
// @Success 201 {object} response.ProjectResponse "Project created"
// @Success 204 "No team selected"
// @Failure 403 {object} dto.ErrorResponse "Not a team member"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /project/create [post]
func (h *TeamHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	var req request.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	project, err := h.service.CreateProject(r.Context(), caller, req.TeamID, req.Name, req.Description, req.Color)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if project == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	p := mapper.MapDomainProjectToDTO(project)
	respondJSON(w, http.StatusCreated, response.ProjectResponse{Project: &p})
}

// GetTeam godoc
// @Summary Get a team by id
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param team_id query string true "Team id"
// @Success 200 {object} response.TeamResponse "Team"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /team/get [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "team_id query parameter is required")
		return
	}

	team, err := h.service.GetTeam(r.Context(), teamID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{Team: mapper.MapDomainTeamToDTO(team)})
}

// ListTeams godoc
// @Summary List the caller's teams
// @Description Membership view over the team list
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.TeamListResponse "Teams"
// @Router /team/list [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeAuthRequired, "not authenticated")
		return
	}

	teams, err := h.service.ListTeams(r.Context(), caller)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.TeamListResponse{
		Teams: mapper.MapDomainTeamsToDTO(teams),
		Count: len(teams),
	}
	respondJSON(w, http.StatusOK, resp)
}
