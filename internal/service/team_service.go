package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/google/uuid"
)

type TeamService struct {
	repo        TeamRepository
	payments    Entitlements
	premiumGate bool
	now         func() time.Time
	newID       func() string
}

func NewTeamService(repo TeamRepository, payments Entitlements, premiumGate bool) *TeamService {
	return &TeamService{
		repo:        repo,
		payments:    payments,
		premiumGate: premiumGate,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CreateTeam produces a team with the caller as its sole owner-member and
// one default "General" project. Each entity gets its own generated
// identifier; nothing is derived from timestamps.
func (s *TeamService) CreateTeam(ctx context.Context, caller *domain.UserInfo, name, description string) (*domain.Team, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name: %w", my_errors.ErrEmptyField)
	}

	if s.premiumGate {
		if err := s.payments.RequirePremium(ctx, caller.ID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	teamID := s.newID()
	team := &domain.Team{
		ID:          teamID,
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     caller.ID,
		CreatedAt:   now,
		Members: []domain.TeamMember{
			{
				UserID:   caller.ID,
				Info:     caller.Author(),
				Role:     domain.RoleOwner,
				JoinedAt: now,
			},
		},
		Projects: []domain.Project{
			{
				ID:        s.newID(),
				Name:      domain.DefaultProjectName,
				TeamID:    teamID,
				CreatedBy: caller.ID,
				CreatedAt: now,
				Status:    domain.ProjectStatusActive,
			},
		},
	}

	if err := s.repo.InsertTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to insert team: %w", err)
	}

	return team, nil
}

// CreateProject appends a project to the team. An empty team id means no
// team is selected and the call is a no-op.
func (s *TeamService) CreateProject(ctx context.Context, caller *domain.UserInfo, teamID, name, description, color string) (*domain.Project, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	if teamID == "" {
		return nil, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name: %w", my_errors.ErrEmptyField)
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !team.HasMember(caller.ID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotTeamMember)
	}

	project := domain.Project{
		ID:          s.newID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		TeamID:      team.ID,
		CreatedBy:   caller.ID,
		CreatedAt:   s.now(),
		Color:       color,
		Status:      domain.ProjectStatusActive,
	}

	team.Projects = append(team.Projects, project)
	if err := s.repo.UpdateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	return &project, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team id: %w", my_errors.ErrEmptyField)
	}

	team, err := s.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	return team, nil
}

// ListTeams returns the caller's membership view over the canonical team
// list.
func (s *TeamService) ListTeams(ctx context.Context, caller *domain.UserInfo) ([]domain.Team, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		if t.HasMember(caller.ID) {
			mine = append(mine, t)
		}
	}
	return mine, nil
}
