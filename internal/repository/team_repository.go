package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

// TeamRepository owns the canonical team list persisted in the all-teams
// slot. The caller's team membership view is computed by the service layer.
type TeamRepository struct {
	store *SlotStore
}

func NewTeamRepository(store *SlotStore) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams := []domain.Team{}
	if _, err := r.store.Get(ctx, SlotAllTeams, &teams); err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) InsertTeam(ctx context.Context, team *domain.Team) error {
	teams, err := r.ListTeams(ctx)
	if err != nil {
		return err
	}

	for _, t := range teams {
		if t.ID == team.ID {
			return nil
		}
	}

	teams = append([]domain.Team{*team}, teams...)
	return r.store.Put(ctx, SlotAllTeams, teams)
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	teams, err := r.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].ID == teamID {
			return &teams[i], nil
		}
	}
	return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, team *domain.Team) error {
	teams, err := r.ListTeams(ctx)
	if err != nil {
		return err
	}

	for i := range teams {
		if teams[i].ID == team.ID {
			teams[i] = *team
			return r.store.Put(ctx, SlotAllTeams, teams)
		}
	}
	return fmt.Errorf("%w", my_errors.ErrTeamNotFound)
}
