package service

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

// In-memory repositories with the same contract as the slot-backed ones.

type fakeTaskRepo struct {
	tasks []domain.Task
}

func (r *fakeTaskRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *fakeTaskRepo) InsertTask(ctx context.Context, task *domain.Task) error {
	for _, t := range r.tasks {
		if t.ID == task.ID {
			return nil
		}
	}
	r.tasks = append([]domain.Task{*task}, r.tasks...)
	return nil
}

func (r *fakeTaskRepo) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == taskID {
			copied := t
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w", my_errors.ErrTaskNotFound)
}

func (r *fakeTaskRepo) UpdateTask(ctx context.Context, task *domain.Task) error {
	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			r.tasks[i] = *task
			return nil
		}
	}
	return fmt.Errorf("%w", my_errors.ErrTaskNotFound)
}

func (r *fakeTaskRepo) DeleteTask(ctx context.Context, taskID string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == taskID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w", my_errors.ErrTaskNotFound)
}

type fakeTeamRepo struct {
	teams []domain.Team
}

func (r *fakeTeamRepo) ListTeams(ctx context.Context) ([]domain.Team, error) {
	out := make([]domain.Team, len(r.teams))
	copy(out, r.teams)
	return out, nil
}

func (r *fakeTeamRepo) InsertTeam(ctx context.Context, team *domain.Team) error {
	for _, t := range r.teams {
		if t.ID == team.ID {
			return nil
		}
	}
	r.teams = append([]domain.Team{*team}, r.teams...)
	return nil
}

func (r *fakeTeamRepo) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	for _, t := range r.teams {
		if t.ID == teamID {
			copied := t
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
}

func (r *fakeTeamRepo) UpdateTeam(ctx context.Context, team *domain.Team) error {
	for i := range r.teams {
		if r.teams[i].ID == team.ID {
			r.teams[i] = *team
			return nil
		}
	}
	return fmt.Errorf("%w", my_errors.ErrTeamNotFound)
}

type fakeAuthRepo struct {
	states map[string]domain.AuthState
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{states: make(map[string]domain.AuthState)}
}

func (r *fakeAuthRepo) GetAuthState(ctx context.Context, userID string) (domain.AuthState, error) {
	return r.states[userID], nil
}

func (r *fakeAuthRepo) SaveAuthState(ctx context.Context, userID string, state domain.AuthState) error {
	r.states[userID] = state
	return nil
}

type fakePaymentRepo struct {
	states map[string]domain.PaymentState
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{states: make(map[string]domain.PaymentState)}
}

func (r *fakePaymentRepo) GetPaymentState(ctx context.Context, userID string) (domain.PaymentState, error) {
	return r.states[userID], nil
}

func (r *fakePaymentRepo) SavePaymentState(ctx context.Context, userID string, state domain.PaymentState) error {
	r.states[userID] = state
	return nil
}

// stubEntitlements returns a fixed answer from the premium gate.
type stubEntitlements struct {
	err error
}

func (s stubEntitlements) RequirePremium(ctx context.Context, userID string) error {
	return s.err
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
