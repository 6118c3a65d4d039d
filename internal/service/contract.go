package service

import (
	"context"

	"task-manager-service/internal/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	InsertTask(ctx context.Context, task *domain.Task) error
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error
}

type TeamRepository interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	InsertTeam(ctx context.Context, team *domain.Team) error
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
}

type AuthRepository interface {
	GetAuthState(ctx context.Context, userID string) (domain.AuthState, error)
	SaveAuthState(ctx context.Context, userID string, state domain.AuthState) error
}

type PaymentRepository interface {
	GetPaymentState(ctx context.Context, userID string) (domain.PaymentState, error)
	SavePaymentState(ctx context.Context, userID string, state domain.PaymentState) error
}

// Entitlements is the premium gate task and team creation check against.
type Entitlements interface {
	RequirePremium(ctx context.Context, userID string) error
}
