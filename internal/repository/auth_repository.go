package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
)

type AuthRepository struct {
	store *SlotStore
}

func NewAuthRepository(store *SlotStore) *AuthRepository {
	return &AuthRepository{store: store}
}

// GetAuthState returns the persisted session state for the user, or the
// zero state {isAuthenticated:false, sessionExpiry:0} when none exists.
func (r *AuthRepository) GetAuthState(ctx context.Context, userID string) (domain.AuthState, error) {
	state := domain.AuthState{}
	if _, err := r.store.Get(ctx, userSlot(SlotAuthState, userID), &state); err != nil {
		return domain.AuthState{}, fmt.Errorf("failed to load auth state: %w", err)
	}
	return state, nil
}

func (r *AuthRepository) SaveAuthState(ctx context.Context, userID string, state domain.AuthState) error {
	return r.store.Put(ctx, userSlot(SlotAuthState, userID), state)
}
