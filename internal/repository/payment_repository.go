package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
)

type PaymentRepository struct {
	store *SlotStore
}

func NewPaymentRepository(store *SlotStore) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// GetPaymentState returns the persisted subscription state for the user,
// or {isPremium:false, paymentDate:null, expiryDate:null} when none exists.
func (r *PaymentRepository) GetPaymentState(ctx context.Context, userID string) (domain.PaymentState, error) {
	state := domain.PaymentState{}
	if _, err := r.store.Get(ctx, userSlot(SlotPaymentState, userID), &state); err != nil {
		return domain.PaymentState{}, fmt.Errorf("failed to load payment state: %w", err)
	}
	return state, nil
}

func (r *PaymentRepository) SavePaymentState(ctx context.Context, userID string, state domain.PaymentState) error {
	return r.store.Put(ctx, userSlot(SlotPaymentState, userID), state)
}
