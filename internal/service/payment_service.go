package service

import (
	"context"
	"fmt"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

type PaymentService struct {
	repo            PaymentRepository
	subscriptionTTL time.Duration
	paymentDelay    time.Duration
	now             func() time.Time
}

func NewPaymentService(repo PaymentRepository, subscriptionTTL, paymentDelay time.Duration) *PaymentService {
	return &PaymentService{
		repo:            repo,
		subscriptionTTL: subscriptionTTL,
		paymentDelay:    paymentDelay,
		now:             time.Now,
	}
}

// Subscribe runs the simulated payment flow. The artificial delay always
// resolves; there is no cancellation.
func (s *PaymentService) Subscribe(ctx context.Context, userID string) (domain.PaymentState, error) {
	if userID == "" {
		return domain.PaymentState{}, fmt.Errorf("user id: %w", my_errors.ErrEmptyField)
	}

	time.Sleep(s.paymentDelay)

	paid := s.now().UnixMilli()
	expiry := s.now().Add(s.subscriptionTTL).UnixMilli()
	state := domain.PaymentState{
		IsPremium:   true,
		PaymentDate: &paid,
		ExpiryDate:  &expiry,
	}
	if err := s.repo.SavePaymentState(ctx, userID, state); err != nil {
		return domain.PaymentState{}, fmt.Errorf("failed to save payment state: %w", err)
	}

	return state, nil
}

// Status returns the subscription state, clearing the premium flag first
// when the subscription has lapsed.
func (s *PaymentService) Status(ctx context.Context, userID string) (domain.PaymentState, error) {
	state, err := s.repo.GetPaymentState(ctx, userID)
	if err != nil {
		return domain.PaymentState{}, err
	}

	if state.Expired(s.now()) {
		state = domain.PaymentState{}
		if err := s.repo.SavePaymentState(ctx, userID, state); err != nil {
			return domain.PaymentState{}, fmt.Errorf("failed to reset payment state: %w", err)
		}
	}

	return state, nil
}

// RequirePremium is the entitlement check used by premium-gated
// operations. A lapsed subscription clears the premium flag as a side
// effect and reports a distinct error from never having subscribed.
func (s *PaymentService) RequirePremium(ctx context.Context, userID string) error {
	state, err := s.repo.GetPaymentState(ctx, userID)
	if err != nil {
		return err
	}

	if state.Expired(s.now()) {
		if err := s.repo.SavePaymentState(ctx, userID, domain.PaymentState{}); err != nil {
			return fmt.Errorf("failed to reset payment state: %w", err)
		}
		return fmt.Errorf("%w", my_errors.ErrSubscriptionExpired)
	}

	if !state.Active(s.now()) {
		return fmt.Errorf("%w", my_errors.ErrPremiumRequired)
	}

	return nil
}
