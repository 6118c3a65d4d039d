package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/identity"
	"task-manager-service/internal/jwt"
	"task-manager-service/internal/my_errors"
)

type AuthService struct {
	repo       AuthRepository
	identities identity.Provider
	jwtSecret  string
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthService(repo AuthRepository, identities identity.Provider, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		repo:       repo,
		identities: identities,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Login matches the entered username or email against the identity
// provider. The password is required but never checked against anything;
// authentication here is a deliberate simulation.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.UserInfo, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", nil, fmt.Errorf("username and password: %w", my_errors.ErrEmptyField)
	}

	user, err := s.identities.Lookup(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
	}

	if !strings.EqualFold(username, user.Login) && !strings.EqualFold(username, user.Email) {
		return "", nil, fmt.Errorf("%w", my_errors.ErrInvalidCredentials)
	}

	expiry := s.now().Add(s.sessionTTL)
	state := domain.AuthState{IsAuthenticated: true, SessionExpiry: expiry.UnixMilli()}
	if err := s.repo.SaveAuthState(ctx, user.ID, state); err != nil {
		return "", nil, fmt.Errorf("failed to save auth state: %w", err)
	}

	token, err := jwt.GenerateToken(user.ID, user.Login, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	state := domain.AuthState{IsAuthenticated: false, SessionExpiry: 0}
	if err := s.repo.SaveAuthState(ctx, userID, state); err != nil {
		return fmt.Errorf("failed to clear auth state: %w", err)
	}
	return nil
}

// ValidateToken resolves a bearer token to the caller identity, checking
// both the token signature and the persisted session state. An expired
// session is cleared as a side effect before the error is returned.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.UserInfo, error) {
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	state, err := s.repo.GetAuthState(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if state.Expired(s.now()) {
		// Idempotent corrective write.
		if err := s.Logout(ctx, claims.UserID); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w", my_errors.ErrSessionExpired)
	}

	if !state.Active(s.now()) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	user, err := s.identities.ByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
	}

	return user, nil
}
