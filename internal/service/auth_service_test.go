package service

import (
	"context"
	"testing"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/identity"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *fakeAuthRepo) *AuthService {
	provider := identity.NewStaticProvider([]domain.UserInfo{alice, bob})
	return NewAuthService(repo, provider, "test-secret", 24*time.Hour)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("login by username starts a session", func(t *testing.T) {
		repo := newFakeAuthRepo()
		svc := newAuthService(repo)

		token, user, err := svc.Login(ctx, "alice", "whatever")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "u1", user.ID)
		assert.True(t, repo.states["u1"].IsAuthenticated)
	})

	t.Run("login by email works too", func(t *testing.T) {
		svc := newAuthService(newFakeAuthRepo())

		_, user, err := svc.Login(ctx, "ALICE@example.com", "whatever")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("unknown identity", func(t *testing.T) {
		svc := newAuthService(newFakeAuthRepo())

		_, _, err := svc.Login(ctx, "mallory", "whatever")
		require.ErrorIs(t, err, my_errors.ErrInvalidCredentials)
	})

	t.Run("blank credentials", func(t *testing.T) {
		svc := newAuthService(newFakeAuthRepo())

		_, _, err := svc.Login(ctx, "alice", "   ")
		require.ErrorIs(t, err, my_errors.ErrEmptyField)
	})
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid session resolves the caller", func(t *testing.T) {
		svc := newAuthService(newFakeAuthRepo())

		token, _, err := svc.Login(ctx, "alice", "pw")
		require.NoError(t, err)

		user, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("expired session is cleared and reported", func(t *testing.T) {
		repo := newFakeAuthRepo()
		svc := newAuthService(repo)

		token, _, err := svc.Login(ctx, "alice", "pw")
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

		_, err = svc.ValidateToken(ctx, token)
		require.ErrorIs(t, err, my_errors.ErrSessionExpired)
		assert.False(t, repo.states["u1"].IsAuthenticated)
		assert.Zero(t, repo.states["u1"].SessionExpiry)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		repo := newFakeAuthRepo()
		svc := newAuthService(repo)

		token, user, err := svc.Login(ctx, "alice", "pw")
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, user.ID))

		_, err = svc.ValidateToken(ctx, token)
		require.ErrorIs(t, err, my_errors.ErrNotAuthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newAuthService(newFakeAuthRepo())

		_, err := svc.ValidateToken(ctx, "not-a-token")
		require.Error(t, err)
	})
}
