package my_errors

import "errors"

// Sentinel my_errors для бизнес-логики
var (
	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")

	// Auth my_errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	// Subscription my_errors
	ErrPremiumRequired     = errors.New("premium subscription required")
	ErrSubscriptionExpired = errors.New("subscription expired")

	// Task my_errors
	ErrTaskNotFound   = errors.New("task not found")
	ErrNotTaskCreator = errors.New("only the task creator can modify it")

	// Team my_errors
	ErrTeamNotFound  = errors.New("team not found")
	ErrNotTeamMember = errors.New("caller is not a team member")
)
