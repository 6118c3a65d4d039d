package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeAuthRequired        = "AUTH_REQUIRED"
	ErrCodeSessionExpired      = "SESSION_EXPIRED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodePremiumRequired     = "PREMIUM_REQUIRED"
	ErrCodeSubscriptionExpired = "SUBSCRIPTION_EXPIRED"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInternal            = "INTERNAL_ERROR"
)
