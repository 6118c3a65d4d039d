package domain

import "time"

// AuthState is the persisted session state for one user. Set on login,
// cleared on logout or when the current time passes SessionExpiry.
type AuthState struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	SessionExpiry   int64 `json:"sessionExpiry"`
}

func (a AuthState) Active(now time.Time) bool {
	return a.IsAuthenticated && a.SessionExpiry > now.UnixMilli()
}

// Expired reports an authenticated session whose expiry has passed.
func (a AuthState) Expired(now time.Time) bool {
	return a.IsAuthenticated && a.SessionExpiry <= now.UnixMilli()
}

// PaymentState is the persisted subscription state for one user. Set by
// the simulated payment flow, cleared once ExpiryDate has passed.
type PaymentState struct {
	IsPremium   bool   `json:"isPremium"`
	PaymentDate *int64 `json:"paymentDate"`
	ExpiryDate  *int64 `json:"expiryDate"`
}

func (p PaymentState) Active(now time.Time) bool {
	return p.IsPremium && p.ExpiryDate != nil && *p.ExpiryDate > now.UnixMilli()
}

func (p PaymentState) Expired(now time.Time) bool {
	return p.IsPremium && (p.ExpiryDate == nil || *p.ExpiryDate <= now.UnixMilli())
}
