package entities

import "time"

// AuthTokenSafetyMargin keeps a token from being handed out right at the edge
// of its lifetime; a token is treated as expired five minutes early.
const AuthTokenSafetyMargin = 5 * time.Minute

// AuthToken is the OAuth access/refresh pair for a downstream provider (the
// ERP invoice system). Exactly one active token per provider at a time;
// persisted durably so it survives process restarts.
//
// Storage model (DynamoDB):
//   - PK: provider
//   - Upsert-on-refresh: a successful refresh atomically replaces the row.

type AuthToken struct {
	Provider         string    `json:"provider"`
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	IsActive         bool      `json:"is_active"`
}

// IsUsable reports whether the access token can still be attached to a
// request, honoring the safety margin.
func (t AuthToken) IsUsable(now time.Time) bool {
	return t.IsActive && t.AccessToken != "" && now.Before(t.ExpiresAt.Add(-AuthTokenSafetyMargin))
}

// CanRefresh reports whether the refresh token is still alive.
func (t AuthToken) CanRefresh(now time.Time) bool {
	return t.IsActive && t.RefreshToken != "" && now.Before(t.RefreshExpiresAt)
}
