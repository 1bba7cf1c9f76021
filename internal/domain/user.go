package domain

import (
	"errors"
	"time"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or expired")
)

// ValidationError carries the user-facing message for a rejected input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResetToken is a single-use password-reset credential. At most one row
// per user is live at any time: issuing a new token deletes the old ones,
// and a successful reset deletes every token the user has.
type ResetToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token's lifetime has passed. The comparison
// is strict: a token expiring exactly at now is still accepted.
func (t *ResetToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
