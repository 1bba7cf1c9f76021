package repository

import (
	"context"
	"time"

	"github.com/glowbook/salon-directory/internal/domain"
)

// Usecases depend on the interface, not the postgres implementation, so
// tests can pass a fake and the store can be swapped without touching them.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// ReplaceResetToken deletes every reset token the user has and inserts
	// the new one, atomically. This keeps the one-live-token-per-user
	// invariant even under concurrent reset requests.
	ReplaceResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	FindResetToken(ctx context.Context, token string) (*domain.ResetToken, error)
	DeleteResetTokens(ctx context.Context, userID string) error
	DeleteExpiredResetTokens(ctx context.Context) (int64, error)

	// ResetPassword stores the new hash and deletes all of the user's reset
	// tokens in one transaction, so a consumed token can never stay live.
	ResetPassword(ctx context.Context, userID, passwordHash string) error
}
