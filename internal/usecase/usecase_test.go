package usecase_test

import (
	"context"
	"time"

	"github.com/glowbook/salon-directory/internal/domain"
)

// ---- shared fakes ----

type fakeUserRepo struct {
	create                   func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmail              func(ctx context.Context, email string) (*domain.User, error)
	findByID                 func(ctx context.Context, id string) (*domain.User, error)
	replaceResetToken        func(ctx context.Context, userID, token string, expiresAt time.Time) error
	findResetToken           func(ctx context.Context, token string) (*domain.ResetToken, error)
	deleteResetTokens        func(ctx context.Context, userID string) error
	deleteExpiredResetTokens func(ctx context.Context) (int64, error)
	resetPassword            func(ctx context.Context, userID, passwordHash string) error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) ReplaceResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	return r.replaceResetToken(ctx, userID, token, expiresAt)
}

func (r *fakeUserRepo) FindResetToken(ctx context.Context, token string) (*domain.ResetToken, error) {
	return r.findResetToken(ctx, token)
}

func (r *fakeUserRepo) DeleteResetTokens(ctx context.Context, userID string) error {
	return r.deleteResetTokens(ctx, userID)
}

func (r *fakeUserRepo) DeleteExpiredResetTokens(ctx context.Context) (int64, error) {
	return r.deleteExpiredResetTokens(ctx)
}

func (r *fakeUserRepo) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	return r.resetPassword(ctx, userID, passwordHash)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, html string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, html string) error {
	return s.send(ctx, to, subject, html)
}
