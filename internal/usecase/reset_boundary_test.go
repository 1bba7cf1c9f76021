package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowbook/salon-directory/internal/domain"
)

// boundaryRepo serves a single fixed token and records password resets.
type boundaryRepo struct {
	token  *domain.ResetToken
	resets int
}

func (r *boundaryRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *boundaryRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *boundaryRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func (r *boundaryRepo) ReplaceResetToken(context.Context, string, string, time.Time) error {
	return errors.New("not implemented")
}

func (r *boundaryRepo) FindResetToken(context.Context, string) (*domain.ResetToken, error) {
	return r.token, nil
}

func (r *boundaryRepo) DeleteResetTokens(context.Context, string) error { return nil }

func (r *boundaryRepo) DeleteExpiredResetTokens(context.Context) (int64, error) { return 0, nil }

func (r *boundaryRepo) ResetPassword(context.Context, string, string) error {
	r.resets++
	return nil
}

// Expiry is strict: a token expiring exactly at now is still valid, one
// microsecond past is not.
func TestResetPassword_ExpiryBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		expiresAt time.Time
		wantValid bool
	}{
		{"exactly now", now, true},
		{"just past", now.Add(-time.Microsecond), false},
		{"just ahead", now.Add(time.Microsecond), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &boundaryRepo{token: &domain.ResetToken{
				ID:        "rt-1",
				UserID:    "user-1",
				Token:     "tok",
				ExpiresAt: tc.expiresAt,
			}}

			uc := NewPasswordResetUsecase(repo, nil, "http://localhost:5500")
			uc.now = func() time.Time { return now }

			err := uc.ResetPassword(context.Background(), "tok", "p2")
			if tc.wantValid {
				if err != nil {
					t.Fatalf("want valid, got %v", err)
				}
				if repo.resets != 1 {
					t.Fatalf("resets = %d, want 1", repo.resets)
				}
			} else {
				if !errors.Is(err, domain.ErrResetTokenInvalid) {
					t.Fatalf("want ErrResetTokenInvalid, got %v", err)
				}
				if repo.resets != 0 {
					t.Fatalf("resets = %d, want 0", repo.resets)
				}
			}
		})
	}
}
