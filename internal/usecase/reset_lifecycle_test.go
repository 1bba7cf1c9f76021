package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepo holds real token state so the full request→reset
// lifecycle can be driven end to end: issuance purges earlier tokens
// and consumption purges everything, exactly as the store does.
type memoryUserRepo struct {
	user   *domain.User
	tokens map[string]*domain.ResetToken
}

func newMemoryUserRepo() *memoryUserRepo {
	u := *testUser
	return &memoryUserRepo{
		user:   &u,
		tokens: make(map[string]*domain.ResetToken),
	}
}

func (r *memoryUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, errors.New("not used")
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if email != r.user.Email {
		return nil, domain.ErrUserNotFound
	}
	return r.user, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if id != r.user.ID {
		return nil, domain.ErrUserNotFound
	}
	return r.user, nil
}

func (r *memoryUserRepo) ReplaceResetToken(_ context.Context, userID, token string, expiresAt time.Time) error {
	r.purge(userID)
	r.tokens[token] = &domain.ResetToken{
		ID:        "rt-" + token[:8],
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *memoryUserRepo) FindResetToken(_ context.Context, token string) (*domain.ResetToken, error) {
	rt, found := r.tokens[token]
	if !found {
		return nil, domain.ErrResetTokenInvalid
	}
	return rt, nil
}

func (r *memoryUserRepo) DeleteResetTokens(_ context.Context, userID string) error {
	r.purge(userID)
	return nil
}

func (r *memoryUserRepo) DeleteExpiredResetTokens(_ context.Context) (int64, error) {
	return 0, nil
}

func (r *memoryUserRepo) ResetPassword(_ context.Context, userID, passwordHash string) error {
	if userID != r.user.ID {
		return domain.ErrUserNotFound
	}
	r.user.PasswordHash = passwordHash
	r.purge(userID)
	return nil
}

func (r *memoryUserRepo) purge(userID string) {
	for tok, rt := range r.tokens {
		if rt.UserID == userID {
			delete(r.tokens, tok)
		}
	}
}

func okSender() *fakeEmailSender {
	return &fakeEmailSender{
		send: func(_ context.Context, _, _, _ string) error { return nil },
	}
}

func TestResetPassword_ConsumedTokenCannotBeReused(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := usecase.NewPasswordResetUsecase(repo, okSender(), testFrontendBase)

	token, err := uc.RequestReset(context.Background(), testUser.Email)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if err := uc.ResetPassword(context.Background(), token, "p2"); err != nil {
		t.Fatalf("first reset: %v", err)
	}

	err = uc.ResetPassword(context.Background(), token, "p3")
	if !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("second reset with the same token: want ErrResetTokenInvalid, got %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("p2")) != nil {
		t.Error("replayed reset changed the stored password")
	}
}

func TestResetPassword_FirstTokenDeadAfterReissue(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := usecase.NewPasswordResetUsecase(repo, okSender(), testFrontendBase)

	first, err := uc.RequestReset(context.Background(), testUser.Email)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := uc.RequestReset(context.Background(), testUser.Email)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}

	err = uc.ResetPassword(context.Background(), first, "p2")
	if !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("stale first token: want ErrResetTokenInvalid, got %v", err)
	}

	// The replacement token is the only live one and still works.
	if err := uc.ResetPassword(context.Background(), second, "p2"); err != nil {
		t.Errorf("replacement token: %v", err)
	}
}
