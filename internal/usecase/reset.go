package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/email"
	"github.com/glowbook/salon-directory/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

type PasswordResetUsecase struct {
	users        repository.UserRepository
	email        email.Sender
	frontendBase string
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewPasswordResetUsecase(users repository.UserRepository, emailSender email.Sender, frontendBase string) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		users:        users,
		email:        emailSender,
		frontendBase: frontendBase,
		tokenTTL:     resetTokenTTL,
		now:          time.Now,
	}
}

// RequestReset issues a fresh reset token for the given email and mails a
// reset link. An unknown email returns ("", nil): the caller must not be
// able to tell whether the account exists. Issuing replaces any earlier
// token, so at most one is live per user. If delivery fails the token is
// rolled back and the error is returned.
func (u *PasswordResetUsecase) RequestReset(ctx context.Context, emailAddr string) (string, error) {
	if emailAddr == "" {
		return "", &domain.ValidationError{Reason: "Email is required"}
	}

	user, err := u.users.FindByEmail(ctx, NormalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err = io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(raw)

	expiresAt := u.now().Add(u.tokenTTL)
	if err = u.users.ReplaceResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	resetURL := u.frontendBase + "/reset-password.html?token=" + token
	subject := "Reset your password"
	body := fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>Reset your password</h2>
  <p>You requested a password reset. Click the button below to set a new password:</p>
  <p>
    <a href="%s" style="display: inline-block; padding: 10px 16px; background: #ffb703; color: #1c1c1c; text-decoration: none; border-radius: 8px; font-weight: 600;">
      Reset Password
    </a>
  </p>
  <p>If you did not request this, you can ignore this email.</p>
</div>`, resetURL)

	if err = u.email.Send(ctx, user.Email, subject, body); err != nil {
		// Roll back so a failed request leaves no live token behind.
		if delErr := u.users.DeleteResetTokens(ctx, user.ID); delErr != nil {
			return "", fmt.Errorf("send reset email: %w (token rollback failed: %v)", err, delErr)
		}
		return "", fmt.Errorf("send reset email: %w", err)
	}
	return token, nil
}

// ResetPassword consumes a reset token: it verifies existence and expiry,
// stores the new password hash and deletes every token for the user in one
// atomic step. A second call with the same token fails.
func (u *PasswordResetUsecase) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return &domain.ValidationError{Reason: "Token and new password are required"}
	}

	rt, err := u.users.FindResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("find reset token: %w", err)
	}
	if rt.Expired(u.now()) {
		return domain.ErrResetTokenInvalid
	}

	if _, err := u.users.FindByID(ctx, rt.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.ResetPassword(ctx, rt.UserID, string(hash)); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
