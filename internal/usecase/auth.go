package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultJWTTTL = 24 * time.Hour

// bcrypt.DefaultCost is 10, matching the stored hashes.
const bcryptCost = bcrypt.DefaultCost

type AuthUsecase struct {
	users  repository.UserRepository
	jwtKey []byte
	jwtTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, jwtKey []byte) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		jwtKey: jwtKey,
		jwtTTL: defaultJWTTTL,
	}
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Signup validates the input, hashes the password and creates the user.
// The email is normalized (lowercased, trimmed) before it is used as the
// uniqueness key.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return &domain.ValidationError{Reason: "All fields are required"}
	}
	if in.Password != in.ConfirmPassword {
		return &domain.ValidationError{Reason: "Passwords do not match"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = u.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        NormalizeEmail(in.Email),
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed JWT. Unknown email
// and wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	if emailAddr == "" || password == "" {
		return "", &domain.ValidationError{Reason: "Email and password are required"}
	}

	user, err := u.users.FindByEmail(ctx, NormalizeEmail(emailAddr))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(u.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// NormalizeEmail lowercases and trims an email address. Every store
// lookup and insert goes through this.
func NormalizeEmail(emailAddr string) string {
	return strings.ToLower(strings.TrimSpace(emailAddr))
}
