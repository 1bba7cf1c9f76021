package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/metrics"
	"github.com/glowbook/salon-directory/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Signup(ctx context.Context, in usecase.SignupInput) error
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	auth   authUsecaser
	logger *slog.Logger
}

func NewAuthHandler(auth authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With("component", "auth_handler"),
	}
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(msgAllFieldsRequired))
		return
	}

	err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, fail(ve.Reason))
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, fail(msgEmailTaken))
		default:
			h.logger.ErrorContext(c.Request.Context(), "signup", "error", err)
			c.JSON(http.StatusInternalServerError, fail(msgServerError))
		}
		return
	}

	metrics.SignupsTotal.Inc()
	c.JSON(http.StatusOK, ok(msgSignupOK))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// POST /login
// Unknown email and wrong password get the identical 401 message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(msgLoginFieldsMissing))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, fail(ve.Reason))
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusUnauthorized, fail(msgInvalidCredentials))
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
			c.JSON(http.StatusInternalServerError, fail(msgServerError))
		}
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: msgLoginOK,
		Token:   token,
	})
}
