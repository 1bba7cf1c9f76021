package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/metrics"
)

type resetUsecaser interface {
	RequestReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) error
}

type ResetHandler struct {
	reset  resetUsecaser
	logger *slog.Logger

	// echoToken embeds the raw token in the /forgot-password response.
	// Enabled only in the local environment, where email delivery is just
	// a log line; production relies solely on the emailed link.
	echoToken bool
}

func NewResetHandler(reset resetUsecaser, echoToken bool, logger *slog.Logger) *ResetHandler {
	return &ResetHandler{
		reset:     reset,
		echoToken: echoToken,
		logger:    logger.With("component", "reset_handler"),
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type forgotPasswordResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// POST /forgot-password
// Replies 200 with a generic message when the email is unknown, so the
// endpoint cannot be used to probe for accounts.
func (h *ResetHandler) Request(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(msgEmailRequired))
		return
	}

	token, err := h.reset.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, fail(ve.Reason))
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "request reset", "error", err)
		c.JSON(http.StatusInternalServerError, fail(msgResetSendFailed))
		return
	}

	if token == "" {
		c.JSON(http.StatusOK, ok(msgResetGeneric))
		return
	}

	metrics.ResetRequestsTotal.Inc()
	resp := forgotPasswordResponse{Success: true, Message: msgResetLinkSent}
	if h.echoToken {
		resp.ResetToken = token
	}
	c.JSON(http.StatusOK, resp)
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// POST /reset-password
// Absent and expired tokens are indistinguishable to the caller.
func (h *ResetHandler) Reset(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(msgResetFieldsMissing))
		return
	}

	err := h.reset.ResetPassword(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, fail(ve.Reason))
		case errors.Is(err, domain.ErrResetTokenInvalid):
			c.JSON(http.StatusBadRequest, fail(msgResetTokenInvalid))
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, fail(msgUserNotFound))
		default:
			h.logger.ErrorContext(c.Request.Context(), "reset password", "error", err)
			c.JSON(http.StatusInternalServerError, fail(msgServerError))
		}
		return
	}

	metrics.ResetsCompletedTotal.Inc()
	c.JSON(http.StatusOK, ok(msgPasswordUpdated))
}
