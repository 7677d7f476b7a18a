package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/gin-gonic/gin"
)

type passwordResetUsecaser interface {
	SendCode(ctx context.Context, emailAddr string) error
	VerifyCode(ctx context.Context, emailAddr, code, newPassword string) error
}

type PasswordResetHandler struct {
	uc     passwordResetUsecaser
	logger *slog.Logger
}

func NewPasswordResetHandler(uc passwordResetUsecaser, logger *slog.Logger) *PasswordResetHandler {
	return &PasswordResetHandler{uc: uc, logger: logger.With("component", "password_reset_handler")}
}

type sendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/password-reset/send-code
// An email-delivery failure returns 500; the stored code is kept either way.
func (h *PasswordResetHandler) SendCode(ctx *gin.Context) {
	var req sendCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
		return
	}

	if err := h.uc.SendCode(ctx.Request.Context(), req.Email); err != nil {
		h.logger.Error("send reset code", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification code sent",
	})
}

type verifyCodeRequest struct {
	Email       string `json:"email"       binding:"required,email"`
	Code        string `json:"code"        binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// POST /api/password-reset/verify-code
func (h *PasswordResetHandler) VerifyCode(ctx *gin.Context) {
	var req verifyCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
		return
	}

	err := h.uc.VerifyCode(ctx.Request.Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeExpired):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errCodeExpired})
		case errors.Is(err, domain.ErrCodeInvalid):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errCodeInvalid})
		default:
			h.logger.Error("verify reset code", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification code confirmed",
	})
}
