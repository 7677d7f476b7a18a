package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/usecase"
	"github.com/gin-gonic/gin"
)

type userUsecaser interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*domain.User, bool, error)
	Stats(ctx context.Context, externalUserID string) (*domain.UserStats, error)
}

type UserHandler struct {
	uc     userUsecaser
	logger *slog.Logger
}

func NewUserHandler(uc userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger.With("component", "user_handler")}
}

type registerRequest struct {
	ExternalUserID string  `json:"externalUserId" binding:"required"`
	Email          string  `json:"email"          binding:"required,email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
}

type userResponse struct {
	ID             int64      `json:"id"`
	ExternalUserID string     `json:"externalUserId"`
	Email          string     `json:"email"`
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastSignInAt   *time.Time `json:"lastSignInAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		ExternalUserID: u.ExternalUserID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		CreatedAt:      u.CreatedAt,
		LastSignInAt:   u.LastSignInAt,
	}
}

// POST /api/users/register
// 201 when this call registered the user, 200 when it synced an existing one.
func (h *UserHandler) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
		return
	}

	user, created, err := h.uc.Register(ctx.Request.Context(), usecase.RegisterInput{
		ExternalUserID: req.ExternalUserID,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
	})
	if err != nil {
		h.logger.Error("register user", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, toUserResponse(user))
}

type userStatsResponse struct {
	TotalUsers         int64 `json:"totalUsers"`
	UserOrder          int64 `json:"userOrder"`
	RegistrationNumber int64 `json:"registrationNumber"`
}

// GET /api/users/stats/:externalUserId
func (h *UserHandler) Stats(ctx *gin.Context) {
	externalUserID := ctx.Param("externalUserId")
	if externalUserID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errUserIDRequired})
		return
	}

	stats, err := h.uc.Stats(ctx.Request.Context(), externalUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logger.Error("user stats", "external_user_id", externalUserID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, userStatsResponse{
		TotalUsers:         stats.TotalUsers,
		UserOrder:          stats.UserOrder,
		RegistrationNumber: stats.UserOrder,
	})
}
