package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/usecase"
	"github.com/gin-gonic/gin"
)

// favoriteUsecaser is the subset of FavoriteUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type favoriteUsecaser interface {
	AddFavorite(ctx context.Context, in usecase.AddFavoriteInput) (*domain.Favorite, error)
	ListFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID string, recipeID int64) error
}

type FavoriteHandler struct {
	uc     favoriteUsecaser
	logger *slog.Logger
}

func NewFavoriteHandler(uc favoriteUsecaser, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger.With("component", "favorite_handler")}
}

type addFavoriteRequest struct {
	UserID   string  `json:"userId"   binding:"required"`
	RecipeID int64   `json:"recipeId" binding:"required"`
	Title    string  `json:"title"    binding:"required"`
	Image    *string `json:"image"`
	CookTime *string `json:"cookTime"`
	Servings *string `json:"servings"`
}

type favoriteResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	RecipeID  int64     `json:"recipeId"`
	Title     string    `json:"title"`
	Image     *string   `json:"image"`
	CookTime  *string   `json:"cookTime"`
	Servings  *string   `json:"servings"`
	CreatedAt time.Time `json:"createdAt"`
}

func toFavoriteResponse(f *domain.Favorite) favoriteResponse {
	return favoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		RecipeID:  f.RecipeID,
		Title:     f.Title,
		Image:     f.Image,
		CookTime:  f.CookTime,
		Servings:  f.Servings,
		CreatedAt: f.CreatedAt,
	}
}

// POST /api/favorites
func (h *FavoriteHandler) Add(ctx *gin.Context) {
	var req addFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errMissingFields})
		return
	}

	fav, err := h.uc.AddFavorite(ctx.Request.Context(), usecase.AddFavoriteInput{
		UserID:   req.UserID,
		RecipeID: req.RecipeID,
		Title:    req.Title,
		Image:    req.Image,
		CookTime: req.CookTime,
		Servings: req.Servings,
	})
	if err != nil {
		h.logger.Error("add favorite", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusCreated, toFavoriteResponse(fav))
}

// GET /api/favorites/:userId
func (h *FavoriteHandler) List(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errUserIDRequired})
		return
	}

	favorites, err := h.uc.ListFavorites(ctx.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list favorites", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]favoriteResponse, len(favorites))
	for i, f := range favorites {
		items[i] = toFavoriteResponse(f)
	}
	ctx.JSON(http.StatusOK, items)
}

// DELETE /api/favorites/:userId/:recipeId
func (h *FavoriteHandler) Remove(ctx *gin.Context) {
	userID := ctx.Param("userId")
	recipeID, err := strconv.ParseInt(ctx.Param("recipeId"), 10, 64)
	if userID == "" || err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errUserRecipeRequired})
		return
	}

	if err := h.uc.RemoveFavorite(ctx.Request.Context(), userID, recipeID); err != nil {
		h.logger.Error("remove favorite", "user_id", userID, "recipe_id", recipeID, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}
