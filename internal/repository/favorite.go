package repository

import (
	"context"

	"github.com/Nrvenki/recipe/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	// Delete removes every row matching (userID, recipeID). Deleting
	// nothing is not an error.
	Delete(ctx context.Context, userID string, recipeID int64) error
}
