package usecase

import (
	"context"
	"fmt"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/repository"
)

type FavoriteUsecase struct {
	favorites repository.FavoriteRepository
}

func NewFavoriteUsecase(favorites repository.FavoriteRepository) *FavoriteUsecase {
	return &FavoriteUsecase{favorites: favorites}
}

type AddFavoriteInput struct {
	UserID   string
	RecipeID int64
	Title    string
	Image    *string
	CookTime *string
	Servings *string
}

// AddFavorite inserts a favorite row. (UserID, RecipeID) is intentionally
// not checked for duplicates; saving the same recipe twice creates two rows.
func (u *FavoriteUsecase) AddFavorite(ctx context.Context, in AddFavoriteInput) (*domain.Favorite, error) {
	fav, err := u.favorites.Create(ctx, &domain.Favorite{
		UserID:   in.UserID,
		RecipeID: in.RecipeID,
		Title:    in.Title,
		Image:    in.Image,
		CookTime: in.CookTime,
		Servings: in.Servings,
	})
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return fav, nil
}

func (u *FavoriteUsecase) ListFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	favorites, err := u.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// RemoveFavorite deletes every matching row. Removing a favorite that was
// never saved is a successful no-op.
func (u *FavoriteUsecase) RemoveFavorite(ctx context.Context, userID string, recipeID int64) error {
	if err := u.favorites.Delete(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
