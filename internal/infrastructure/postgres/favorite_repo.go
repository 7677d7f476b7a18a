package postgres

import (
	"context"
	"fmt"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	query := `
		INSERT INTO favorites (user_id, recipe_id, title, image, cook_time, servings)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, recipe_id, title, image, cook_time, servings, created_at`

	row := r.pool.QueryRow(ctx, query,
		fav.UserID,
		fav.RecipeID,
		fav.Title,
		fav.Image,
		fav.CookTime,
		fav.Servings,
	)

	created, err := scanFavorite(row)
	if err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return created, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	query := `
		SELECT id, user_id, recipe_id, title, image, cook_time, servings, created_at
		FROM favorites
		WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*domain.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID string, recipeID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`,
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func scanFavorite(row pgx.Row) (*domain.Favorite, error) {
	var f domain.Favorite
	err := row.Scan(
		&f.ID, &f.UserID, &f.RecipeID, &f.Title,
		&f.Image, &f.CookTime, &f.Servings, &f.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan favorite: %w", err)
	}
	return &f, nil
}
