package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Upsert creates the user or refreshes last_sign_in_at on conflict.
// xmax = 0 only holds for freshly inserted rows, which tells us whether
// this call registered the user or merely synced an existing one.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) (*domain.User, bool, error) {
	query := `
		INSERT INTO users (external_user_id, email, first_name, last_name, last_sign_in_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (external_user_id) DO UPDATE SET last_sign_in_at = NOW()
		RETURNING id, external_user_id, email, first_name, last_name,
		          created_at, last_sign_in_at, (xmax = 0) AS inserted`

	row := r.pool.QueryRow(ctx, query,
		u.ExternalUserID,
		u.Email,
		u.FirstName,
		u.LastName,
	)

	var out domain.User
	var inserted bool
	err := row.Scan(
		&out.ID, &out.ExternalUserID, &out.Email, &out.FirstName,
		&out.LastName, &out.CreatedAt, &out.LastSignInAt, &inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("upsert user: %w", err)
	}
	return &out, inserted, nil
}

func (r *UserRepository) FindByExternalID(ctx context.Context, externalUserID string) (*domain.User, error) {
	query := `
		SELECT id, external_user_id, email, first_name, last_name,
		       created_at, last_sign_in_at
		FROM users
		WHERE external_user_id = $1`

	row := r.pool.QueryRow(ctx, query, externalUserID)
	return scanUser(row)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.ExternalUserID, &u.Email, &u.FirstName,
		&u.LastName, &u.CreatedAt, &u.LastSignInAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
