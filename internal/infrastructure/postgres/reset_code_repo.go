package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResetCodeRepository struct {
	pool *pgxpool.Pool
}

func NewResetCodeRepository(pool *pgxpool.Pool) *ResetCodeRepository {
	return &ResetCodeRepository{pool: pool}
}

func (r *ResetCodeRepository) Create(ctx context.Context, rc *domain.ResetCode) (*domain.ResetCode, error) {
	query := `
		INSERT INTO reset_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, email, code, expires_at, used, created_at`

	row := r.pool.QueryRow(ctx, query, rc.Email, rc.Code, rc.ExpiresAt)
	created, err := scanResetCode(row)
	if err != nil {
		return nil, fmt.Errorf("create reset code: %w", err)
	}
	return created, nil
}

// FindActive returns the newest unused row for (email, code). Expiry is
// checked by the caller so that expired codes get their own error.
func (r *ResetCodeRepository) FindActive(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	query := `
		SELECT id, email, code, expires_at, used, created_at
		FROM reset_codes
		WHERE email = $1 AND code = $2 AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1`

	row := r.pool.QueryRow(ctx, query, email, code)
	rc, err := scanResetCode(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCodeInvalid
		}
		return nil, err
	}
	return rc, nil
}

func (r *ResetCodeRepository) MarkUsed(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reset_codes SET used = TRUE WHERE id = $1 AND used = FALSE`, id)
	if err != nil {
		return fmt.Errorf("mark reset code used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCodeInvalid
	}
	return nil
}

func scanResetCode(row pgx.Row) (*domain.ResetCode, error) {
	var rc domain.ResetCode
	err := row.Scan(&rc.ID, &rc.Email, &rc.Code, &rc.ExpiresAt, &rc.Used, &rc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reset code: %w", err)
	}
	return &rc, nil
}
