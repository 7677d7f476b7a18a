package repository

import (
	"context"

	"github.com/Nrvenki/recipe/internal/domain"
)

type ResetCodeRepository interface {
	Create(ctx context.Context, rc *domain.ResetCode) (*domain.ResetCode, error)
	// FindActive returns the most recently issued unused row matching
	// (email, code), expired or not, or domain.ErrCodeInvalid if none exists.
	FindActive(ctx context.Context, email, code string) (*domain.ResetCode, error)
	MarkUsed(ctx context.Context, id int64) error
}
