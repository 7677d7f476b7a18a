package repository

import (
	"context"

	"github.com/Nrvenki/recipe/internal/domain"
)

type UserRepository interface {
	// Upsert inserts the user or, if external_user_id already exists,
	// refreshes last_sign_in_at. Returns the post-update row and whether a
	// new row was created. The unique constraint arbitrates concurrent
	// registrations of the same external id.
	Upsert(ctx context.Context, u *domain.User) (*domain.User, bool, error)
	FindByExternalID(ctx context.Context, externalUserID string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
