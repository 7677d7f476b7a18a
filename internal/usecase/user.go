package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/repository"
)

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

type RegisterInput struct {
	ExternalUserID string
	Email          string
	FirstName      *string
	LastName       *string
}

// Register syncs a user from the external auth provider. The first call
// creates the row; later calls refresh last_sign_in_at. The returned user
// reflects the refreshed sign-in time, and created reports whether this
// call was the one that registered the user.
func (u *UserUsecase) Register(ctx context.Context, in RegisterInput) (*domain.User, bool, error) {
	user, created, err := u.users.Upsert(ctx, &domain.User{
		ExternalUserID: in.ExternalUserID,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
	})
	if err != nil {
		return nil, false, fmt.Errorf("register user: %w", err)
	}
	return user, created, nil
}

// Stats returns the total user count and the user's registration rank.
// The surrogate id doubles as the rank; ids are assigned sequentially and
// users are never deleted.
func (u *UserUsecase) Stats(ctx context.Context, externalUserID string) (*domain.UserStats, error) {
	user, err := u.users.FindByExternalID(ctx, externalUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	total, err := u.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &domain.UserStats{
		TotalUsers: total,
		UserOrder:  user.ID,
	}, nil
}
