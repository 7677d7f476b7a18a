package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/usecase"
)

type fakeUserRepo struct {
	upsert           func(ctx context.Context, u *domain.User) (*domain.User, bool, error)
	findByExternalID func(ctx context.Context, externalUserID string) (*domain.User, error)
	count            func(ctx context.Context) (int64, error)
}

func (r *fakeUserRepo) Upsert(ctx context.Context, u *domain.User) (*domain.User, bool, error) {
	return r.upsert(ctx, u)
}

func (r *fakeUserRepo) FindByExternalID(ctx context.Context, externalUserID string) (*domain.User, error) {
	return r.findByExternalID(ctx, externalUserID)
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}

func TestRegister_NewUser_ReportsCreated(t *testing.T) {
	now := time.Now()
	repo := &fakeUserRepo{
		upsert: func(_ context.Context, u *domain.User) (*domain.User, bool, error) {
			stored := *u
			stored.ID = 1
			stored.LastSignInAt = &now
			return &stored, true, nil
		},
	}

	user, created, err := usecase.NewUserUsecase(repo).Register(context.Background(), usecase.RegisterInput{
		ExternalUserID: "ext1",
		Email:          "a@b.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("first registration should report created")
	}
	if user.ID != 1 || user.ExternalUserID != "ext1" {
		t.Errorf("user = %+v", user)
	}
}

// The second registration of the same external id syncs rather than
// creates, and the returned record carries the refreshed sign-in time.
func TestRegister_ExistingUser_ReturnsUpdatedRecord(t *testing.T) {
	signIn := time.Now()
	repo := &fakeUserRepo{
		upsert: func(_ context.Context, u *domain.User) (*domain.User, bool, error) {
			return &domain.User{
				ID:             1,
				ExternalUserID: u.ExternalUserID,
				Email:          u.Email,
				LastSignInAt:   &signIn,
			}, false, nil
		},
	}

	user, created, err := usecase.NewUserUsecase(repo).Register(context.Background(), usecase.RegisterInput{
		ExternalUserID: "ext1",
		Email:          "a@b.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("re-registration must not report created")
	}
	if user.LastSignInAt == nil || !user.LastSignInAt.Equal(signIn) {
		t.Error("returned record must reflect the refreshed last_sign_in_at")
	}
}

func TestStats_UnknownUser_NotFound(t *testing.T) {
	repo := &fakeUserRepo{
		findByExternalID: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	_, err := usecase.NewUserUsecase(repo).Stats(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestStats_UserOrderIsSurrogateID(t *testing.T) {
	repo := &fakeUserRepo{
		findByExternalID: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: 17, ExternalUserID: "ext1"}, nil
		},
		count: func(_ context.Context) (int64, error) { return 120, nil },
	}

	stats, err := usecase.NewUserUsecase(repo).Stats(context.Background(), "ext1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalUsers != 120 {
		t.Errorf("TotalUsers = %d, want 120", stats.TotalUsers)
	}
	if stats.UserOrder != 17 {
		t.Errorf("UserOrder = %d, want the surrogate id 17", stats.UserOrder)
	}
}

func TestStats_CountError_Propagates(t *testing.T) {
	repo := &fakeUserRepo{
		findByExternalID: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: 1}, nil
		},
		count: func(_ context.Context) (int64, error) {
			return 0, errors.New("db down")
		},
	}

	if _, err := usecase.NewUserUsecase(repo).Stats(context.Background(), "ext1"); err == nil {
		t.Fatal("expected error")
	}
}
