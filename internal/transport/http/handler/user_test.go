package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/transport/http/handler"
	"github.com/Nrvenki/recipe/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeUserUsecase struct {
	register func(ctx context.Context, in usecase.RegisterInput) (*domain.User, bool, error)
	stats    func(ctx context.Context, externalUserID string) (*domain.UserStats, error)
}

func (f *fakeUserUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*domain.User, bool, error) {
	return f.register(ctx, in)
}

func (f *fakeUserUsecase) Stats(ctx context.Context, externalUserID string) (*domain.UserStats, error) {
	return f.stats(ctx, externalUserID)
}

func newUserEngine(uc *fakeUserUsecase) *gin.Engine {
	h := handler.NewUserHandler(uc, testLogger())

	r := gin.New()
	r.POST("/api/users/register", h.Register)
	r.GET("/api/users/stats/:externalUserId", h.Stats)
	return r
}

// ---- Register ----

func TestRegister_MissingEmail_Returns400(t *testing.T) {
	uc := &fakeUserUsecase{}
	w := postJSON(t, newUserEngine(uc), "/api/users/register",
		`{"externalUserId":"ext1"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_NewUser_Returns201(t *testing.T) {
	uc := &fakeUserUsecase{
		register: func(_ context.Context, in usecase.RegisterInput) (*domain.User, bool, error) {
			return &domain.User{ID: 1, ExternalUserID: in.ExternalUserID, Email: in.Email}, true, nil
		},
	}
	w := postJSON(t, newUserEngine(uc), "/api/users/register",
		`{"externalUserId":"ext1","email":"a@b.com"}`)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
}

func TestRegister_ExistingUser_Returns200SameID(t *testing.T) {
	uc := &fakeUserUsecase{
		register: func(_ context.Context, in usecase.RegisterInput) (*domain.User, bool, error) {
			return &domain.User{ID: 1, ExternalUserID: in.ExternalUserID, Email: in.Email}, false, nil
		},
	}
	w := postJSON(t, newUserEngine(uc), "/api/users/register",
		`{"externalUserId":"ext1","email":"a@b.com"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 {
		t.Errorf("id = %d, want the original row's id", resp.ID)
	}
}

func TestRegister_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeUserUsecase{
		register: func(_ context.Context, _ usecase.RegisterInput) (*domain.User, bool, error) {
			return nil, false, errors.New("db down")
		},
	}
	w := postJSON(t, newUserEngine(uc), "/api/users/register",
		`{"externalUserId":"ext1","email":"a@b.com"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- Stats ----

func TestStats_UnknownUser_Returns404(t *testing.T) {
	uc := &fakeUserUsecase{
		stats: func(_ context.Context, _ string) (*domain.UserStats, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/stats/ghost", nil)
	newUserEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if strings.Contains(w.Body.String(), "null") {
		t.Error("404 body must not carry null stats fields")
	}
}

func TestStats_Success_RegistrationNumberEqualsUserOrder(t *testing.T) {
	uc := &fakeUserUsecase{
		stats: func(_ context.Context, _ string) (*domain.UserStats, error) {
			return &domain.UserStats{TotalUsers: 120, UserOrder: 17}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/stats/ext1", nil)
	newUserEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		TotalUsers         int64 `json:"totalUsers"`
		UserOrder          int64 `json:"userOrder"`
		RegistrationNumber int64 `json:"registrationNumber"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalUsers != 120 || resp.UserOrder != 17 {
		t.Errorf("response = %+v", resp)
	}
	if resp.RegistrationNumber != resp.UserOrder {
		t.Error("registrationNumber must duplicate userOrder")
	}
}
