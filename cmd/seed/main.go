// seed inserts a test user and a handful of favorites into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Nrvenki/recipe/internal/domain"
	"github.com/Nrvenki/recipe/internal/infrastructure/postgres"
)

const (
	seedExternalID = "seed-user-001"
	seedEmail      = "seed@test.local"
)

func strptr(s string) *string { return &s }

var favorites = []domain.Favorite{
	{RecipeID: 52772, Title: "Teriyaki Chicken Casserole", Image: strptr("https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg"), CookTime: strptr("45 minutes"), Servings: strptr("4")},
	{RecipeID: 52804, Title: "Poutine", Image: strptr("https://www.themealdb.com/images/media/meals/uuyrrx1487327597.jpg"), CookTime: strptr("30 minutes"), Servings: strptr("2")},
	{RecipeID: 52855, Title: "Banana Pancakes", CookTime: strptr("15 minutes"), Servings: strptr("2")},
	{RecipeID: 52977, Title: "Corba"},
	{RecipeID: 53060, Title: "Burek", Servings: strptr("6")},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	user, created, err := users.Upsert(ctx, &domain.User{
		ExternalUserID: seedExternalID,
		Email:          seedEmail,
		FirstName:      strptr("Seed"),
		LastName:       strptr("User"),
	})
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	fmt.Printf("user %s (id=%d, created=%v)\n", user.ExternalUserID, user.ID, created)

	favRepo := postgres.NewFavoriteRepository(pool)
	for _, f := range favorites {
		f.UserID = seedExternalID
		saved, err := favRepo.Create(ctx, &f)
		if err != nil {
			log.Fatalf("seed favorite %q: %v", f.Title, err)
		}
		fmt.Printf("favorite %q (id=%d)\n", saved.Title, saved.ID)
	}
}
