package domain

import "time"

// Favorite is a saved recipe reference for a given user. The same
// (UserID, RecipeID) pair may appear more than once; the store does not
// enforce uniqueness and clients may save duplicates.
type Favorite struct {
	ID        int64
	UserID    string
	RecipeID  int64
	Title     string
	Image     *string
	CookTime  *string
	Servings  *string
	CreatedAt time.Time
}
