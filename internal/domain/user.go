package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User mirrors an account held by the external auth provider.
// ExternalUserID is the provider-issued identifier and the join key;
// this service never deletes users.
type User struct {
	ID             int64
	ExternalUserID string
	Email          string
	FirstName      *string
	LastName       *string
	CreatedAt      time.Time
	LastSignInAt   *time.Time
}

// UserStats reports registration statistics for one user. UserOrder is the
// surrogate id, which tracks registration order as long as ids are assigned
// sequentially and rows are never deleted.
type UserStats struct {
	TotalUsers int64
	UserOrder  int64
}
