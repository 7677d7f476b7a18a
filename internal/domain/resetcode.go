package domain

import (
	"errors"
	"time"
)

var (
	// ErrCodeInvalid covers both "never issued" and "already used" — the two
	// cases are deliberately indistinguishable to the caller.
	ErrCodeInvalid = errors.New("invalid or expired verification code")
	ErrCodeExpired = errors.New("verification code has expired")
)

// ResetCode is a short-lived 6-digit credential proving email ownership.
// Rows are never deleted; used codes stay behind as an audit trail.
type ResetCode struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
