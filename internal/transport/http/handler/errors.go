package handler

const (
	errInternalServer     = "Something went wrong"
	errMissingFields      = "Missing required fields"
	errUserIDRequired     = "User ID is required"
	errUserRecipeRequired = "User ID and Recipe ID are required"
	errUserNotFound       = "User not found"
	errCodeInvalid        = "Invalid or expired verification code"
	errCodeExpired        = "Verification code has expired"
)
