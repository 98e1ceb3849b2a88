package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything else surfaces as a generic internal failure.
var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotInCart   = errors.New("product not found in cart")
	ErrUserNotFound    = errors.New("user not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrAddressNotFound = errors.New("address not found")

	ErrEmailTaken         = errors.New("user already exists")
	ErrProductExists      = errors.New("product already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrOTPNotVerified     = errors.New("OTP verification required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrForbidden          = errors.New("forbidden")
	ErrOTPUnavailable     = errors.New("OTP service unavailable")
)
