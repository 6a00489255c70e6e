package domain

import "errors"

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Transfer errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameUser          = errors.New("cannot transfer to same user")
	ErrInvalidAmount     = errors.New("amount must be positive")

	// Validation errors
	ErrInvalidName           = errors.New("invalid user name")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidInitialBalance = errors.New("initial balance must not be negative")
	ErrTooManyDecimalPlaces  = errors.New("no more than 2 decimal digits allowed")
)
