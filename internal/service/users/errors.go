package users

import "errors"

var (
	ErrInvalidUser          = errors.New("login and a valid email are required")
	ErrLoginTaken           = errors.New("login already registered")
	ErrEmailTaken           = errors.New("email already registered")
	ErrProviderAccountTaken = errors.New("provider account already linked")
	ErrUnknownCurrency      = errors.New("unknown base currency")
	ErrUserNotFound         = errors.New("user not found")
)
