package auth

import "errors"

var (
	ErrEmailPasswordRequired = errors.New("email and password are required")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserNotFound          = errors.New("user not found")
)
