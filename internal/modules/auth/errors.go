package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("user_type must be creator or brand")
)
