package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")

	ErrUserNotFound = errors.New("User not found")
	ErrJobNotFound  = errors.New("Job not found")
)
