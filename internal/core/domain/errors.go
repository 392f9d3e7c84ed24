package domain

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidChoice   = errors.New("choice must be CRACKED or COOKED")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrAdminRequired   = errors.New("admin privileges required")
	ErrStartupNotFound = errors.New("startup not found")
	ErrStartupExists   = errors.New("startup already exists")
	ErrUserNotFound    = errors.New("user not found")
)
