package domain

import "errors"

// Authentication and authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoCredential       = errors.New("no credential supplied")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnknownRole        = errors.New("unknown role claim")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Admin account errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrAdminDisabled      = errors.New("admin account disabled")

	// Domain record errors
	ErrRecordNotFound = errors.New("record not found")
	ErrEmptyUpdate    = errors.New("no fields to update")
	ErrInvalidStatus  = errors.New("invalid status value")
)
