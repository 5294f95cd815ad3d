package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUpstream           = errors.New("upstream HRIS unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Approval workflow errors
var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrActionInFlight   = errors.New("an action for this record is already in progress")
	ErrReasonRequired   = errors.New("a rejection reason is required")
	ErrAlreadyFinalized = errors.New("record has already been finalized")
)
