package service

import "errors"

var (
	// ErrUnauthenticated is returned by AdminAuthService.Login for a wrong password.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnknownCollection is returned when a status update names a collection
	// that has no triage state.
	ErrUnknownCollection = errors.New("unknown collection")
)
