package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNotFound          = errors.New("not found")
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrNothingToUpdate   = errors.New("nothing to update")

	ErrNoSubject      = errors.New("no auth subject given")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenIsExpired = errors.New("token is expired")

	ErrNoTokenVerifier       = errors.New("neither jwt secret nor jwks url is configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownGender = errors.New("gender must be male or female")

	ErrStorage = errors.New("object storage failure")
)
