// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HealthKeeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the error slot of the response envelope or into log entries.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the object store rejects or
	// fails an image operation.
	MsgStorageUnavailable = "image storage unavailable"

	// MsgNotAuthenticated is returned when a request carries no usable
	// bearer token.
	MsgNotAuthenticated = "not authenticated"

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsInvalid is returned when a bearer token cannot be verified.
	MsgTokenIsInvalid = "token is invalid"

	// MsgProfileUnavailable is returned when the profile of an authenticated
	// subject cannot be loaded or created.
	MsgProfileUnavailable = "profile unavailable"

	// MsgTooManyRequests is returned when a subject exceeds its request rate.
	MsgTooManyRequests = "too many requests"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when a route exists but does not
	// handle the request method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgFileTooLarge is returned when an uploaded image exceeds the limit.
	MsgFileTooLarge = "file too large"

	// MsgNoFileProvided is returned when a multipart upload has no file part.
	MsgNoFileProvided = "no file provided"

	// MsgRequestTimeout is returned when the backend does not answer within
	// the request deadline.
	MsgRequestTimeout = "request timed out"
)
