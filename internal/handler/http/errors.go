// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoProfileInContext is returned when a handler runs without the
	// profile middleware in front of it.
	ErrNoProfileInContext = errors.New("no profile id in request context")

	// ErrInvalidQueryParam is returned for malformed query parameters.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrNoFile is returned when a multipart upload carries no file part.
	ErrNoFile = errors.New("no file part in multipart form")
)
