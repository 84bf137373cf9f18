// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, bearer token verification (HS256 and
// JWKS) and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// SubjectCtxKey stores the verified auth subject ("sub" claim).
	SubjectCtxKey = contextKey("subject")

	// ProfileIDCtxKey stores the profile id resolved from the subject.
	ProfileIDCtxKey = contextKey("profileID")

	// TraceIDCtxKey stores the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// GetSubjectFromContext retrieves the auth subject from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}

// GetProfileIDFromContext retrieves the resolved profile id from the context.
func GetProfileIDFromContext(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(ProfileIDCtxKey).(string)
	return profileID, ok && profileID != ""
}

// GetTraceIDFromContext retrieves the request trace id from the context.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
