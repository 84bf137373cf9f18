// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthClaims is the verified identity extracted from a bearer token issued by
// the authentication provider.
type AuthClaims struct {
	// Subject is the stable external subject identifier ("sub" claim).
	Subject string

	// Issuer identifies the provider that signed the token.
	Issuer string

	// ExpiresAt is the token expiry time.
	ExpiresAt time.Time
}
