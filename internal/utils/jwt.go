package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned for a missing or malformed
	// "Authorization: Bearer <token>" header.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptySubject is returned when a verified token carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject error")
)

// ValidateHS256Token verifies a token signed with a shared secret (Supabase
// Auth) and returns its claims. When issuer is non-empty the "iss" claim must
// match it.
func ValidateHS256Token(tokenString, secret, issuer string) (models.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return models.AuthClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claimsFromToken(token)
}

// ValidateKeyFuncToken verifies an asymmetrically signed token using keyFunc
// (typically [JWKSProvider.KeyFunc]).
func ValidateKeyFuncToken(tokenString string, keyFunc jwt.Keyfunc, issuer string) (models.AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, keyFunc, opts...)
	if err != nil {
		return models.AuthClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claimsFromToken(token)
}

func claimsFromToken(token *jwt.Token) (models.AuthClaims, error) {
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.AuthClaims{}, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return models.AuthClaims{}, ErrEmptySubject
	}

	out := models.AuthClaims{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// GenerateHS256Token signs a token for subject with the shared secret.
// Used by local tooling and tests to mint tokens the server accepts.
func GenerateHS256Token(subject, issuer string, duration time.Duration, secret string) (string, error) {
	if subject == "" || duration == 0 || secret == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
