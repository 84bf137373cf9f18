package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService verifies bearer tokens issued by the external auth provider.
// The server never issues tokens itself.
type authService struct {
	// hs256Secret is the shared secret of Supabase Auth. Tokens signed with
	// HS256 are verified against it.
	hs256Secret string

	// keys resolves public keys of asymmetrically signed tokens (Clerk).
	// Nil when no JWKS endpoint is configured.
	keys *utils.JWKSProvider

	// issuer, when non-empty, must match the "iss" claim.
	issuer string

	logger *logger.Logger
}

func NewAuthService(cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	if cfg.SupabaseJWTSecret == "" && cfg.JWKSURL == "" {
		return nil, ErrNoTokenVerifier
	}

	s := &authService{
		hs256Secret: cfg.SupabaseJWTSecret,
		issuer:      cfg.Issuer,
		logger:      logger,
	}
	if cfg.JWKSURL != "" {
		s.keys = utils.NewJWKSProvider(cfg.JWKSURL, utils.NewHTTPClient())
	}
	return s, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.AuthClaims, error) {
	var (
		claims models.AuthClaims
		err    error
	)

	switch {
	case a.hs256Secret != "" && (a.keys == nil || signedWithHS256(tokenString)):
		claims, err = utils.ValidateHS256Token(tokenString, a.hs256Secret, a.issuer)
	case a.keys != nil:
		claims, err = utils.ValidateKeyFuncToken(tokenString, a.keys.KeyFunc, a.issuer)
	default:
		return models.AuthClaims{}, ErrInvalidToken
	}

	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.AuthClaims{}, mapTokenError(err)
	}
	return claims, nil
}

// signedWithHS256 peeks at the unverified header to route the token to the
// matching verifier.
func signedWithHS256(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return false
	}
	return token.Method.Alg() == jwt.SigningMethodHS256.Alg()
}
