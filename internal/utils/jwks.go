package utils

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrJWKSKeyNotFound is returned when no key with the token's kid is published.
var ErrJWKSKeyNotFound = errors.New("jwks key not found")

const jwksMinRefreshInterval = time.Minute

type jwkSet struct {
	Keys []jsonWebKey `json:"keys"`
}

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSProvider resolves RSA verification keys from a JSON Web Key Set
// endpoint (Clerk). Keys are cached and refetched at most once a minute when
// an unknown kid is seen.
type JWKSProvider struct {
	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	url       string
	client    *HTTPClient
	refreshed time.Time
	now       func() time.Time
}

// NewJWKSProvider constructs a provider fetching keys from jwksURL with client.
func NewJWKSProvider(jwksURL string, client *HTTPClient) *JWKSProvider {
	return &JWKSProvider{
		url:    jwksURL,
		client: client,
		keys:   make(map[string]*rsa.PublicKey),
		now:    time.Now,
	}
}

// KeyFunc implements [jwt.Keyfunc].
func (p *JWKSProvider) KeyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, errors.New("kid header not found")
	}

	return p.Key(context.Background(), kid)
}

// Key returns the public key for kid, refreshing the set if it is unknown.
func (p *JWKSProvider) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	p.mu.RLock()
	key, exists := p.keys[kid]
	p.mu.RUnlock()
	if exists {
		return key, nil
	}

	if err := p.refresh(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	key, exists = p.keys[kid]
	p.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrJWKSKeyNotFound, kid)
	}
	return key, nil
}

func (p *JWKSProvider) refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.now().Sub(p.refreshed) < jwksMinRefreshInterval && len(p.keys) > 0 {
		return nil
	}

	var set jwkSet
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&set).
		Get(p.url)
	if err != nil {
		return fmt.Errorf("error fetching jwks: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("error fetching jwks: status %d", resp.StatusCode())
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			return fmt.Errorf("error decoding jwk %s: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}

	p.keys = keys
	p.refreshed = p.now()
	return nil
}

func (k jsonWebKey) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
