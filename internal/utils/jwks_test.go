package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwksServer(t *testing.T, kid string, pub *rsa.PublicKey, hits *int32) *httptest.Server {
	t.Helper()
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes())
	n := base64.RawURLEncoding.EncodeToString(pub.N.Bytes())

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		_, _ = WriteJSON(w, map[string]any{
			"keys": []map[string]string{{"kid": kid, "kty": "RSA", "alg": "RS256", "use": "sig", "n": n, "e": e}},
		}, http.StatusOK)
	}))
}

func signRS256(t *testing.T, key *rsa.PrivateKey, kid, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    "https://clerk.example",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestJWKSProvider_ValidatesToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	srv := jwksServer(t, "k1", &key.PublicKey, &hits)
	defer srv.Close()

	p := NewJWKSProvider(srv.URL, NewHTTPClient())

	claims, err := ValidateKeyFuncToken(signRS256(t, key, "k1", "user_clerk"), p.KeyFunc, "https://clerk.example")
	require.NoError(t, err)
	assert.Equal(t, "user_clerk", claims.Subject)

	// cached: second validation does not refetch
	_, err = ValidateKeyFuncToken(signRS256(t, key, "k1", "user_clerk"), p.KeyFunc, "")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestJWKSProvider_UnknownKidRateLimited(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	srv := jwksServer(t, "k1", &key.PublicKey, &hits)
	defer srv.Close()

	p := NewJWKSProvider(srv.URL, NewHTTPClient())

	_, err = ValidateKeyFuncToken(signRS256(t, key, "k1", "u"), p.KeyFunc, "")
	require.NoError(t, err)

	_, err = ValidateKeyFuncToken(signRS256(t, key, "unknown", "u"), p.KeyFunc, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJWKSKeyNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestJWKSProvider_RejectsHMAC(t *testing.T) {
	p := NewJWKSProvider("http://127.0.0.1:0", NewHTTPClient())
	signed, err := GenerateHS256Token("u", "", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateKeyFuncToken(signed, p.KeyFunc, "")
	assert.Error(t, err)
}

func TestJWKSProvider_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewJWKSProvider(srv.URL, NewHTTPClient())
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = ValidateKeyFuncToken(signRS256(t, key, "k1", "u"), p.KeyFunc, "")
	assert.Error(t, err)
}
