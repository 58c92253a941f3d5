package jwtinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsync/mailer/internal/config"
)

func writeTestKeys(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trigger.pub.pem")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, pem.Encode(f, &pem.Block{Type: "PUBLIC KEY", Bytes: der}))
	require.NoError(t, f.Close())
	return priv, path
}

func signToken(t *testing.T, priv *rsa.PrivateKey, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		Source: "account-service",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	priv, pubPath := writeTestKeys(t)
	v, err := NewVerifier(&config.Config{TriggerJWTPublicKeyPath: pubPath})
	require.NoError(t, err)

	claims, err := v.Verify(signToken(t, priv, 5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "account-service", claims.Source)
}

func TestVerify_ExpiredToken(t *testing.T) {
	priv, pubPath := writeTestKeys(t)
	v, err := NewVerifier(&config.Config{TriggerJWTPublicKeyPath: pubPath})
	require.NoError(t, err)

	_, err = v.Verify(signToken(t, priv, -5*time.Minute))
	require.Error(t, err)
}

func TestVerify_WrongKey(t *testing.T) {
	_, pubPath := writeTestKeys(t)
	v, err := NewVerifier(&config.Config{TriggerJWTPublicKeyPath: pubPath})
	require.NoError(t, err)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = v.Verify(signToken(t, other, 5*time.Minute))
	require.Error(t, err)
}

func TestVerify_RejectsHMAC(t *testing.T) {
	_, pubPath := writeTestKeys(t)
	v, err := NewVerifier(&config.Config{TriggerJWTPublicKeyPath: pubPath})
	require.NoError(t, err)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Source: "spoof"}).
		SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = v.Verify(signed)
	require.Error(t, err)
}

func TestNewVerifier_MissingKeyFile(t *testing.T) {
	_, err := NewVerifier(&config.Config{TriggerJWTPublicKeyPath: "/nonexistent/key.pem"})
	require.Error(t, err)
}
