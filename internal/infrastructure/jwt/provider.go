// Package jwtinfra verifies the RS256 bearer tokens the account system
// attaches to trigger webhook calls. The mailer only holds the public key;
// signing happens on the caller's side.
package jwtinfra

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finsync/mailer/internal/config"
)

// Claims holds the trigger token payload. Source names the calling system.
type Claims struct {
	Source string `json:"source"`
	jwt.RegisteredClaims
}

// Verifier checks RS256 signatures on trigger webhook tokens.
type Verifier struct {
	publicKey *rsa.PublicKey
}

func NewVerifier(cfg *config.Config) (*Verifier, error) {
	pubBytes, err := os.ReadFile(cfg.TriggerJWTPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read trigger public key: %w", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse trigger public key: %w", err)
	}
	return &Verifier{publicKey: pubKey}, nil
}

func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.publicKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
