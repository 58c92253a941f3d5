package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Length is the encoded size of a verification token: 32 random bytes
// (256 bits of entropy), lowercase hex.
const Length = 64

// New generates a cryptographically random verification token.
func New() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
