package valueobjects

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// Token is a one-time secret. Only Hash is ever persisted.
type Token struct {
	value string
	hash  string
}

func GenerateToken() (*Token, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}

	value := hex.EncodeToString(buf)
	return &Token{
		value: value,
		hash:  HashToken(value),
	}, nil
}

func NewTokenFromValue(value string) (*Token, error) {
	if err := validateToken(value); err != nil {
		return nil, err
	}
	return &Token{
		value: value,
		hash:  HashToken(value),
	}, nil
}

func (t *Token) Value() string {
	return t.value
}

func (t *Token) Hash() string {
	return t.hash
}

func (t *Token) Verify(plainToken string) bool {
	return subtle.ConstantTimeCompare([]byte(HashToken(plainToken)), []byte(t.hash)) == 1
}

// HashToken returns the hex sha256 of a plaintext token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if len(token) != tokenBytes*2 {
		return fmt.Errorf("token must be %d characters long", tokenBytes*2)
	}
	if _, err := hex.DecodeString(token); err != nil {
		return fmt.Errorf("token must be a valid hexadecimal string")
	}
	return nil
}
