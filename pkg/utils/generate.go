package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// tokenAlphabet is the 62-symbol alphabet token keys are drawn from.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TokenKeyLength is the fixed length of an auth token key.
const TokenKeyLength = 40

// GenerateTokenKey returns a random alphanumeric key of the given length
// using crypto/rand. A length <= 0 falls back to TokenKeyLength.
func GenerateTokenKey(length int) (string, error) {
	if length <= 0 {
		length = TokenKeyLength
	}

	max := big.NewInt(int64(len(tokenAlphabet)))
	key := make([]byte, length)
	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate token key: %w", err)
		}
		key[i] = tokenAlphabet[n.Int64()]
	}

	return string(key), nil
}
