package utils

import (
	"strings"
	"testing"
)

func TestGenerateTokenKey_Length(t *testing.T) {
	key, err := GenerateTokenKey(TokenKeyLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key) != 40 {
		t.Errorf("expected 40-character key, got %d: %s", len(key), key)
	}
}

func TestGenerateTokenKey_DefaultLength(t *testing.T) {
	key, err := GenerateTokenKey(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key) != TokenKeyLength {
		t.Errorf("expected default length %d, got %d", TokenKeyLength, len(key))
	}
}

func TestGenerateTokenKey_Alphabet(t *testing.T) {
	key, err := GenerateTokenKey(200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range key {
		if !strings.ContainsRune(tokenAlphabet, c) {
			t.Errorf("key contains character outside alphabet: %q", c)
		}
	}
}

func TestGenerateTokenKey_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := GenerateTokenKey(TokenKeyLength)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}
