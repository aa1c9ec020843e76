package password

import (
	"strings"
	"testing"
)

func TestBcryptHasher_Hash(t *testing.T) {
	h := NewBcryptHasher(10)

	digest, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(digest, "$2a$") && !strings.HasPrefix(digest, "$2b$") {
		t.Errorf("digest should start with $2a$ or $2b$, got: %s", digest)
	}
	if digest == "password123" {
		t.Error("digest must never equal the raw password")
	}
}

func TestBcryptHasher_HashUnique(t *testing.T) {
	h := NewBcryptHasher(10)

	digest1, _ := h.Hash("password123")
	digest2, _ := h.Hash("password123")

	if digest1 == digest2 {
		t.Error("digests should differ due to per-call salt")
	}
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := NewBcryptHasher(10)

	digest, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"correct password", "password123", true},
		{"wrong password", "wrongpassword", false},
		{"empty password", "", false},
		{"similar password", "password124", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := h.Verify(tt.raw, digest)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if valid != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.raw, valid, tt.want)
			}
		})
	}
}

func TestBcryptHasher_VerifyInvalidDigest(t *testing.T) {
	h := NewBcryptHasher(10)

	for _, digest := range []string{"", "not-a-hash", "$2a$12$abc"} {
		if _, err := h.Verify("password", digest); err == nil {
			t.Errorf("expected error for invalid digest %q", digest)
		}
	}
}

func TestBcryptHasher_CostClamping(t *testing.T) {
	h := NewBcryptHasher(1)
	if h.cost < 4 {
		t.Errorf("cost should be clamped to bcrypt minimum, got %d", h.cost)
	}

	h2 := NewBcryptHasher(100)
	if h2.cost > 31 {
		t.Errorf("cost should be clamped to bcrypt maximum, got %d", h2.cost)
	}
}
