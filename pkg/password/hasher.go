// Package password provides password hashing and verification.
package password

// Hasher is the one-way digest primitive injected into the auth service.
// Implementations must salt per call, so hashing the same input twice
// yields different digests, and must compare in constant time.
type Hasher interface {
	// Hash creates a salted digest from a raw password.
	Hash(raw string) (string, error)

	// Verify reports whether raw was the input that produced digest.
	Verify(raw, digest string) (bool, error)
}
