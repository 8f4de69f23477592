package ports

// PasswordHasher is a one-way, salted hash for credentials at rest.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A malformed
	// stored hash verifies as false, never as an error.
	Verify(plaintext, hash string) bool
}
