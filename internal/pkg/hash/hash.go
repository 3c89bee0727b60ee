package hash

// Hash hashes a plaintext string and verifies plaintext against a hash.
type Hash interface {
	Hash(str string) ([]byte, error)
	Verify(hashed, str string) bool
}
