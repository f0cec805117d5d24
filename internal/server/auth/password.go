package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword applies a salted one-way transform to plaintext. The salt is
// randomized per call and embedded in the digest, so hashing the same
// plaintext twice yields different digests. An error means the underlying
// primitive failed, not that the input was rejected.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches digest. A non-matching
// digest is an ordinary false, never an error. The comparison inside bcrypt
// does not short-circuit on the first differing byte.
func CheckPassword(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
