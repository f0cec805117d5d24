package common

import (
	"crypto/rand"
	"math/big"
)

// RandomDisplayID returns a random 5-digit number in [10000, 99999].
// Display IDs are user-facing labels, not keys: uniqueness is not enforced,
// and no lookup or ownership decision may ever be based on one.
func RandomDisplayID() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return 0, err
	}
	return 10000 + int(n.Int64()), nil
}
