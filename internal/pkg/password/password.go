package password

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Argon2idHasher hashes and verifies account passwords. The login contract
// stays "succeeds iff the submitted password matches"; only the storage and
// comparison scheme is hardened over plain equality.
type Argon2idHasher struct {
	params *argon2id.Params
}

func NewArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{params: argon2id.DefaultParams}
}

func (h *Argon2idHasher) Hash(plain string) (string, error) {
	hash, err := argon2id.CreateHash(plain, h.params)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (h *Argon2idHasher) Compare(hash, plain string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(plain, hash)
	if err != nil {
		return false, fmt.Errorf("compare password: %w", err)
	}
	return match, nil
}
