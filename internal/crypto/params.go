package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2 parameters for PIN stretching.
	//
	// A PIN is low-entropy input, so the iteration count is the only thing
	// standing between a lost tag and a brute-force of the key space.
	// 100k rounds of SHA-256 keeps a derive call well under a second on
	// phones while making offline guessing expensive.
	pbkdf2Iterations = 100_000
	keyLen           = 32 // AES-256
	nonceLen         = 12 // GCM standard nonce size
)

// pinSalt is shared by every wallet. A per-wallet random salt would resist
// precomputation across wallets but changes the tag format; kept global to
// stay readable by already-written tags. Override via Params if a deployment
// stores its own salt next to the envelope.
var pinSalt = []byte("tagvault/pin-kdf/v1")

// Params controls PIN key derivation. Components receive it at construction
// time so tests can substitute cheaper or per-wallet values.
type Params struct {
	Salt       []byte
	Iterations int
	KeyLen     int
}

// DefaultParams returns the parameters every production wallet uses.
func DefaultParams() Params {
	return Params{
		Salt:       pinSalt,
		Iterations: pbkdf2Iterations,
		KeyLen:     keyLen,
	}
}

// DeriveKey stretches a low-entropy PIN into symmetric key material.
// Deterministic: the same PIN always yields the same key. Empty PINs are the
// caller's problem; this function accepts any string.
func (p Params) DeriveKey(pin string) []byte {
	return pbkdf2.Key([]byte(pin), p.Salt, p.Iterations, p.KeyLen, sha256.New)
}
