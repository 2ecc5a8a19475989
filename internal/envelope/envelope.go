// Package envelope defines the versioned text wrapper stored on a tag.
// The prefix identifies what kind of encrypted payload follows, so a reader
// can reject irrelevant tags before touching any cryptography.
package envelope

import (
	"errors"
	"strings"
)

// Kind identifies the payload behind an envelope prefix.
type Kind int

const (
	// KindWalletKey wraps a single encrypted wallet private key.
	KindWalletKey Kind = iota
	// KindMasterSeed wraps an encrypted 32-byte master seed for
	// multi-chain derivation.
	KindMasterSeed
)

const (
	prefixWalletKey  = "vaultkey1:"
	prefixMasterSeed = "vaultseed1:"
)

// ErrNotRecognized is the format error for tag contents without a known
// prefix. It fires before any decryption is attempted.
var ErrNotRecognized = errors.New("not a recognized tag payload")

// prefixes ordered longest first so Decode matches the longest recognized
// prefix. New kinds extend this table; unknown prefixes stay format errors.
var prefixes = []struct {
	prefix string
	kind   Kind
}{
	{prefixMasterSeed, KindMasterSeed},
	{prefixWalletKey, KindWalletKey},
}

func (k Kind) String() string {
	switch k {
	case KindWalletKey:
		return "wallet-key"
	case KindMasterSeed:
		return "master-seed"
	default:
		return "unknown"
	}
}

// Encode prepends the prefix for kind to an encrypted token.
func Encode(kind Kind, token string) string {
	switch kind {
	case KindMasterSeed:
		return prefixMasterSeed + token
	default:
		return prefixWalletKey + token
	}
}

// Decode trims whitespace and splits text into payload kind and token.
// Returns ErrNotRecognized when no known prefix matches.
func Decode(text string) (Kind, string, error) {
	text = strings.TrimSpace(text)
	for _, p := range prefixes {
		if strings.HasPrefix(text, p.prefix) {
			return p.kind, text[len(p.prefix):], nil
		}
	}
	return 0, "", ErrNotRecognized
}

// IsRecognized reports whether text carries a known envelope prefix.
// Non-throwing probe for deciding whether a scanned tag is relevant.
func IsRecognized(text string) bool {
	_, _, err := Decode(text)
	return err == nil
}
