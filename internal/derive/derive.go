// Package derive expands one master seed into independent per-chain key
// materials using HKDF-SHA256 with domain-separation labels.
package derive

import (
	"crypto/sha256"
	"fmt"
	"io"

	"tagvault/internal/model"

	"golang.org/x/crypto/hkdf"
)

// SeedLen is the required master seed size in bytes.
const SeedLen = 32

// maxExpand is the HKDF-SHA256 expansion limit (255 * hash size).
const maxExpand = 255 * sha256.Size

// Labels are the domain-separation info strings per chain. Fixed constants
// in production; a config struct so tests can override them.
type Labels struct {
	Ethereum string
	Solana   string
}

// DefaultLabels returns the labels every production wallet uses. Changing a
// label changes every key derived under it.
func DefaultLabels() Labels {
	return Labels{
		Ethereum: "ethereum",
		Solana:   "solana",
	}
}

// ChainKey derives length bytes of chain-specific key material from a
// 32-byte master seed. Deterministic: same (seed, label, length) always
// yields the same output; different labels yield unrelated outputs.
func ChainKey(seed []byte, label string, length int) ([]byte, error) {
	if len(seed) != SeedLen {
		return nil, model.NewInputError("seed must be exactly %d bytes, got %d", SeedLen, len(seed))
	}
	if length <= 0 || length > maxExpand {
		return nil, model.NewInputError("output length must be between 1 and %d bytes", maxExpand)
	}

	reader := hkdf.New(sha256.New, seed, nil, []byte(label))
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, fmt.Errorf("failed to expand chain key: %w", err)
	}
	return out, nil
}
