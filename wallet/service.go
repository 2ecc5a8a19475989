// Package wallet implements the tag-backed wallet flows: create a wallet on
// an empty tag, read one back with a PIN, sign with the recovered keys.
package wallet

import (
	"strings"

	"tagvault/internal/crypto"
	"tagvault/internal/derive"
	"tagvault/internal/model"
	"tagvault/internal/tag"
)

// Chain names accepted by signing and address lookups.
const (
	ChainSolana   = "solana"
	ChainEthereum = "ethereum"
)

// Service owns the tag device and the crypto/derivation parameters.
// All flows are stateless between calls; secrets live only for the duration
// of the call that needs them.
type Service struct {
	device tag.Device
	params crypto.Params
	labels derive.Labels
}

// New creates a Service with production parameters.
func New(device tag.Device) *Service {
	return NewWithParams(device, crypto.DefaultParams(), derive.DefaultLabels())
}

// NewWithParams creates a Service with explicit parameters (tests, or
// deployments carrying their own KDF salt).
func NewWithParams(device tag.Device, params crypto.Params, labels derive.Labels) *Service {
	return &Service{
		device: device,
		params: params,
		labels: labels,
	}
}

func checkPIN(pin string) error {
	if strings.TrimSpace(pin) == "" {
		return model.NewInputError("pin is required")
	}
	return nil
}
