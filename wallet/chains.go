package wallet

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"fmt"

	"tagvault/internal/derive"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	solanago "github.com/gagliardetto/solana-go"
)

// solanaAddressFromSeed derives the Solana address for a master seed.
func (s *Service) solanaAddressFromSeed(seed []byte) (string, error) {
	material, err := derive.ChainKey(seed, s.labels.Solana, derive.SeedLen)
	if err != nil {
		return "", err
	}
	defer clear(material)

	priv := solanago.PrivateKey(ed25519.NewKeyFromSeed(material))
	defer clear(priv)

	return priv.PublicKey().String(), nil
}

// solanaKeyFromSeed derives the full ed25519 private key for a master seed.
// Caller must zero the returned key after use.
func (s *Service) solanaKeyFromSeed(seed []byte) (solanago.PrivateKey, error) {
	material, err := derive.ChainKey(seed, s.labels.Solana, derive.SeedLen)
	if err != nil {
		return nil, err
	}
	defer clear(material)

	return solanago.PrivateKey(ed25519.NewKeyFromSeed(material)), nil
}

// ethereumKeyFromSeed derives the secp256k1 private key for a master seed.
func (s *Service) ethereumKeyFromSeed(seed []byte) (*ecdsa.PrivateKey, error) {
	material, err := derive.ChainKey(seed, s.labels.Ethereum, derive.SeedLen)
	if err != nil {
		return nil, err
	}
	defer clear(material)

	priv, err := ethcrypto.ToECDSA(material)
	if err != nil {
		return nil, fmt.Errorf("failed to build ethereum key: %w", err)
	}
	return priv, nil
}

// ethereumAddressFromSeed derives the Ethereum address for a master seed.
func (s *Service) ethereumAddressFromSeed(seed []byte) (string, error) {
	priv, err := s.ethereumKeyFromSeed(seed)
	if err != nil {
		return "", err
	}

	return ethcrypto.PubkeyToAddress(priv.PublicKey).Hex(), nil
}
