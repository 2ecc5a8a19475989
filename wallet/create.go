package wallet

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"tagvault/internal/crypto"
	"tagvault/internal/derive"
	"tagvault/internal/envelope"
	"tagvault/internal/model"
	"tagvault/internal/tag"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"
)

// CreateResult is what a create/import flow hands back to the caller.
// Mnemonic is set only for seed wallets and is shown exactly once; it is
// never stored anywhere.
type CreateResult struct {
	Kind            string
	SolanaAddress   string
	EthereumAddress string
	Mnemonic        string
	QR              string
}

// CreateKeyWallet generates a new Solana keypair, encrypts its private key
// under the PIN and writes the envelope to the tag.
func (s *Service) CreateKeyWallet(ctx context.Context, pin string) (*CreateResult, error) {
	if err := checkPIN(pin); err != nil {
		return nil, err
	}

	w := solanago.NewWallet()
	defer clear(w.PrivateKey)

	address := w.PublicKey().String()

	key := s.params.DeriveKey(pin)
	defer clear(key)

	token, err := crypto.Encrypt(w.PrivateKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt wallet key: %w", err)
	}

	env := envelope.Encode(envelope.KindWalletKey, token)
	if err := s.device.Write(ctx, []tag.Record{tag.WalletRecord(env)}); err != nil {
		return nil, fmt.Errorf("failed to write tag: %w", err)
	}

	qr, err := addressQR(address)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		Kind:          envelope.KindWalletKey.String(),
		SolanaAddress: address,
		QR:            qr,
	}, nil
}

// CreateSeedWallet generates a fresh 32-byte master seed, encrypts it under
// the PIN and writes the envelope to the tag. Per-chain keys are derived
// from the seed; the plaintext seed is discarded once the write completes.
func (s *Service) CreateSeedWallet(ctx context.Context, pin string) (*CreateResult, error) {
	if err := checkPIN(pin); err != nil {
		return nil, err
	}

	seed := make([]byte, derive.SeedLen)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	defer clear(seed)

	// 32 bytes of entropy encode as a 24-word mnemonic backup
	mnemonic, err := bip39.NewMnemonic(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build mnemonic: %w", err)
	}

	return s.writeSeedWallet(ctx, pin, seed, mnemonic)
}

// ImportSeedWallet restores a master seed from its mnemonic backup and
// writes it to the tag under a new PIN.
func (s *Service) ImportSeedWallet(ctx context.Context, pin, mnemonic string) (*CreateResult, error) {
	if err := checkPIN(pin); err != nil {
		return nil, err
	}

	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	seed, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, model.NewInputError("invalid mnemonic")
	}
	defer clear(seed)

	if len(seed) != derive.SeedLen {
		return nil, model.NewInputError("mnemonic must encode a %d-byte seed", derive.SeedLen)
	}

	return s.writeSeedWallet(ctx, pin, seed, mnemonic)
}

func (s *Service) writeSeedWallet(ctx context.Context, pin string, seed []byte, mnemonic string) (*CreateResult, error) {
	solAddress, err := s.solanaAddressFromSeed(seed)
	if err != nil {
		return nil, err
	}

	ethAddress, err := s.ethereumAddressFromSeed(seed)
	if err != nil {
		return nil, err
	}

	key := s.params.DeriveKey(pin)
	defer clear(key)

	token, err := crypto.Encrypt(seed, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt seed: %w", err)
	}

	env := envelope.Encode(envelope.KindMasterSeed, token)
	if err := s.device.Write(ctx, []tag.Record{tag.WalletRecord(env)}); err != nil {
		return nil, fmt.Errorf("failed to write tag: %w", err)
	}

	qr, err := addressQR(solAddress)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		Kind:            envelope.KindMasterSeed.String(),
		SolanaAddress:   solAddress,
		EthereumAddress: ethAddress,
		Mnemonic:        mnemonic,
		QR:              qr,
	}, nil
}
