package wallet

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"

	"tagvault/internal/crypto"
	"tagvault/internal/envelope"
	"tagvault/internal/model"
	"tagvault/internal/tag"

	solanago "github.com/gagliardetto/solana-go"
)

// ReadResult is what unlocking a tag hands back. Only public material.
type ReadResult struct {
	Kind            string
	SolanaAddress   string
	EthereumAddress string
	QR              string
}

// Probe reports whether the tag in range carries a recognized wallet
// envelope. No PIN needed; nothing is decrypted.
func (s *Service) Probe(ctx context.Context) (bool, error) {
	records, err := s.device.Scan(ctx)
	if err != nil {
		if errors.Is(err, tag.ErrNoTag) {
			return false, nil
		}
		return false, fmt.Errorf("failed to scan tag: %w", err)
	}

	_, ok := tag.FindEnvelope(records)
	return ok, nil
}

// ReadWallet scans the tag, decrypts its envelope with the PIN and rebuilds
// the wallet addresses for the payload kind found.
func (s *Service) ReadWallet(ctx context.Context, pin string) (*ReadResult, error) {
	if err := checkPIN(pin); err != nil {
		return nil, err
	}

	secret, kind, err := s.unlock(ctx, pin)
	if err != nil {
		return nil, err
	}
	defer clear(secret)

	result := &ReadResult{Kind: kind.String()}

	switch kind {
	case envelope.KindWalletKey:
		if len(secret) != ed25519.PrivateKeySize {
			return nil, model.NewInputError("unexpected wallet key length")
		}
		result.SolanaAddress = solanago.PrivateKey(secret).PublicKey().String()

	case envelope.KindMasterSeed:
		result.SolanaAddress, err = s.solanaAddressFromSeed(secret)
		if err != nil {
			return nil, err
		}
		result.EthereumAddress, err = s.ethereumAddressFromSeed(secret)
		if err != nil {
			return nil, err
		}
	}

	result.QR, err = addressQR(result.SolanaAddress)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// unlock runs the shared scan -> envelope -> decrypt pipeline. The envelope
// prefix check happens before any key derivation, so non-wallet tags are
// rejected cheaply and without touching crypto failure paths.
// Caller must zero the returned secret after use.
func (s *Service) unlock(ctx context.Context, pin string) ([]byte, envelope.Kind, error) {
	records, err := s.device.Scan(ctx)
	if err != nil {
		if errors.Is(err, tag.ErrNoTag) {
			return nil, 0, envelope.ErrNotRecognized
		}
		return nil, 0, fmt.Errorf("failed to scan tag: %w", err)
	}

	env, ok := tag.FindEnvelope(records)
	if !ok {
		return nil, 0, envelope.ErrNotRecognized
	}

	kind, token, err := envelope.Decode(env)
	if err != nil {
		return nil, 0, err
	}

	key := s.params.DeriveKey(pin)
	defer clear(key)

	secret, err := crypto.Decrypt(token, key)
	if err != nil {
		return nil, 0, err
	}

	return secret, kind, nil
}
