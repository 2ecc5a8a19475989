package wallet

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"fmt"

	"tagvault/internal/envelope"
	"tagvault/internal/model"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	solanago "github.com/gagliardetto/solana-go"
)

// SignMessage unlocks the tag with the PIN and signs message with the
// requested chain's key. Solana signatures are base58 ed25519, Ethereum
// signatures are 0x-hex secp256k1 over the Keccak-256 digest of message.
func (s *Service) SignMessage(ctx context.Context, pin, chain string, message []byte) (string, error) {
	if err := checkPIN(pin); err != nil {
		return "", err
	}
	if chain != ChainSolana && chain != ChainEthereum {
		return "", model.NewInputError("unknown chain %q", chain)
	}

	secret, kind, err := s.unlock(ctx, pin)
	if err != nil {
		return "", err
	}
	defer clear(secret)

	switch kind {
	case envelope.KindWalletKey:
		if chain != ChainSolana {
			return "", model.NewInputError("tag holds a solana key, cannot sign for %s", chain)
		}
		if len(secret) != ed25519.PrivateKeySize {
			return "", model.NewInputError("unexpected wallet key length")
		}
		return signSolana(solanago.PrivateKey(secret), message)

	case envelope.KindMasterSeed:
		if chain == ChainSolana {
			priv, err := s.solanaKeyFromSeed(secret)
			if err != nil {
				return "", err
			}
			defer clear(priv)
			return signSolana(priv, message)
		}

		priv, err := s.ethereumKeyFromSeed(secret)
		if err != nil {
			return "", err
		}
		return signEthereum(priv, message)
	}

	return "", model.NewInputError("unsupported payload kind")
}

func signSolana(priv solanago.PrivateKey, message []byte) (string, error) {
	sig, err := priv.Sign(message)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	return sig.String(), nil
}

func signEthereum(priv *ecdsa.PrivateKey, message []byte) (string, error) {
	digest := ethcrypto.Keccak256(message)
	sig, err := ethcrypto.Sign(digest, priv)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	return hexutil.Encode(sig), nil
}
