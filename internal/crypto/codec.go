package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrAuthentication is returned for every decryption failure: wrong PIN,
// flipped bits, truncated token, bad base64. One error for all of them so a
// caller (or an attacker watching the caller) cannot tell which it was.
var ErrAuthentication = errors.New("incorrect PIN or corrupted data")

// Encrypt seals plaintext with AES-256-GCM under key and returns
// base64(nonce || ciphertext || tag). A fresh random nonce is drawn per
// call, so encrypting the same plaintext twice yields different tokens.
// key must be []byte from DeriveKey (caller should zero it after use)
func Encrypt(plaintext, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends ciphertext+tag after the nonce prefix
	sealed := aesGCM.Seal(nonce, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any accepted plaintext is byte-exact with what
// was sealed; everything else fails with ErrAuthentication.
func Decrypt(token string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrAuthentication
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	// Shortest valid token is nonce + tag (empty plaintext)
	if len(raw) < nonceLen+aesGCM.Overhead() {
		return nil, ErrAuthentication
	}

	plaintext, err := aesGCM.Open(nil, raw[:nonceLen], raw[nonceLen:], nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}
