package localtoken

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// derivedKeyBytes selects AES-256.
const derivedKeyBytes = 32

// deriveKey derives the AES key bound to an issuer from the master key via
// HKDF-SHA256 with the issuer URL as the info input. The same issuer always
// yields the same key, so within a validity window no key state needs to be
// stored or exchanged.
func deriveKey(masterKey, issuer string) ([]byte, error) {
	reader := hkdf.New(sha256.New, []byte(masterKey), nil, []byte(issuer))
	key := make([]byte, derivedKeyBytes)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive issuer key: %w", err)
	}
	return key, nil
}

func issuerAEAD(masterKey, issuer string) (cipher.AEAD, error) {
	key, err := deriveKey(masterKey, issuer)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return gcm, nil
}

// seal encrypts plaintext under the issuer-derived key. The output is
// raw-URL base64 of nonce||ciphertext, keeping the token a flat URL-safe
// string with a self-delimiting nonce.
func seal(plaintext, masterKey, issuer string) (string, error) {
	gcm, err := issuerAEAD(masterKey, issuer)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// open reverses seal. GCM authentication makes it fail loudly on corrupted
// or tampered input and on any key mismatch, including ciphertext minted
// for a different issuer. Every failure wraps ErrDecryptionFailure.
func open(encoded, masterKey, issuer string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: not valid ciphertext encoding: %v", ErrDecryptionFailure, err)
	}
	gcm, err := issuerAEAD(masterKey, issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailure, err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: ciphertext shorter than nonce", ErrDecryptionFailure)
	}
	plain, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailure, err)
	}
	return string(plain), nil
}
