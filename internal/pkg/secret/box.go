package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrDecrypt = errors.New("secret: cannot open sealed value")

// Box seals small values (device credentials) before they reach a session store.
type Box struct {
	key [32]byte
}

// NewBox uses a base64 encoded 32 byte key.
func NewBox(encodedKey string) (*Box, error) {
	raw, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("secret: decode key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("secret: key must be 32 bytes, got %d", len(raw))
	}
	b := &Box{}
	copy(b.key[:], raw)
	return b, nil
}

// DeriveBox derives the key from another secret with HKDF-SHA256. Used when
// no dedicated key is configured.
func DeriveBox(secret, purpose string) (*Box, error) {
	b := &Box{}
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	if _, err := io.ReadFull(r, b.key[:]); err != nil {
		return nil, fmt.Errorf("secret: derive key: %w", err)
	}
	return b, nil
}

// Seal returns base64(nonce || ciphertext).
func (b *Box) Seal(plaintext []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("secret: nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, &b.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (b *Box) Open(encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrDecrypt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &b.key)
	if !ok {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
