package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	nonceSize = 24
	keySize   = 32
)

// ErrSealedValueInvalid is returned when a sealed value was tampered with or sealed under another key.
var ErrSealedValueInvalid = errors.New("sealed value invalid")

// secretboxSealer is a concrete implementation of the Sealer interface using NaCl secretbox.
type secretboxSealer struct {
	key [keySize]byte
}

// NewSecretboxSealer derives the sealing key from the configured session secret.
func NewSecretboxSealer(cfg *config.Config) (service.Sealer, error) {
	if cfg.Session == nil || cfg.Session.SealKey == "" {
		return nil, errors.New("session seal key must be provided")
	}

	return newSecretboxSealer([]byte(cfg.Session.SealKey))
}

func newSecretboxSealer(secret []byte) (*secretboxSealer, error) {
	s := &secretboxSealer{}
	kdf := hkdf.New(sha256.New, secret, nil, []byte("storefront sealer v1"))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, errors.Wrap(err, "failed to derive seal key")
	}

	return s, nil
}

// Seal encrypts plaintext, prefixing the random nonce.
func (s *secretboxSealer) Seal(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errors.Wrap(err, "failed to read nonce")
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &s.key), nil
}

// Open decrypts a value produced by Seal.
func (s *secretboxSealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrSealedValueInvalid
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrSealedValueInvalid
	}

	return plaintext, nil
}
