// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// Sealer encrypts small secrets (temporary and pending passwords) kept in
// session or local storage, so they are never stored in clear text.
type Sealer interface {
	// Seal encrypts and authenticates plaintext.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a value produced by Seal.
	Open(sealed []byte) ([]byte, error)
}
