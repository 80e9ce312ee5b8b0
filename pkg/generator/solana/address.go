// Package solana derives Solana addresses: the Base58 encoding of an Ed25519 public key.
package solana

import (
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/mr-tron/base58"
)

// KeyFromSeed expands a 32-byte Ed25519 seed into its public key.
func KeyFromSeed(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d", generator.ErrEncoding, ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	return pub, nil
}

// DeriveAddress returns the Base58 address of a 32-byte public key.
func DeriveAddress(pubKey []byte) (string, error) {
	if len(pubKey) != ed25519.PublicKeySize {
		return "", fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d", generator.ErrEncoding, ed25519.PublicKeySize, len(pubKey))
	}
	return base58.Encode(pubKey), nil
}

// Decode returns the 32 public key bytes behind an address.
func Decode(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generator.ErrEncoding, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: decoded %d bytes, want %d", generator.ErrEncoding, len(raw), ed25519.PublicKeySize)
	}
	return raw, nil
}

// IsOnCurve reports whether the address decodes to a valid Ed25519 point.
// Program-derived addresses are deliberately off the curve.
func IsOnCurve(address string) bool {
	raw, err := Decode(address)
	if err != nil {
		return false
	}
	_, err = new(edwards25519.Point).SetBytes(raw)
	return err == nil
}
