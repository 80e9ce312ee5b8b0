package tron

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// TronMainnetPrefix is the address prefix for Tron mainnet (0x41)
const TronMainnetPrefix = 0x41

// AddressLength is the length of a Base58Check Tron address.
const AddressLength = 34

// HashMode selects how the 20-byte account hash is computed from the public key.
type HashMode int

const (
	// HashKeccak is Keccak-256 of the 64 coordinate bytes, low 20 bytes. Used by Tron wallets.
	HashKeccak HashMode = iota
	// HashLegacy160 is RIPEMD-160(SHA-256(...)) of the coordinate bytes.
	HashLegacy160
)

// String returns the configuration name of the mode.
func (m HashMode) String() string {
	if m == HashLegacy160 {
		return "hash160"
	}
	return "keccak"
}

// ParseHashMode parses "keccak" or "hash160".
func ParseHashMode(s string) (HashMode, error) {
	switch s {
	case "", "keccak":
		return HashKeccak, nil
	case "hash160", "legacy":
		return HashLegacy160, nil
	default:
		return HashKeccak, fmt.Errorf("%w: unknown tron hash mode %q", generator.ErrInvalidConfig, s)
	}
}

// PublicKey returns the 65-byte uncompressed secp256k1 public key.
// Scalars that are zero or not below the curve order are rejected.
func PublicKey(privKey []byte) ([]byte, error) {
	if len(privKey) != 32 {
		return nil, fmt.Errorf("%w: private key must be 32 bytes, got %d", generator.ErrEncoding, len(privKey))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(privKey); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: private key out of range", generator.ErrEncoding)
	}

	_, pub := btcec.PrivKeyFromBytes(privKey)
	return pub.SerializeUncompressed(), nil
}

// DeriveAddress derives a Tron address from an uncompressed public key.
// Tron address = Base58Check(0x41 + last 20 bytes of Keccak256(pubKey[1:]))
// All Tron addresses start with 'T'.
func DeriveAddress(pubKeyBytes []byte, mode HashMode) (string, error) {
	if len(pubKeyBytes) != 65 || pubKeyBytes[0] != 0x04 {
		return "", fmt.Errorf("%w: expected 65-byte uncompressed public key, got %d bytes", generator.ErrEncoding, len(pubKeyBytes))
	}

	var addressBytes []byte
	switch mode {
	case HashLegacy160:
		sha := sha256.Sum256(pubKeyBytes[1:])
		h := ripemd160.New()
		h.Write(sha[:])
		addressBytes = h.Sum(nil)
	default:
		// Skip the 0x04 prefix, then take the last 20 bytes of the Keccak256 hash
		hash := crypto.Keccak256(pubKeyBytes[1:])
		addressBytes = hash[len(hash)-20:]
	}

	// Prepend Tron mainnet prefix (0x41)
	data := make([]byte, 21)
	data[0] = TronMainnetPrefix
	copy(data[1:], addressBytes)

	return Base58CheckEncode(data), nil
}

// Base58CheckEncode encodes data with a 4-byte checksum in Base58.
// This is the same encoding used by Bitcoin.
func Base58CheckEncode(data []byte) string {
	sum := checksum(data)

	full := make([]byte, 0, len(data)+4)
	full = append(full, data...)
	full = append(full, sum[:]...)

	return base58.Encode(full)
}

// Base58CheckDecode decodes a Base58Check string and verifies its checksum.
func Base58CheckDecode(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generator.ErrEncoding, err)
	}
	if len(raw) < 5 {
		return nil, fmt.Errorf("%w: payload too short", generator.ErrEncoding)
	}

	data, sum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := checksum(data)
	if !bytes.Equal(sum, want[:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", generator.ErrEncoding)
	}
	return data, nil
}

// Validate checks that s is a mainnet Tron address with a valid checksum.
func Validate(s string) error {
	if len(s) != AddressLength {
		return fmt.Errorf("%w: tron address must be %d characters", generator.ErrEncoding, AddressLength)
	}
	data, err := Base58CheckDecode(s)
	if err != nil {
		return err
	}
	if len(data) != 21 || data[0] != TronMainnetPrefix {
		return fmt.Errorf("%w: not a mainnet tron address", generator.ErrEncoding)
	}
	return nil
}

// checksum is the first 4 bytes of double SHA256.
func checksum(data []byte) [4]byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	var out [4]byte
	copy(out[:], second[:4])
	return out
}
