// Package ethereum derives EVM account addresses (secp256k1 + Keccak-256,
// EIP-55 checksummed hex).
package ethereum

import (
	"fmt"
	"strings"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// AddressLength is the length of a 0x-prefixed hex address.
const AddressLength = 2 + 2*common.AddressLength

// PublicKey returns the 65-byte uncompressed public key for a private key.
func PublicKey(privKey []byte) ([]byte, error) {
	key, err := crypto.ToECDSA(privKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generator.ErrEncoding, err)
	}
	return crypto.FromECDSAPub(&key.PublicKey), nil
}

// DeriveAddress returns the EIP-55 address of an uncompressed public key:
// the low 20 bytes of Keccak256(pubKey[1:]).
func DeriveAddress(pubKeyBytes []byte) (string, error) {
	if len(pubKeyBytes) != 65 || pubKeyBytes[0] != 0x04 {
		return "", fmt.Errorf("%w: expected 65-byte uncompressed public key, got %d bytes", generator.ErrEncoding, len(pubKeyBytes))
	}
	hash := crypto.Keccak256(pubKeyBytes[1:])
	return common.BytesToAddress(hash[12:]).Hex(), nil
}

// IsValidAddress reports whether s is a 0x-prefixed 20-byte hex address.
// Mixed-case input must carry a correct EIP-55 checksum.
func IsValidAddress(s string) bool {
	if len(s) != AddressLength || !common.IsHexAddress(s) {
		return false
	}
	body := s[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return common.HexToAddress(s).Hex() == s
}

// CanMatch reports whether a case-insensitive suffix pattern can appear in a hex address.
func CanMatch(pattern string) bool {
	for _, c := range strings.ToLower(pattern) {
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
