package hdwallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// ed25519Node is a SLIP-0010 extended key. The chain code never leaves this package.
type ed25519Node struct {
	key       [32]byte
	chainCode [32]byte
}

func ed25519Master(seed Seed) ed25519Node {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed[:])
	return splitNode(mac.Sum(nil))
}

// child derives a hardened child: HMAC-SHA512(chainCode, 0x00 || key || index).
func (n ed25519Node) child(index uint32) ed25519Node {
	var data [1 + 32 + 4]byte
	copy(data[1:33], n.key[:])
	binary.BigEndian.PutUint32(data[33:], index)

	mac := hmac.New(sha512.New, n.chainCode[:])
	mac.Write(data[:])
	return splitNode(mac.Sum(nil))
}

func splitNode(sum []byte) ed25519Node {
	var n ed25519Node
	copy(n.key[:], sum[:32])
	copy(n.chainCode[:], sum[32:])
	return n
}

// DeriveEd25519 derives the Ed25519 private seed at m/44'/coin'/0'.
func DeriveEd25519(seed Seed, coin uint32) ([32]byte, error) {
	return DeriveEd25519Path(seed, SolanaPath(coin))
}

// DeriveEd25519Path walks a SLIP-0010 path. Ed25519 only supports hardened
// derivation, so every level must be hardened.
func DeriveEd25519Path(seed Seed, path Path) ([32]byte, error) {
	if !path.AllHardened() {
		return [32]byte{}, fmt.Errorf("%w: ed25519 path %s has a non-hardened level", generator.ErrDerivation, path)
	}

	node := ed25519Master(seed)
	for _, index := range path {
		node = node.child(index)
	}
	return node.key, nil
}
