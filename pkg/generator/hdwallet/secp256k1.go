package hdwallet

import (
	"errors"
	"fmt"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// DeriveSecp256k1 derives the private key at m/44'/coin'/0'/0/0.
func DeriveSecp256k1(seed Seed, coin uint32) ([32]byte, error) {
	return DeriveSecp256k1Path(seed, BIP44Path(coin))
}

// DeriveSecp256k1Path walks a BIP-32 path from the seed's master key and
// returns the 32-byte private scalar at its end.
func DeriveSecp256k1Path(seed Seed, path Path) ([32]byte, error) {
	var out [32]byte

	key, err := hdkeychain.NewMaster(seed[:], &chaincfg.MainNetParams)
	if err != nil {
		return out, fmt.Errorf("%w: master key: %v", generator.ErrDerivation, err)
	}

	for _, index := range path {
		key, err = deriveChild(key, index)
		if err != nil {
			return out, fmt.Errorf("%w: %s: %v", generator.ErrDerivation, path, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return out, fmt.Errorf("%w: private key: %v", generator.ErrDerivation, err)
	}
	copy(out[:], priv.Serialize())
	return out, nil
}

// deriveChild derives the child at index. When the child is unusable
// (IL >= n or a zero key) the next index in the same range is used instead.
func deriveChild(key *hdkeychain.ExtendedKey, index uint32) (*hdkeychain.ExtendedKey, error) {
	for {
		child, err := key.Derive(index)
		if err == nil {
			return child, nil
		}
		if !errors.Is(err, hdkeychain.ErrInvalidChild) {
			return nil, err
		}

		next := index + 1
		if next&HardenedOffset != index&HardenedOffset {
			return nil, err
		}
		index = next
	}
}
