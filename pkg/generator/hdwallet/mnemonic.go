// Package hdwallet turns entropy into BIP-39 mnemonics and derives per-coin
// private keys from their seeds, using BIP-32 for secp256k1 coins and
// SLIP-0010 for Ed25519 coins.
package hdwallet

import (
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/tyler-smith/go-bip39"
)

// EntropyBits is the entropy size of generated mnemonics (12 words).
const EntropyBits = 128

// SeedSize is the length of a BIP-39 seed in bytes.
const SeedSize = 64

// EntropySource supplies the random material a mnemonic is built from.
type EntropySource interface {
	Entropy(bits int) ([]byte, error)
}

type systemEntropy struct{}

func (systemEntropy) Entropy(bits int) ([]byte, error) {
	return bip39.NewEntropy(bits)
}

// SystemEntropy draws from the operating system CSPRNG.
var SystemEntropy EntropySource = systemEntropy{}

// ReaderEntropy draws entropy from an arbitrary reader. Useful for
// deterministic runs in tests. It is only as concurrency-safe as R.
type ReaderEntropy struct {
	R io.Reader
}

// Entropy reads bits/8 bytes from the reader.
func (e ReaderEntropy) Entropy(bits int) ([]byte, error) {
	buf := make([]byte, bits/8)
	if _, err := io.ReadFull(e.R, buf); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return buf, nil
}

// Seed is the 64-byte PBKDF2 output of a mnemonic and passphrase.
type Seed [SeedSize]byte

// Mnemonic is a validated BIP-39 word sequence.
type Mnemonic struct {
	phrase  string
	entropy []byte
}

// String returns the space-separated words.
func (m Mnemonic) String() string {
	return m.phrase
}

// Words returns the individual words.
func (m Mnemonic) Words() []string {
	return strings.Fields(m.phrase)
}

// Entropy returns a copy of the entropy the mnemonic encodes.
func (m Mnemonic) Entropy() []byte {
	out := make([]byte, len(m.entropy))
	copy(out, m.entropy)
	return out
}

// Seed stretches the mnemonic with PBKDF2-HMAC-SHA512 (2048 rounds,
// salt "mnemonic"+passphrase).
func (m Mnemonic) Seed(passphrase string) Seed {
	var seed Seed
	copy(seed[:], bip39.NewSeed(m.phrase, passphrase))
	return seed
}

// ToSeed is the function form of Mnemonic.Seed.
func ToSeed(m Mnemonic, passphrase string) Seed {
	return m.Seed(passphrase)
}

// Codec converts between entropy and mnemonics.
type Codec struct {
	source EntropySource
}

// NewCodec creates a codec drawing from source.
// A nil source selects SystemEntropy.
func NewCodec(source EntropySource) *Codec {
	if source == nil {
		source = SystemEntropy
	}
	return &Codec{source: source}
}

// Generate draws 128 bits of entropy and encodes a 12-word mnemonic.
func (c *Codec) Generate() (Mnemonic, error) {
	entropy, err := c.source.Entropy(EntropyBits)
	if err != nil {
		return Mnemonic{}, err
	}
	return c.FromEntropy(entropy)
}

// FromEntropy encodes the given entropy as a mnemonic.
func (c *Codec) FromEntropy(entropy []byte) (Mnemonic, error) {
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Mnemonic{}, fmt.Errorf("%w: mnemonic from %d-byte entropy: %v", generator.ErrEncoding, len(entropy), err)
	}
	buf := make([]byte, len(entropy))
	copy(buf, entropy)
	return Mnemonic{phrase: phrase, entropy: buf}, nil
}

// Parse validates a word sequence. Case and surrounding whitespace are ignored.
func (c *Codec) Parse(words string) (Mnemonic, error) {
	phrase := strings.Join(strings.Fields(strings.ToLower(words)), " ")
	if !bip39.IsMnemonicValid(phrase) {
		return Mnemonic{}, fmt.Errorf("%w: %d words failed validation", generator.ErrInvalidMnemonic, len(strings.Fields(phrase)))
	}
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return Mnemonic{}, fmt.Errorf("%w: %v", generator.ErrInvalidMnemonic, err)
	}
	return Mnemonic{phrase: phrase, entropy: entropy}, nil
}
