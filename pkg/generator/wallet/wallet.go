// Package wallet runs the full derivation pipeline: mnemonic, seed, one key
// per coin and the address of every supported chain.
package wallet

import (
	"fmt"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/ethereum"
	"github.com/Amr-9/SeedHunter/pkg/generator/hdwallet"
	"github.com/Amr-9/SeedHunter/pkg/generator/solana"
	"github.com/Amr-9/SeedHunter/pkg/generator/tron"
)

// Deriver builds wallets from fresh or given mnemonics.
// It holds no mutable state and is safe for concurrent use.
type Deriver struct {
	codec      *hdwallet.Codec
	passphrase string
	tronMode   tron.HashMode
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithEntropy sets the entropy source for generated mnemonics.
func WithEntropy(source hdwallet.EntropySource) Option {
	return func(d *Deriver) { d.codec = hdwallet.NewCodec(source) }
}

// WithPassphrase sets the BIP-39 passphrase mixed into every seed.
func WithPassphrase(passphrase string) Option {
	return func(d *Deriver) { d.passphrase = passphrase }
}

// WithTronHashMode selects how TRON account hashes are computed.
func WithTronHashMode(mode tron.HashMode) Option {
	return func(d *Deriver) { d.tronMode = mode }
}

// NewDeriver creates a deriver using system entropy, an empty passphrase
// and Keccak TRON addresses unless overridden.
func NewDeriver(opts ...Option) *Deriver {
	d := &Deriver{codec: hdwallet.NewCodec(nil)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generate draws a new mnemonic and derives every chain from it.
func (d *Deriver) Generate() (generator.Wallet, error) {
	m, err := d.codec.Generate()
	if err != nil {
		return generator.Wallet{}, err
	}
	return d.FromMnemonic(m)
}

// Parse validates words and derives every chain from them.
func (d *Deriver) Parse(words string) (generator.Wallet, error) {
	m, err := d.codec.Parse(words)
	if err != nil {
		return generator.Wallet{}, err
	}
	return d.FromMnemonic(m)
}

// FromMnemonic derives the TRON, EVM and Solana records of a mnemonic.
func (d *Deriver) FromMnemonic(m hdwallet.Mnemonic) (generator.Wallet, error) {
	seed := m.Seed(d.passphrase)
	phrase := m.String()

	w := generator.Wallet{Mnemonic: phrase}

	var err error
	if w.Tron, err = d.tronRecord(seed, phrase); err != nil {
		return generator.Wallet{}, fmt.Errorf("derive tron: %w", err)
	}
	if w.Ethereum, err = d.evmRecord(seed, phrase); err != nil {
		return generator.Wallet{}, fmt.Errorf("derive evm: %w", err)
	}
	if w.Solana, err = d.solanaRecord(seed, phrase); err != nil {
		return generator.Wallet{}, fmt.Errorf("derive sol: %w", err)
	}
	return w, nil
}

func (d *Deriver) tronRecord(seed hdwallet.Seed, phrase string) (generator.AddressRecord, error) {
	priv, err := hdwallet.DeriveSecp256k1(seed, hdwallet.CoinTron)
	if err != nil {
		return generator.AddressRecord{}, err
	}
	pub, err := tron.PublicKey(priv[:])
	if err != nil {
		return generator.AddressRecord{}, err
	}
	addr, err := tron.DeriveAddress(pub, d.tronMode)
	if err != nil {
		return generator.AddressRecord{}, err
	}
	return record(generator.Tron, addr, pub, priv[:], phrase), nil
}

func (d *Deriver) evmRecord(seed hdwallet.Seed, phrase string) (generator.AddressRecord, error) {
	priv, err := hdwallet.DeriveSecp256k1(seed, hdwallet.CoinEVM)
	if err != nil {
		return generator.AddressRecord{}, err
	}
	pub, err := ethereum.PublicKey(priv[:])
	if err != nil {
		return generator.AddressRecord{}, err
	}
	addr, err := ethereum.DeriveAddress(pub)
	if err != nil {
		return generator.AddressRecord{}, err
	}
	return record(generator.Ethereum, addr, pub, priv[:], phrase), nil
}

func (d *Deriver) solanaRecord(seed hdwallet.Seed, phrase string) (generator.AddressRecord, error) {
	priv, err := hdwallet.DeriveEd25519(seed, hdwallet.CoinSolana)
	if err != nil {
		return generator.AddressRecord{}, err
	}
	pub, err := solana.KeyFromSeed(priv[:])
	if err != nil {
		return generator.AddressRecord{}, err
	}
	addr, err := solana.DeriveAddress(pub)
	if err != nil {
		return generator.AddressRecord{}, err
	}
	return record(generator.Solana, addr, pub, priv[:], phrase), nil
}

func record(chain generator.Chain, addr string, pub, priv []byte, phrase string) generator.AddressRecord {
	privCopy := make([]byte, len(priv))
	copy(privCopy, priv)
	return generator.AddressRecord{
		Chain:      chain,
		Address:    addr,
		PublicKey:  pub,
		PrivateKey: privCopy,
		Mnemonic:   phrase,
	}
}
