package wallet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/ethereum"
	"github.com/Amr-9/SeedHunter/pkg/generator/hdwallet"
	"github.com/Amr-9/SeedHunter/pkg/generator/solana"
	"github.com/Amr-9/SeedHunter/pkg/generator/tron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vectorMnemonic = "scissors inch embody vapor garment panther cinnamon theme first coast panda brand"

func TestKnownVector(t *testing.T) {
	w, err := NewDeriver().Parse(vectorMnemonic)
	require.NoError(t, err)

	assert.Equal(t, vectorMnemonic, w.Mnemonic)
	assert.Equal(t, "0x1D2F71D84cB6fE09B06F86F5bf18e498526a7Fb1", w.Ethereum.Address)
	assert.Equal(t, "TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN5", w.Tron.Address)
	assert.Equal(t, "3Xa9gJdvWpuSnUyAs34EhFVzA1Lk8Mjs8LYNRnWVWonS", w.Solana.Address)

	assert.Equal(t, "c0d91712c7dedcd01b34b07836a77aed33544a733dd90ac192fedd552ce30b44", w.Tron.PrivateKeyString())
	assert.Equal(t, "d6e6ec8859216361bd969fc0a71db3d80177299d5dfd349db3397425f01569b1", w.Ethereum.PrivateKeyString())
	assert.Equal(t,
		"52qDsweLYjbK4eSjVNMtwWQULPdHLqvibUbSQrAEk1TBxwqTHKXg3jrvh5V9ZiFbyLy7x3HwHWXFVnLnmoMmzSre",
		w.Solana.PrivateKeyString())
	assert.Equal(t, "258c47cfc1c92f90be91bdb9d8311498da2dd87a687e3dec19651dcdf147926b", w.Solana.PublicKeyHex())

	for _, r := range w.Records() {
		assert.Equal(t, vectorMnemonic, r.Mnemonic, r.Chain.String())
	}
}

func TestLegacyTronHash(t *testing.T) {
	w, err := NewDeriver(WithTronHashMode(tron.HashLegacy160)).Parse(vectorMnemonic)
	require.NoError(t, err)
	assert.Equal(t, "TNLvnwi13N6EYisg5Gzdhmostwwb4GYdMj", w.Tron.Address)
	assert.Equal(t, "0x1D2F71D84cB6fE09B06F86F5bf18e498526a7Fb1", w.Ethereum.Address, "other chains unaffected")
}

func TestPassphraseChangesWallet(t *testing.T) {
	plain, err := NewDeriver().Parse(vectorMnemonic)
	require.NoError(t, err)
	salted, err := NewDeriver(WithPassphrase("TREZOR")).Parse(vectorMnemonic)
	require.NoError(t, err)

	assert.NotEqual(t, plain.Tron.Address, salted.Tron.Address)
	assert.NotEqual(t, plain.Ethereum.Address, salted.Ethereum.Address)
	assert.NotEqual(t, plain.Solana.Address, salted.Solana.Address)
}

func TestGenerateShapes(t *testing.T) {
	d := NewDeriver()
	for i := 0; i < 10; i++ {
		w, err := d.Generate()
		require.NoError(t, err)

		assert.Len(t, strings.Fields(w.Mnemonic), 12)

		assert.True(t, strings.HasPrefix(w.Tron.Address, "T"))
		assert.Len(t, w.Tron.Address, tron.AddressLength)
		assert.NoError(t, tron.Validate(w.Tron.Address))
		assert.Len(t, w.Tron.PrivateKeyString(), 64)
		assert.True(t, strings.HasPrefix(w.Tron.PublicKeyHex(), "04"))

		assert.Len(t, w.Ethereum.Address, ethereum.AddressLength)
		assert.True(t, ethereum.IsValidAddress(w.Ethereum.Address))

		pub, err := solana.Decode(w.Solana.Address)
		require.NoError(t, err)
		assert.Len(t, pub, 32)
		assert.True(t, solana.IsOnCurve(w.Solana.Address))
	}
}

func TestDeterministicEntropy(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x7f}, 32)
	a, err := NewDeriver(WithEntropy(hdwallet.ReaderEntropy{R: bytes.NewReader(entropy)})).Generate()
	require.NoError(t, err)
	b, err := NewDeriver(WithEntropy(hdwallet.ReaderEntropy{R: bytes.NewReader(entropy)})).Generate()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseInvalid(t *testing.T) {
	_, err := NewDeriver().Parse("not a mnemonic")
	assert.ErrorIs(t, err, generator.ErrInvalidMnemonic)
}
