package hdwallet

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorMnemonic = "scissors inch embody vapor garment panther cinnamon theme first coast panda brand"
	vectorSeedHex  = "d779f73e7e7a8b5fc51d309400676610f485425647c73b56315f10f225c563217b5118f9be72464e79a6d0dad5402de35b57ee64cdfab1b40c9c7bc23481a5f9"

	abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

func vectorSeed(t *testing.T) Seed {
	t.Helper()
	m, err := NewCodec(nil).Parse(vectorMnemonic)
	require.NoError(t, err)
	return m.Seed("")
}

func TestGenerate(t *testing.T) {
	codec := NewCodec(nil)

	for i := 0; i < 20; i++ {
		m, err := codec.Generate()
		require.NoError(t, err)
		assert.Len(t, m.Words(), 12)
		assert.Len(t, m.Entropy(), EntropyBits/8)

		parsed, err := codec.Parse(m.String())
		require.NoError(t, err, "generated mnemonic must parse: %s", m)
		assert.Equal(t, m.Entropy(), parsed.Entropy())
	}
}

func TestGenerateFromReader(t *testing.T) {
	codec := NewCodec(ReaderEntropy{R: bytes.NewReader(make([]byte, 16))})

	m, err := codec.Generate()
	require.NoError(t, err)
	assert.Equal(t, abandonMnemonic, m.String())

	_, err = codec.Generate()
	assert.Error(t, err, "reader is exhausted")
}

func TestToSeed(t *testing.T) {
	codec := NewCodec(nil)

	m, err := codec.Parse(abandonMnemonic)
	require.NoError(t, err)

	seed := ToSeed(m, "")
	assert.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		hex.EncodeToString(seed[:]))

	trezor := m.Seed("TREZOR")
	assert.Equal(t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		hex.EncodeToString(trezor[:]))

	assert.Equal(t, seed, m.Seed(""), "seed must be deterministic")

	v := vectorSeed(t)
	assert.Equal(t, vectorSeedHex, hex.EncodeToString(v[:]))
}

func TestParse(t *testing.T) {
	codec := NewCodec(nil)

	m, err := codec.Parse("  SCISSORS inch embody vapor garment panther\tcinnamon theme first coast panda brand \n")
	require.NoError(t, err)
	assert.Equal(t, vectorMnemonic, m.String())

	invalid := []string{
		"",
		"abandon abandon abandon",
		strings.Repeat("abandon ", 12),
		"scissors inch embody vapor garment panther cinnamon theme first coast panda notaword",
	}
	for _, words := range invalid {
		_, err := codec.Parse(words)
		assert.ErrorIs(t, err, generator.ErrInvalidMnemonic, "%q", words)
	}
}

func TestFromEntropy(t *testing.T) {
	codec := NewCodec(nil)

	_, err := codec.FromEntropy(make([]byte, 15))
	assert.ErrorIs(t, err, generator.ErrEncoding)

	m, err := codec.FromEntropy(make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, abandonMnemonic, m.String())
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"m", Path{}},
		{"m/44'/60'/0'/0/0", BIP44Path(CoinEVM)},
		{"m/44h/195h/0h/0/0", BIP44Path(CoinTron)},
		{"M/44H/501H/0H", SolanaPath(CoinSolana)},
		{"m/0/2147483647'", Path{0, 2147483647 + HardenedOffset}},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	bad := []string{"", "44'/0'", "m/", "m//0", "m/abc", "m/-1", "m/2147483648", "m/0''", "x/0"}
	for _, in := range bad {
		_, err := ParsePath(in)
		assert.ErrorIs(t, err, generator.ErrDerivation, in)
	}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "m/44'/195'/0'/0/0", BIP44Path(CoinTron).String())
	assert.Equal(t, "m/44'/501'/0'", SolanaPath(CoinSolana).String())
	assert.Equal(t, "m", Path{}.String())

	assert.True(t, SolanaPath(CoinSolana).AllHardened())
	assert.False(t, BIP44Path(CoinEVM).AllHardened())
}

func TestDeriveSecp256k1(t *testing.T) {
	seed := vectorSeed(t)

	evm, err := DeriveSecp256k1(seed, CoinEVM)
	require.NoError(t, err)
	assert.Equal(t, "d6e6ec8859216361bd969fc0a71db3d80177299d5dfd349db3397425f01569b1", hex.EncodeToString(evm[:]))

	tron, err := DeriveSecp256k1(seed, CoinTron)
	require.NoError(t, err)
	assert.Equal(t, "c0d91712c7dedcd01b34b07836a77aed33544a733dd90ac192fedd552ce30b44", hex.EncodeToString(tron[:]))

	path, err := ParsePath("m/44'/195'/0'/0/0")
	require.NoError(t, err)
	again, err := DeriveSecp256k1Path(seed, path)
	require.NoError(t, err)
	assert.Equal(t, tron, again)
}

func TestDeriveEd25519(t *testing.T) {
	seed := vectorSeed(t)

	key, err := DeriveEd25519(seed, CoinSolana)
	require.NoError(t, err)
	assert.Equal(t, "c9a5b7cd9ecf3f7257b4a8b8bc1f302bc6a00f1f49755883d560fdc1cd66a6b3", hex.EncodeToString(key[:]))

	_, err = DeriveEd25519Path(seed, BIP44Path(CoinSolana))
	assert.ErrorIs(t, err, generator.ErrDerivation, "non-hardened levels are rejected")
}
