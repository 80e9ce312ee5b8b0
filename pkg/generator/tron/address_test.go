package tron

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorPrivHex = "c0d91712c7dedcd01b34b07836a77aed33544a733dd90ac192fedd552ce30b44"
	vectorPubHex  = "04465f4e3ff06647dc9d6ef05967139e1b38d22c64ab59ff63cd6043cfd1d4109f379f3aa57d6e2d4e7e91d8fd01ac7f4967162f5427e617a77341533ed7317d0a"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPublicKey(t *testing.T) {
	pub, err := PublicKey(mustHex(t, vectorPrivHex))
	require.NoError(t, err)
	assert.Equal(t, vectorPubHex, hex.EncodeToString(pub))
}

func TestPublicKey_OutOfRange(t *testing.T) {
	_, err := PublicKey(make([]byte, 32))
	assert.ErrorIs(t, err, generator.ErrEncoding, "zero scalar")

	order := mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	_, err = PublicKey(order)
	assert.ErrorIs(t, err, generator.ErrEncoding, "curve order")

	_, err = PublicKey(make([]byte, 31))
	assert.ErrorIs(t, err, generator.ErrEncoding, "short key")
}

func TestDeriveAddress(t *testing.T) {
	pub := mustHex(t, vectorPubHex)

	addr, err := DeriveAddress(pub, HashKeccak)
	require.NoError(t, err)
	assert.Equal(t, "TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN5", addr)
	assert.True(t, strings.HasPrefix(addr, "T"))
	assert.Len(t, addr, AddressLength)

	again, err := DeriveAddress(pub, HashKeccak)
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	legacy, err := DeriveAddress(pub, HashLegacy160)
	require.NoError(t, err)
	assert.Equal(t, "TNLvnwi13N6EYisg5Gzdhmostwwb4GYdMj", legacy)
}

func TestDeriveAddress_BadKey(t *testing.T) {
	_, err := DeriveAddress(make([]byte, 33), HashKeccak)
	assert.ErrorIs(t, err, generator.ErrEncoding)

	pub := mustHex(t, vectorPubHex)
	pub[0] = 0x02
	_, err = DeriveAddress(pub, HashKeccak)
	assert.ErrorIs(t, err, generator.ErrEncoding)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN5"))
	require.NoError(t, Validate("TNLvnwi13N6EYisg5Gzdhmostwwb4GYdMj"))

	assert.ErrorIs(t, Validate("TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN6"), generator.ErrEncoding, "checksum")
	assert.ErrorIs(t, Validate("TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN"), generator.ErrEncoding, "length")
	assert.ErrorIs(t, Validate("TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN0"), generator.ErrEncoding, "alphabet")
}

func TestBase58CheckRoundTrip(t *testing.T) {
	data := []byte{TronMainnetPrefix, 1, 2, 3}
	decoded, err := Base58CheckDecode(Base58CheckEncode(data))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestParseHashMode(t *testing.T) {
	m, err := ParseHashMode("")
	require.NoError(t, err)
	assert.Equal(t, HashKeccak, m)

	m, err = ParseHashMode("hash160")
	require.NoError(t, err)
	assert.Equal(t, HashLegacy160, m)
	assert.Equal(t, "hash160", m.String())

	_, err = ParseHashMode("sha3")
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)
}

func TestCanMatch(t *testing.T) {
	assert.True(t, CanMatch("lucky"))
	assert.True(t, CanMatch("8888"))
	assert.True(t, CanMatch("OIL"), "each letter has one Base58 case")
	assert.False(t, CanMatch("0000"))
	assert.Equal(t, []rune{'0', '-'}, UnmatchableChars("a0b-"))
	assert.True(t, IsValidBase58("TGu44"))
	assert.False(t, IsValidBase58("T0"))
}
