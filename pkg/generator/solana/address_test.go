package solana

import (
	"encoding/hex"
	"testing"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorSeedHex = "c9a5b7cd9ecf3f7257b4a8b8bc1f302bc6a00f1f49755883d560fdc1cd66a6b3"
	vectorPubHex  = "258c47cfc1c92f90be91bdb9d8311498da2dd87a687e3dec19651dcdf147926b"
	vectorAddress = "3Xa9gJdvWpuSnUyAs34EhFVzA1Lk8Mjs8LYNRnWVWonS"
)

func TestKeyFromSeedAndAddress(t *testing.T) {
	seed, err := hex.DecodeString(vectorSeedHex)
	require.NoError(t, err)

	pub, err := KeyFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, vectorPubHex, hex.EncodeToString(pub))

	addr, err := DeriveAddress(pub)
	require.NoError(t, err)
	assert.Equal(t, vectorAddress, addr)

	decoded, err := Decode(addr)
	require.NoError(t, err)
	assert.Equal(t, pub, decoded)
	assert.True(t, IsOnCurve(addr))
}

func TestInvalidLengths(t *testing.T) {
	_, err := KeyFromSeed(make([]byte, 16))
	assert.ErrorIs(t, err, generator.ErrEncoding)

	_, err = DeriveAddress(make([]byte, 31))
	assert.ErrorIs(t, err, generator.ErrEncoding)

	_, err = Decode("3Xa9gJdvWpuSnUyAs34E")
	assert.ErrorIs(t, err, generator.ErrEncoding)

	_, err = Decode("0OIl")
	assert.ErrorIs(t, err, generator.ErrEncoding)
	assert.False(t, IsOnCurve("0OIl"))
}

func TestCanMatch(t *testing.T) {
	assert.True(t, CanMatch("moon"))
	assert.True(t, CanMatch("LIO"), "l, i and o match through their other case")
	assert.False(t, CanMatch("0x"))
	assert.True(t, IsValidBase58(vectorAddress))
	assert.False(t, IsValidBase58("0x"))
}
