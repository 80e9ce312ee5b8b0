package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatHashRate(t *testing.T) {
	assert.Equal(t, "42/s", FormatHashRate(42))
	assert.Equal(t, "1.5K/s", FormatHashRate(1500))
	assert.Equal(t, "2.3M/s", FormatHashRate(2_300_000))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "12.5s", FormatDuration(12500*time.Millisecond))
	assert.Equal(t, "3m 7s", FormatDuration(3*time.Minute+7*time.Second))
	assert.Equal(t, "2h 5m", FormatDuration(2*time.Hour+5*time.Minute))
}

func TestPrintHit(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PrintHit(generator.Hit{
		Chain:   generator.Tron,
		Vanity:  true,
		Pattern: "NN5",
		Wallet: generator.Wallet{
			Mnemonic: "scissors inch embody",
			Tron: generator.AddressRecord{
				Chain:      generator.Tron,
				Address:    "TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN5",
				PrivateKey: []byte{0xab, 0xcd},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "TRON VANITY")
	assert.Contains(t, out, "TGu44ECEQD9YnG7gkV9paBpbKgKwQnCNN5")
	assert.Contains(t, out, "abcd")
	assert.Contains(t, out, "scissors inch embody")
}

func TestPrintProgressPaused(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PrintProgress(generator.Stats{Generated: 12345, Found: 2, HashRate: 1500}, generator.StatePaused, 0)

	out := buf.String()
	assert.Contains(t, out, "⏸")
	assert.Contains(t, out, "12,345 generated")
	assert.Contains(t, out, "1.5K/s")
}

func TestPrintSummaryWarnsOnlyWithHits(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PrintSummary(generator.Stats{Generated: 10}, "out.txt")
	assert.NotContains(t, buf.String(), "out.txt")

	buf.Reset()
	c.PrintSummary(generator.Stats{Generated: 10, Found: 1}, "out.txt")
	assert.Contains(t, buf.String(), "out.txt")
	assert.Contains(t, buf.String(), "SECRET")
}
