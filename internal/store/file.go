// Package store persists search hits as append-only text records.
package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// Delimiter opens and closes every record.
const Delimiter = "═══════════════════════════════════════════════════════════"

// TimestampLayout is the local-time layout used in record headers.
const TimestampLayout = "2006-01-02 15:04:05"

// Format selects the record layout.
type Format int

const (
	// FormatMulti writes the mnemonic once followed by every chain's keys.
	FormatMulti Format = iota
	// FormatSingle writes only the chain that produced the hit.
	FormatSingle
)

// ParseFormat parses "multi" or "single".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "multi":
		return FormatMulti, nil
	case "single":
		return FormatSingle, nil
	default:
		return FormatMulti, fmt.Errorf("%w: unknown output format %q", generator.ErrInvalidConfig, s)
	}
}

// FileSink appends one record per hit to a file. It implements generator.Sink.
type FileSink struct {
	path   string
	format Format
	hidden bool

	mu sync.Mutex
}

// SinkOption configures a FileSink.
type SinkOption func(*FileSink)

// WithHidden marks the output file hidden after each write (Windows only).
func WithHidden(hidden bool) SinkOption {
	return func(s *FileSink) { s.hidden = hidden }
}

// NewFileSink creates a sink writing to path.
func NewFileSink(path string, format Format, opts ...SinkOption) *FileSink {
	s := &FileSink{path: path, format: format}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the output file path.
func (s *FileSink) Path() string {
	return s.path
}

// Save appends the record for hit. The file is opened in append mode for
// every call and the record is written with a single Write, so records
// from concurrent workers never interleave.
func (s *FileSink) Save(hit generator.Hit) error {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, hit, s.format); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	if s.hidden {
		hideFile(s.path)
	}
	return nil
}

// WriteRecord renders one record for hit in the given format.
func WriteRecord(w io.Writer, hit generator.Hit, format Format) error {
	mark := "[NORMAL]"
	if hit.Vanity {
		mark = "[VANITY]"
	}
	foundAt := hit.FoundAt
	if foundAt.IsZero() {
		foundAt = time.Now()
	}
	ts := foundAt.Local().Format(TimestampLayout)

	var b bytes.Buffer
	b.WriteString(Delimiter + "\n")

	switch format {
	case FormatSingle:
		rec := hit.Record()
		fmt.Fprintf(&b, "%s %s | Chain: %s\n", mark, ts, hit.Chain)
		fmt.Fprintf(&b, "Address: %s\n", rec.Address)
		fmt.Fprintf(&b, "Private Key: %s\n", rec.PrivateKeyString())
		fmt.Fprintf(&b, "Public Key: %s\n", rec.PublicKeyHex())
		fmt.Fprintf(&b, "Mnemonic: %s\n", hit.Wallet.Mnemonic)
	default:
		fmt.Fprintf(&b, "%s %s | Hit Chain: %s\n", mark, ts, hit.Chain)
		fmt.Fprintf(&b, "Mnemonic: %s\n", hit.Wallet.Mnemonic)
		for _, rec := range hit.Wallet.Records() {
			fmt.Fprintf(&b, "Chain: %s\n", rec.Chain)
			fmt.Fprintf(&b, "Address: %s\n", rec.Address)
			fmt.Fprintf(&b, "Private Key: %s\n", rec.PrivateKeyString())
			fmt.Fprintf(&b, "Public Key: %s\n", rec.PublicKeyHex())
		}
	}

	b.WriteString(Delimiter + "\n\n")

	_, err := w.Write(b.Bytes())
	return err
}

var _ generator.Sink = (*FileSink)(nil)
