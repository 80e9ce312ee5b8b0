// Package generator defines the types shared by the mnemonic-backed vanity search:
// the chains an address can be derived for, the search configuration, the
// records produced for each candidate wallet and the contract every search
// backend implements.
package generator

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mr-tron/base58"
)

// Chain identifies one of the account models derived from a mnemonic.
type Chain int

const (
	Tron     Chain = iota // TRON (secp256k1, Keccak-256, Base58Check)
	Ethereum              // EVM (secp256k1, Keccak-256, EIP-55 hex)
	Solana                // Solana (Ed25519, Base58)
)

// AllChains lists every supported chain in record order.
var AllChains = []Chain{Tron, Ethereum, Solana}

// String returns the short chain tag used in saved records.
func (c Chain) String() string {
	switch c {
	case Tron:
		return "TRON"
	case Ethereum:
		return "EVM"
	case Solana:
		return "SOL"
	default:
		return "Unknown"
	}
}

// ParseChain accepts a chain tag or a common alias, case-insensitively.
func ParseChain(s string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tron", "trx":
		return Tron, nil
	case "evm", "eth", "ethereum":
		return Ethereum, nil
	case "sol", "solana":
		return Solana, nil
	default:
		return 0, fmt.Errorf("%w: unknown chain %q", ErrInvalidConfig, s)
	}
}

// Config holds the configuration for one search run.
type Config struct {
	Chains    []Chain  // Chains whose addresses are tested against the patterns
	Patterns  []string // Suffix patterns; empty selects the trailing-run rule
	Threads   int      // Number of concurrent workers
	BatchSize int      // Candidates processed between pause checks
	SaveAll   bool     // Persist candidates that did not match as well
}

// Validate reports whether the configuration can start a search.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.Threads < 1 {
		return fmt.Errorf("%w: threads must be at least 1, got %d", ErrInvalidConfig, c.Threads)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be at least 1, got %d", ErrInvalidConfig, c.BatchSize)
	}
	if len(c.Chains) == 0 {
		return fmt.Errorf("%w: no chains selected", ErrInvalidConfig)
	}
	for _, chain := range c.Chains {
		if chain < Tron || chain > Solana {
			return fmt.Errorf("%w: unknown chain %d", ErrInvalidConfig, int(chain))
		}
	}
	return nil
}

// AddressRecord is one chain's key material and address under a mnemonic.
type AddressRecord struct {
	Chain      Chain
	Address    string // T... for TRON, 0x... for EVM, Base58 for Solana
	PublicKey  []byte // 65-byte uncompressed secp256k1 or 32-byte Ed25519
	PrivateKey []byte // 32-byte secp256k1 scalar or 32-byte Ed25519 seed
	Mnemonic   string
}

// PrivateKeyString returns the private key in the format wallets import:
// lowercase hex for secp256k1 chains, Base58 of the 64-byte keypair for Solana.
func (r AddressRecord) PrivateKeyString() string {
	if r.Chain == Solana {
		keypair := make([]byte, 0, len(r.PrivateKey)+len(r.PublicKey))
		keypair = append(keypair, r.PrivateKey...)
		keypair = append(keypair, r.PublicKey...)
		return base58.Encode(keypair)
	}
	return hex.EncodeToString(r.PrivateKey)
}

// PublicKeyHex returns the public key as lowercase hex.
func (r AddressRecord) PublicKeyHex() string {
	return hex.EncodeToString(r.PublicKey)
}

// Wallet groups the records of every chain derived from one mnemonic.
type Wallet struct {
	Mnemonic string
	Tron     AddressRecord
	Ethereum AddressRecord
	Solana   AddressRecord
}

// Record returns the record for the given chain.
func (w Wallet) Record(c Chain) AddressRecord {
	switch c {
	case Ethereum:
		return w.Ethereum
	case Solana:
		return w.Solana
	default:
		return w.Tron
	}
}

// Records returns all records in TRON, EVM, SOL order.
func (w Wallet) Records() []AddressRecord {
	return []AddressRecord{w.Tron, w.Ethereum, w.Solana}
}

// Hit is a candidate wallet selected for reporting or persistence.
type Hit struct {
	Chain   Chain  // Chain whose address matched
	Wallet  Wallet // All records sharing the mnemonic
	Vanity  bool   // False for candidates kept only because SaveAll is set
	Pattern string // Matched pattern, or the trailing run when no patterns are set
	FoundAt time.Time
}

// Record returns the record of the chain that produced the hit.
func (h Hit) Record() AddressRecord {
	return h.Wallet.Record(h.Chain)
}

// Stats holds real-time search statistics.
// Generated and Found are read independently and are not a joint snapshot.
type Stats struct {
	Generated   uint64  // Candidate mnemonics processed
	Found       uint64  // Vanity hits
	HashRate    float64 // Candidates per second
	ElapsedSecs float64 // Time elapsed since start
}

// State is the lifecycle state of a search.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Sink persists hits. Implementations must be safe for concurrent use.
type Sink interface {
	Save(hit Hit) error
}

// Observer receives search events, typically to feed metrics.
// Implementations must be safe for concurrent use.
type Observer interface {
	CandidateGenerated()
	CandidateFailed()
	HitFound(chain Chain)
	HitDropped()
	PersistFailed()
}

// Generator defines the contract for search backends.
type Generator interface {
	// Start begins a search with the given configuration.
	// Cancelling ctx has the same effect as Stop.
	Start(ctx context.Context, config *Config) error

	// Pause and Resume toggle the shared pause flag.
	Pause() error
	Resume() error

	// Stop ends the search and returns once every worker has exited.
	Stop()

	// Done is closed when the current run has stopped.
	Done() <-chan struct{}

	// Poll returns statistics with the rate measured since the previous Poll.
	Poll() Stats

	// Stats returns statistics with the rate averaged since Start.
	Stats() Stats

	// Take removes and returns the most recent unconsumed hit.
	Take() (Hit, bool)

	// State returns the current lifecycle state.
	State() State

	// Name returns the implementation name.
	Name() string
}
