package generator

import "errors"

var (
	// ErrInvalidMnemonic is returned when a word sequence fails length, word-list or checksum checks.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrDerivation is returned for malformed paths or keys that cannot be derived.
	ErrDerivation = errors.New("key derivation failed")
	// ErrEncoding is returned when key material has the wrong shape for an encoder.
	ErrEncoding = errors.New("encoding failed")
	// ErrInvalidConfig is returned by Start for configurations that cannot run.
	ErrInvalidConfig = errors.New("invalid search config")
	// ErrAlreadyRunning is returned by Start while a search is running or paused.
	ErrAlreadyRunning = errors.New("search already running")
	// ErrNotRunning is returned by Pause and Resume outside a matching state.
	ErrNotRunning = errors.New("search not running")
)
