// Package cmd implements the seedhunter command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Amr-9/SeedHunter/internal/config"
	"github.com/Amr-9/SeedHunter/internal/logger"
)

const version = "0.4.0"

var configFile string

// rootCmd runs a search when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "seedhunter",
	Short: "Search BIP-39 mnemonics for vanity TRON, EVM and Solana addresses",
	Long: `SeedHunter generates random 12-word mnemonics, derives the standard
TRON (m/44'/195'/0'/0/0), EVM (m/44'/60'/0'/0/0) and Solana (m/44'/501'/0')
addresses from each, and records the wallets whose address ends with one of
the requested patterns.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default ./seedhunter.yaml or ./config/seedhunter.yaml)")
	pf.String("passphrase", "", "BIP-39 passphrase")
	pf.String("tron-hash", "keccak", "TRON address hashing: keccak or hash160")
	pf.String("log-env", "development", "logger preset: development or production")
	pf.String("log-level", "info", "log level")

	addSearchFlags(rootCmd.Flags())
}

// loadConfig reads the configuration with cmd's flags bound and starts the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Log.Env, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

var (
	lucky        bool
	highPriority bool
)

func addSearchFlags(fs *pflag.FlagSet) {
	fs.Int("threads", 0, "worker goroutines (default number of CPUs)")
	fs.Int("batch", 1000, "candidates per worker between pause checks")
	fs.StringSlice("chains", []string{"tron"}, "chains to match: tron, evm, sol")
	fs.StringSlice("patterns", nil, "address suffixes to look for, case-insensitive")
	fs.Bool("save-all", false, "also save wallets that did not match")
	fs.String("output", "vanity_addresses.txt", "file hits are appended to")
	fs.String("format", "multi", "record format: multi or single")
	fs.Bool("hidden", false, "mark the output file hidden (Windows)")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	fs.BoolVar(&lucky, "lucky", false, "use the preset patterns when none are given")
	fs.BoolVar(&highPriority, "high-priority", false, "raise the process priority")
}
