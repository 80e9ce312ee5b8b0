// Package config loads SeedHunter settings from flags, SEEDHUNTER_* environment
// variables, an optional YAML file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/tron"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SEEDHUNTER_SEARCH_THREADS.
const EnvPrefix = "SEEDHUNTER"

type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Tron    TronConfig    `mapstructure:"tron"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type SearchConfig struct {
	Threads   int      `mapstructure:"threads"`
	BatchSize int      `mapstructure:"batch_size"`
	Chains    []string `mapstructure:"chains"`
	Patterns  []string `mapstructure:"patterns"`
	SaveAll   bool     `mapstructure:"save_all"`
}

type WalletConfig struct {
	Passphrase string `mapstructure:"passphrase"`
}

type TronConfig struct {
	AddressHash string `mapstructure:"address_hash"` // "keccak" or "hash160"
}

type OutputConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // "multi" or "single"
	Hidden bool   `mapstructure:"hidden"`
}

type LogConfig struct {
	Env   string `mapstructure:"env"`
	Level string `mapstructure:"level"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty disables the /metrics listener
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"threads":      "search.threads",
	"batch":        "search.batch_size",
	"chains":       "search.chains",
	"patterns":     "search.patterns",
	"save-all":     "search.save_all",
	"passphrase":   "wallet.passphrase",
	"tron-hash":    "tron.address_hash",
	"output":       "output.file",
	"format":       "output.format",
	"hidden":       "output.hidden",
	"log-env":      "log.env",
	"log-level":    "log.level",
	"metrics-addr": "metrics.addr",
}

// Load reads the configuration. configFile may be empty, in which case
// seedhunter.yaml is looked up in . and ./config and may be absent.
// flags may be nil; only flags that exist in the set are bound.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("seedhunter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.threads", runtime.NumCPU())
	v.SetDefault("search.batch_size", 1000)
	v.SetDefault("search.chains", []string{"tron"})
	v.SetDefault("search.patterns", []string{})
	v.SetDefault("search.save_all", false)

	v.SetDefault("wallet.passphrase", "")
	v.SetDefault("tron.address_hash", "keccak")

	v.SetDefault("output.file", "vanity_addresses.txt")
	v.SetDefault("output.format", "multi")
	v.SetDefault("output.hidden", false)

	v.SetDefault("log.env", "development")
	v.SetDefault("log.level", "info")

	v.SetDefault("metrics.addr", "")
}

// Validate checks values that cannot be caught when a search starts.
func (c *Config) Validate() error {
	if _, err := c.SearchConfig(); err != nil {
		return err
	}
	if _, err := c.TronHashMode(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "multi", "single":
	default:
		return fmt.Errorf("%w: output format must be multi or single, got %q", generator.ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.File == "" {
		return fmt.Errorf("%w: output file is empty", generator.ErrInvalidConfig)
	}
	return nil
}

// SearchConfig converts the search section into a generator.Config.
func (c *Config) SearchConfig() (*generator.Config, error) {
	chains := make([]generator.Chain, 0, len(c.Search.Chains))
	seen := make(map[generator.Chain]bool)
	for _, name := range c.Search.Chains {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			chain, err := generator.ParseChain(part)
			if err != nil {
				return nil, err
			}
			if !seen[chain] {
				seen[chain] = true
				chains = append(chains, chain)
			}
		}
	}

	cfg := &generator.Config{
		Chains:    chains,
		Patterns:  append([]string(nil), c.Search.Patterns...),
		Threads:   c.Search.Threads,
		BatchSize: c.Search.BatchSize,
		SaveAll:   c.Search.SaveAll,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TronHashMode parses tron.address_hash.
func (c *Config) TronHashMode() (tron.HashMode, error) {
	return tron.ParseHashMode(c.Tron.AddressHash)
}
