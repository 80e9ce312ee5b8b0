package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Amr-9/SeedHunter/internal/logger"
	"github.com/Amr-9/SeedHunter/internal/metrics"
	"github.com/Amr-9/SeedHunter/internal/store"
	"github.com/Amr-9/SeedHunter/internal/ui"
	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/cpu"
	"github.com/Amr-9/SeedHunter/pkg/generator/wallet"
)

const updateRate = 33 * time.Millisecond

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for vanity addresses (default command)",
	Long: `Search runs worker goroutines that generate mnemonics until stopped.
Type "p" and Enter to pause or resume, "q" and Enter to stop. Ctrl+C also stops.`,
	RunE: runSearch,
}

func init() {
	addSearchFlags(searchCmd.Flags())
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("search")

	if highPriority {
		if err := raisePriority(); err != nil {
			log.Warn("could not raise process priority", zap.Error(err))
		}
	}

	searchCfg, err := cfg.SearchConfig()
	if err != nil {
		return err
	}
	if lucky && len(generator.NewMatchPolicy(searchCfg.Patterns).Patterns()) == 0 {
		searchCfg.Patterns = append([]string(nil), generator.DefaultPatterns...)
	}

	mode, err := cfg.TronHashMode()
	if err != nil {
		return err
	}
	format, err := store.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	sink := store.NewFileSink(cfg.Output.File, format, store.WithHidden(cfg.Output.Hidden))

	m := metrics.NewMetrics("")
	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, m, log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	gen := cpu.NewCPUGenerator(
		cpu.WithDeriver(wallet.NewDeriver(
			wallet.WithPassphrase(cfg.Wallet.Passphrase),
			wallet.WithTronHashMode(mode),
		)),
		cpu.WithSink(sink),
		cpu.WithObserver(m),
		cpu.WithLogger(logger.Named("cpu")),
	)

	console := ui.NewConsole(cmd.OutOrStdout())
	console.PrintWelcomeBanner(version)
	unmatchable := ui.UnmatchablePatterns(searchCfg.Chains, searchCfg.Patterns)
	for _, chain := range searchCfg.Chains {
		if patterns := unmatchable[chain]; len(patterns) > 0 {
			console.PrintWarning("%s addresses can never end with %s", chain, strings.Join(patterns, ", "))
		}
	}
	console.PrintSearchInfo(searchCfg, sink.Path())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gen.Start(ctx, searchCfg); err != nil {
		return err
	}

	stats := watch(gen, console, m.SetRate, ui.ReadCommands(ctx, cmd.InOrStdin()), updateRate)
	console.PrintSummary(stats, sink.Path())

	log.Info("search finished",
		zap.Uint64("generated", stats.Generated),
		zap.Uint64("found", stats.Found),
		zap.Uint64("dropped", gen.Dropped()),
		zap.Float64("elapsed_secs", stats.ElapsedSecs))
	return nil
}

// watch drives the console until the run stops: it redraws progress every
// tick, prints hits taken from the result slot and applies keyboard commands.
// It returns the final statistics.
func watch(gen generator.Generator, console *ui.Console, setRate func(float64), commands <-chan ui.Command, every time.Duration) generator.Stats {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-gen.Done():
			drainHits(gen, console)
			return gen.Stats()

		case c, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			switch c {
			case ui.CommandTogglePause:
				if gen.State() == generator.StatePaused {
					_ = gen.Resume()
				} else {
					_ = gen.Pause()
				}
			case ui.CommandQuit:
				gen.Stop()
			}

		case <-ticker.C:
			drainHits(gen, console)
			stats := gen.Poll()
			setRate(stats.HashRate)
			console.PrintProgress(stats, gen.State(), frame)
			frame++
		}
	}
}

func drainHits(gen generator.Generator, console *ui.Console) {
	if hit, ok := gen.Take(); ok {
		console.PrintHit(hit)
	}
}

func serveMetrics(addr string, m *metrics.Metrics, log *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()
	return srv
}
