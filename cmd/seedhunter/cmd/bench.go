package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Amr-9/SeedHunter/internal/ui"
	"github.com/Amr-9/SeedHunter/pkg/generator/wallet"
)

var (
	benchSingle   int
	benchParallel []int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure wallet derivation throughput",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchSingle, "single", 100, "wallets derived on one goroutine")
	benchCmd.Flags().IntSliceVar(&benchParallel, "parallel", []int{1000, 10000}, "wallet counts derived across all CPUs")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mode, err := cfg.TronHashMode()
	if err != nil {
		return err
	}
	d := wallet.NewDeriver(
		wallet.WithPassphrase(cfg.Wallet.Passphrase),
		wallet.WithTronHashMode(mode),
	)

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if benchSingle > 0 {
		elapsed, err := measure(ctx, d, benchSingle, 1)
		if err != nil {
			return err
		}
		report(out, "single", benchSingle, elapsed)
	}

	workers := runtime.NumCPU()
	for _, n := range benchParallel {
		if n <= 0 {
			continue
		}
		elapsed, err := measure(ctx, d, n, workers)
		if err != nil {
			return err
		}
		report(out, fmt.Sprintf("%d goroutines", workers), n, elapsed)
	}
	return nil
}

// measure derives n wallets with at most limit concurrent goroutines.
func measure(ctx context.Context, d *wallet.Deriver, n, limit int) (time.Duration, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	start := time.Now()
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			_, err := d.Generate()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("bench: %w", err)
	}
	return time.Since(start), ctx.Err()
}

func report(w io.Writer, label string, n int, elapsed time.Duration) {
	rate := float64(n) / elapsed.Seconds()
	fmt.Fprintf(w, "    %-16s %8s wallets in %-9s %s%s%s\n",
		label, ui.FormatNumber(uint64(n)), ui.FormatDuration(elapsed),
		ui.ColorGreen+ui.ColorBold, ui.FormatHashRate(rate), ui.ColorReset)
}
