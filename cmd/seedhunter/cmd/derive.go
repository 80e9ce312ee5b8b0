package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Amr-9/SeedHunter/internal/store"
	"github.com/Amr-9/SeedHunter/internal/ui"
	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/wallet"
)

var deriveRecord bool

var deriveCmd = &cobra.Command{
	Use:   "derive <word>...",
	Short: "Print the TRON, EVM and Solana keys of a mnemonic",
	Example: `  seedhunter derive scissors inch embody vapor garment panther cinnamon theme first coast panda brand
  seedhunter derive --passphrase secret "scissors inch embody ..."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().BoolVar(&deriveRecord, "record", false, "print in the output file's multi-chain record format")
	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, args []string) error {
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
	w, err := d.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if deriveRecord {
		return store.WriteRecord(cmd.OutOrStdout(), generator.Hit{Chain: generator.Tron, Wallet: w}, store.FormatMulti)
	}
	ui.NewConsole(cmd.OutOrStdout()).PrintRecord(w)
	return nil
}
