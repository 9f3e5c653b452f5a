package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facturo-dev/facturo/internal/config"
	"github.com/facturo-dev/facturo/internal/records"
)

func newInitCommand() *cobra.Command {
	var name string
	var vatRate float64
	var noVAT bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new facturo project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, vatRate, !noVAT)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "organization name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().Float64Var(&vatRate, "vat-rate", 0.20, "VAT rate as a decimal fraction")
	cmd.Flags().BoolVar(&noVAT, "no-vat", false, "disable VAT on client invoices")

	return cmd
}

// recordHeaders seed the empty data files so their format is visible.
var recordHeaders = map[string]string{
	records.ClientsFile:   "id,name\n",
	records.ServicesFile:  "id,client_id,kind,status,scheduled_at,price,surcharge,invoice_number,vat_enabled\n",
	records.PurchasesFile: "id,vendor,reference,date,status,amount_ttc\n",
}

func runInit(dir, name string, vatRate float64, vatEnabled bool) error {
	cfg := config.Default(name)
	cfg.VAT.Rate = vatRate
	cfg.VAT.Enabled = vatEnabled

	dirs := []string{cfg.Paths.Data, cfg.Paths.Exports, "logs"}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	for file, header := range recordHeaders {
		path := filepath.Join(dir, cfg.Paths.Data, file)
		if _, err := os.Stat(path); err == nil {
			continue // never overwrite existing records
		}
		if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
	}

	fmt.Printf("Initialized facturo project at %s\n", dir)
	return nil
}
