package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/facturo-dev/facturo/internal/export"
	"github.com/facturo-dev/facturo/internal/exportlog"
	"github.com/facturo-dev/facturo/internal/ledger"
	"github.com/facturo-dev/facturo/internal/logger"
	"github.com/facturo-dev/facturo/internal/money"
)

func newExportCommand() *cobra.Command {
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate the accounting export file from current records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(dir, force, time.Now())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().BoolVar(&force, "force", false, "export even when debits and credits do not balance")

	return cmd
}

func runExport(dir string, force bool, now time.Time) error {
	in, err := loadProject(dir)
	if err != nil {
		return err
	}

	entries := ledger.Build(in.clientInvoices, in.vendorInvoices, in.tax)
	if len(entries) == 0 {
		return fmt.Errorf("no entries to export: add client or vendor invoices first")
	}

	if verrs := ledger.Validate(entries); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("ledger validation failed: %s", strings.Join(msgs, "; "))
	}

	balance := ledger.CheckBalance(entries)
	if !balance.Balanced && !force {
		return fmt.Errorf("ledger is unbalanced by %s, use --force to export anyway", money.FormatFR(balance.Difference))
	}

	exportDir := filepath.Join(dir, in.cfg.Paths.Exports)
	path, err := export.WriteLedgerFile(exportDir, entries, now)
	if err != nil {
		return err
	}

	totalDebit, totalCredit := ledger.Totals(entries)
	logEntry := exportlog.Entry{
		Timestamp:   now,
		File:        filepath.Base(path),
		Rows:        len(entries),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Balanced:    balance.Balanced,
	}
	if err := exportlog.Append(dir, []exportlog.Entry{logEntry}); err != nil {
		return fmt.Errorf("recording export run: %w", err)
	}

	log := logger.WithComponent("export")
	log.Info().
		Str("file", path).
		Int("rows", len(entries)).
		Bool("balanced", balance.Balanced).
		Msg("export written")

	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	if !balance.Balanced {
		fmt.Printf("Warning: debits and credits differ by %s\n", money.FormatFR(balance.Difference))
	}
	return nil
}
