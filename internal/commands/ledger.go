package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facturo-dev/facturo/internal/ledger"
	"github.com/facturo-dev/facturo/internal/money"
)

func newLedgerCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Preview the aggregated ledger and its balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedger(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runLedger(dir string) error {
	in, err := loadProject(dir)
	if err != nil {
		return err
	}

	entries := ledger.Build(in.clientInvoices, in.vendorInvoices, in.tax)
	if len(entries) == 0 {
		fmt.Println("No journal entries: no posting-eligible invoices found.")
		return nil
	}

	fmt.Printf("%-8s  %-26s  %12s  %12s\n", "Compte", "Libellé", "Débit", "Crédit")
	for _, e := range entries {
		debit, credit := "", ""
		if e.Debit.IsPositive() {
			debit = money.FormatFR(e.Debit)
		}
		if e.Credit.IsPositive() {
			credit = money.FormatFR(e.Credit)
		}
		fmt.Printf("%-8s  %-26s  %12s  %12s\n", e.Account, e.Label, debit, credit)
	}

	totalDebit, totalCredit := ledger.Totals(entries)
	fmt.Printf("%-8s  %-26s  %12s  %12s\n", "TOTAL", "", money.FormatFR(totalDebit), money.FormatFR(totalCredit))

	balance := ledger.CheckBalance(entries)
	if balance.Balanced {
		fmt.Println("Balance: OK")
	} else {
		fmt.Printf("Balance: UNBALANCED (difference %s)\n", money.FormatFR(balance.Difference))
	}
	return nil
}
