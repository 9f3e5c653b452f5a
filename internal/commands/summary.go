package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facturo-dev/facturo/internal/ledger"
	"github.com/facturo-dev/facturo/internal/money"
)

func newSummaryCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show VAT, revenue and expense totals over posting-eligible invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runSummary(dir string) error {
	in, err := loadProject(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Revenue (net):     %12s\n", money.FormatFR(ledger.RevenueNet(in.clientInvoices, in.tax)))
	fmt.Printf("Expenses (net):    %12s\n", money.FormatFR(ledger.ExpensesNet(in.vendorInvoices, in.tax)))
	fmt.Printf("VAT collected:     %12s\n", money.FormatFR(ledger.CollectedVAT(in.clientInvoices, in.tax)))
	fmt.Printf("VAT deductible:    %12s\n", money.FormatFR(ledger.DeductibleVAT(in.vendorInvoices, in.tax)))
	return nil
}
