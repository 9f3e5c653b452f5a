package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facturo-dev/facturo/internal/money"
)

func newInvoicesCommand() *cobra.Command {
	var dir string
	var side string

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "List normalized invoices, including drafts the ledger excludes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if side != "client" && side != "vendor" && side != "all" {
				return fmt.Errorf("invalid --side %q: must be client, vendor or all", side)
			}
			return runInvoices(dir, side)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&side, "side", "all", "which invoices to list (client, vendor, all)")

	return cmd
}

func runInvoices(dir, side string) error {
	in, err := loadProject(dir)
	if err != nil {
		return err
	}

	if side == "client" || side == "all" {
		fmt.Printf("Client invoices (%d):\n", len(in.clientInvoices))
		for _, inv := range in.clientInvoices {
			fmt.Printf("  %-14s  %-20s  %s  %10s  %s\n",
				inv.Number, inv.Client, inv.IssueDate.Format("2006-01-02"),
				money.FormatFR(inv.AmountTTC), inv.Status)
		}
	}

	if side == "vendor" || side == "all" {
		fmt.Printf("Vendor invoices (%d):\n", len(in.vendorInvoices))
		for _, inv := range in.vendorInvoices {
			fmt.Printf("  %-14s  %-20s  %s  %10s  %s\n",
				inv.Number, inv.Vendor, inv.IssueDate.Format("2006-01-02"),
				money.FormatFR(inv.AmountTTC), inv.Status)
		}
	}

	return nil
}
