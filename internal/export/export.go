// Package export serializes an aggregated ledger into the
// semicolon-delimited file the accounting tool imports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/facturo-dev/facturo/internal/ledger"
	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/money"
)

// Header is the first row of the export file.
const Header = "Compte;Libellé;Débit;Crédit"

const numFields = 4

// bom is the UTF-8 byte order mark; Excel needs it to detect the
// encoding of the accented labels.
var bom = []byte{0xEF, 0xBB, 0xBF}

// WriteLedger writes the ledger rows plus a TOTAL row. Amounts use a
// comma decimal separator; zero sides are left empty.
func WriteLedger(w io.Writer, entries []model.JournalEntry) error {
	if _, err := w.Write(bom); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ";")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(marshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	totalDebit, totalCredit := ledger.Totals(entries)
	total := []string{"TOTAL", "", money.FormatFR(totalDebit), money.FormatFR(totalCredit)}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("writing total row: %w", err)
	}

	return cw.Error()
}

// FileName returns the dated export file name, e.g.
// "export-comptable-20250131.csv".
func FileName(t time.Time) string {
	return fmt.Sprintf("export-comptable-%s.csv", t.Format("20060102"))
}

// WriteLedgerFile writes the ledger to <dir>/<FileName(now)>, creating
// the directory if needed, and returns the file path.
func WriteLedgerFile(dir string, entries []model.JournalEntry, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteLedger(f, entries); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

// marshalEntry converts a JournalEntry to an export row.
func marshalEntry(e model.JournalEntry) []string {
	row := make([]string, numFields)
	row[0] = e.Account
	row[1] = e.Label
	if e.Debit.IsPositive() {
		row[2] = money.FormatFR(e.Debit)
	}
	if e.Credit.IsPositive() {
		row[3] = money.FormatFR(e.Credit)
	}
	return row
}
