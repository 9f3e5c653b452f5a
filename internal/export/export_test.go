package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo-dev/facturo/internal/accounts"
	"github.com/facturo-dev/facturo/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleLedger() []model.JournalEntry {
	return []model.JournalEntry{
		{Account: accounts.CodeVendors, Label: "Fournisseurs", Credit: dec("600.00")},
		{Account: accounts.CodeClients, Label: "Clients", Debit: dec("1200.00")},
		{Account: accounts.CodeVATDeductible, Label: "TVA déductible", Debit: dec("100.00")},
		{Account: accounts.CodeVATCollected, Label: "TVA collectée", Credit: dec("200.00")},
		{Account: accounts.CodePurchases, Label: "Achats non stockés", Debit: dec("500.00")},
		{Account: accounts.CodeServices, Label: "Prestations de services", Credit: dec("1000.00")},
	}
}

func TestWriteLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, sampleLedger()))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "file must start with a UTF-8 BOM")

	want := "Compte;Libellé;Débit;Crédit\n" +
		"401000;Fournisseurs;;600,00\n" +
		"411000;Clients;1200,00;\n" +
		"445660;TVA déductible;100,00;\n" +
		"445710;TVA collectée;;200,00\n" +
		"604000;Achats non stockés;500,00;\n" +
		"706000;Prestations de services;;1000,00\n" +
		"TOTAL;;1800,00;1800,00\n"
	assert.Equal(t, want, string(out[3:]))
}

func TestWriteLedger_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, nil))

	want := "Compte;Libellé;Débit;Crédit\n" +
		"TOTAL;;0,00;0,00\n"
	assert.Equal(t, want, string(buf.Bytes()[3:]))
}

func TestFileName(t *testing.T) {
	ts := time.Date(2025, 1, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "export-comptable-20250131.csv", FileName(ts))
}

func TestWriteLedgerFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	path, err := WriteLedgerFile(dir, sampleLedger(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export-comptable-20250201.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(data), "TOTAL;;1800,00;1800,00")
}
