package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo-dev/facturo/internal/exportlog"
	"github.com/facturo-dev/facturo/internal/ledger"
	"github.com/facturo-dev/facturo/internal/model"
	"github.com/facturo-dev/facturo/internal/records"
)

// newProject initializes a project and fills its data files.
func newProject(t *testing.T, clients, services, purchases string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme SARL", 0.20, true))

	seed := map[string]string{
		records.ClientsFile:   clients,
		records.ServicesFile:  services,
		records.PurchasesFile: purchases,
	}
	for file, content := range seed {
		if content == "" {
			continue
		}
		path := filepath.Join(dir, "data", file)
		require.NoError(t, os.WriteFile(path, []byte(recordHeaders[file]+content), 0o644))
	}
	return dir
}

func TestRunExport(t *testing.T) {
	dir := newProject(t,
		"c1,Acme SARL\n",
		"eng-1,c1,invoice,completed,2025-01-15T09:30:00Z,1000.00,,FAC-2025-001,\n",
		"pur-1,Fournisseur SA,INV-9917,2025-03-01,paid,600.00\n")

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, runExport(dir, false, now))

	path := filepath.Join(dir, "exports", "export-comptable-20250315.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "411000;Clients;1200,00;")
	assert.Contains(t, out, "706000;Prestations de services;;1000,00")
	assert.Contains(t, out, "445710;TVA collectée;;200,00")
	assert.Contains(t, out, "604000;Achats non stockés;500,00;")
	assert.Contains(t, out, "445660;TVA déductible;100,00;")
	assert.Contains(t, out, "401000;Fournisseurs;;600,00")
	assert.Contains(t, out, "TOTAL;;1800,00;1800,00")

	log, err := exportlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "export-comptable-20250315.csv", log[0].File)
	assert.Equal(t, 6, log[0].Rows)
	assert.True(t, log[0].Balanced)
}

func TestRunExport_NoEntries(t *testing.T) {
	dir := newProject(t, "", "", "")

	err := runExport(dir, false, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries to export")
}

func TestRunExport_MissingConfig(t *testing.T) {
	err := runExport(t.TempDir(), false, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading project config")
}

func TestRunExport_MalformedRowsSkipped(t *testing.T) {
	dir := newProject(t,
		"c1,Acme SARL\n",
		"eng-1,c1,invoice,completed,2025-01-15,1000.00,,,\n"+
			"eng-2,c1,invoice,completed,not-a-date,500.00,,,\n",
		"")

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, runExport(dir, false, now))

	data, err := os.ReadFile(filepath.Join(dir, "exports", "export-comptable-20250315.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "411000;Clients;1200,00;", "only the parseable row posts")
}

func TestLoadProject_DraftsListedButNotPosted(t *testing.T) {
	dir := newProject(t,
		"c1,Acme SARL\n",
		"eng-1,c1,invoice,completed,2025-01-15,1000.00,,,\n",
		"pur-1,Fournisseur SA,,2025-03-01,draft,600.00\n")

	in, err := loadProject(dir)
	require.NoError(t, err)

	require.Len(t, in.vendorInvoices, 1, "drafts appear in the invoice view")
	assert.Equal(t, model.VendorDraft, in.vendorInvoices[0].Status)

	entries := ledger.Build(in.clientInvoices, in.vendorInvoices, in.tax)
	for _, e := range entries {
		assert.NotEqual(t, "401000", e.Account, "a draft purchase must not post")
	}
	require.Len(t, entries, 3)
}
