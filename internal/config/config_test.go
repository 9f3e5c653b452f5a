package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Acme SARL")
	assert.Equal(t, "Acme SARL", cfg.Organization.Name)
	assert.True(t, cfg.VAT.Enabled)
	assert.Equal(t, 0.20, cfg.VAT.Rate)
	assert.Equal(t, "data", cfg.Paths.Data)
	assert.Equal(t, "exports", cfg.Paths.Exports)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("FACTURO_VAT_RATE", "")
	t.Setenv("FACTURO_VAT_ENABLED", "")

	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default("Acme SARL")
	cfg.VAT.Rate = 0.055

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("organization: [not a mapping"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Acme SARL")))

	t.Setenv("FACTURO_VAT_RATE", "0.10")
	t.Setenv("FACTURO_VAT_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.10, cfg.VAT.Rate)
	assert.False(t, cfg.VAT.Enabled)
}

func TestLoad_BadEnvValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Acme SARL")))

	t.Setenv("FACTURO_VAT_RATE", "twenty percent")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestTaxConfig(t *testing.T) {
	cfg := Default("Acme SARL")
	tax, err := cfg.TaxConfig()
	require.NoError(t, err)
	assert.True(t, tax.Enabled)
	assert.True(t, tax.Rate.Equal(decimal.RequireFromString("0.2")))

	cfg.VAT.Rate = -0.1
	_, err = cfg.TaxConfig()
	assert.Error(t, err)
}
