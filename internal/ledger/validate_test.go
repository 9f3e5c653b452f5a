package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo-dev/facturo/internal/accounts"
	"github.com/facturo-dev/facturo/internal/model"
)

func invariants(errs []ValidationError) []int {
	out := make([]int, len(errs))
	for i, e := range errs {
		out[i] = e.Invariant
	}
	return out
}

func TestValidate_CleanLedger(t *testing.T) {
	entries := Build(
		[]model.ClientInvoice{clientInv("1200.00", model.ClientPaid)},
		[]model.VendorInvoice{vendorInv("600.00", model.VendorPaid)},
		standardVAT(t))
	assert.Empty(t, Validate(entries))
	assert.Empty(t, Validate(nil))
}

func TestValidate_NegativeAmount(t *testing.T) {
	errs := Validate([]model.JournalEntry{
		{Account: accounts.CodeClients, Debit: dec("-1.00")},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Equal(t, accounts.CodeClients, errs[0].Account)
	assert.Contains(t, errs[0].Error(), "negative")
}

func TestValidate_SubCentPrecision(t *testing.T) {
	errs := Validate([]model.JournalEntry{
		{Account: accounts.CodeClients, Debit: dec("1.005")},
	})
	assert.Contains(t, invariants(errs), 2)

	// 1.50 stored as 1.5 is still whole cents.
	errs = Validate([]model.JournalEntry{
		{Account: accounts.CodeClients, Debit: dec("1.5")},
	})
	assert.Empty(t, errs)
}

func TestValidate_UnknownAccount(t *testing.T) {
	errs := Validate([]model.JournalEntry{
		{Account: "512000", Debit: dec("10.00")},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
}

func TestValidate_Ordering(t *testing.T) {
	out := []model.JournalEntry{
		{Account: accounts.CodeClients, Debit: dec("10.00")},
		{Account: accounts.CodeVendors, Credit: dec("10.00")},
	}
	assert.Contains(t, invariants(Validate(out)), 4, "411000 before 401000 is out of order")

	dup := []model.JournalEntry{
		{Account: accounts.CodeClients, Debit: dec("10.00")},
		{Account: accounts.CodeClients, Debit: dec("10.00")},
	}
	assert.Contains(t, invariants(Validate(dup)), 4, "duplicate codes are rejected")
}

func TestValidate_ZeroEntry(t *testing.T) {
	errs := Validate([]model.JournalEntry{
		{Account: accounts.CodeClients},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Invariant)
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	errs := Validate([]model.JournalEntry{
		{Account: "512000", Debit: dec("-0.005")},
	})
	assert.ElementsMatch(t, []int{1, 2, 3}, invariants(errs))
}
