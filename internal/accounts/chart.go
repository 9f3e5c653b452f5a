package accounts

import "github.com/facturo-dev/facturo/internal/model"

// Account codes of the fixed chart. The export format expects exactly
// these six accounts; the chart is not configurable.
const (
	CodeClients       = "411000" // accounts receivable
	CodeVendors       = "401000" // accounts payable
	CodeVATDeductible = "445660"
	CodeVATCollected  = "445710"
	CodePurchases     = "604000" // non-stocked purchases
	CodeServices      = "706000" // service revenue
)

// Chart returns the fixed chart of accounts used by the ledger
// generator, in ascending code order.
func Chart() []model.Account {
	return []model.Account{
		{Code: CodeVendors, Label: "Fournisseurs", Type: model.AccountTypeLiability},
		{Code: CodeClients, Label: "Clients", Type: model.AccountTypeAsset},
		{Code: CodeVATDeductible, Label: "TVA déductible", Type: model.AccountTypeAsset},
		{Code: CodeVATCollected, Label: "TVA collectée", Type: model.AccountTypeLiability},
		{Code: CodePurchases, Label: "Achats non stockés", Type: model.AccountTypeExpense},
		{Code: CodeServices, Label: "Prestations de services", Type: model.AccountTypeRevenue},
	}
}
