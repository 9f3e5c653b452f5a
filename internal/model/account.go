package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account is one entry of the fixed chart of accounts.
type Account struct {
	Code  string // fixed-width numeric string, sorts in numeric order
	Label string
	Type  AccountType
}
