package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/model"
)

// ValidationError describes a single ledger invariant violation.
type ValidationError struct {
	Invariant   int
	Account     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Account, e.Description)
}

var hundred = decimal.NewFromInt(100)

// Validate enforces 5 structural invariants on an aggregated ledger.
// Violations indicate programmer errors in the generation pipeline,
// not bad input data.
func Validate(entries []model.JournalEntry) []ValidationError {
	var errs []ValidationError

	prev := ""
	for _, e := range entries {
		// Invariant 1: Amounts are non-negative.
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Account:     e.Account,
				Description: fmt.Sprintf("negative amount (debit %s, credit %s)", e.Debit, e.Credit),
			})
		}

		// Invariant 2: No more than 2 decimal places.
		if !cents(e.Debit) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Account:     e.Account,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", e.Debit),
			})
		}
		if !cents(e.Credit) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Account:     e.Account,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", e.Credit),
			})
		}

		// Invariant 3: Known account code.
		if !chart.Exists(e.Account) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Account:     e.Account,
				Description: "unknown account code",
			})
		}

		// Invariant 4: Strictly ascending, unique account codes.
		if prev != "" && e.Account <= prev {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Account:     e.Account,
				Description: fmt.Sprintf("account %s not strictly after %s", e.Account, prev),
			})
		}
		prev = e.Account

		// Invariant 5: No all-zero entry.
		if e.Debit.IsZero() && e.Credit.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Account:     e.Account,
				Description: "entry has neither debit nor credit",
			})
		}
	}

	return errs
}

// cents reports whether an amount fits in whole cents.
func cents(d decimal.Decimal) bool {
	scaled := d.Mul(hundred)
	return scaled.Equal(scaled.Truncate(0))
}
