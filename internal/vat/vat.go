// Package vat decomposes gross (tax-inclusive) amounts into their net
// and tax components under a single organization-wide rate.
package vat

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/facturo-dev/facturo/internal/money"
)

var one = decimal.NewFromInt(1)

// Config is the organization-level VAT setting. The rate is a decimal
// fraction (0.20 for 20%).
type Config struct {
	Enabled bool
	Rate    decimal.Decimal
}

// NewConfig validates and builds a Config. A negative rate is a
// programmer error, not ordinary data variance.
func NewConfig(enabled bool, rate decimal.Decimal) (Config, error) {
	if rate.IsNegative() {
		return Config{}, fmt.Errorf("vat rate must not be negative, got %s", rate)
	}
	return Config{Enabled: enabled, Rate: rate}, nil
}

// Net returns the tax-exclusive portion of a gross amount.
func (c Config) Net(ttc decimal.Decimal) decimal.Decimal {
	return money.Round2(ttc.Div(one.Add(c.Rate)))
}

// Tax returns the VAT portion of a gross amount. Net + Tax may miss
// the re-rounded gross by one cent because both sides round
// independently; forcing exact reconciliation would hide genuine data
// errors, so the divergence is left to the balance check tolerance.
func (c Config) Tax(ttc decimal.Decimal) decimal.Decimal {
	return money.Round2(ttc.Sub(c.Net(ttc)))
}

// Multiplier returns the gross-up factor applied to a net amount when
// building an invoice total. A per-record override wins over the
// global enabled flag.
func (c Config) Multiplier(override *bool) decimal.Decimal {
	enabled := c.Enabled
	if override != nil {
		enabled = *override
	}
	if !enabled {
		return one
	}
	return one.Add(c.Rate)
}
