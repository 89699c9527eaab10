package domain

import "github.com/shopspring/decimal"

func init() {
	// The storefront API speaks plain JSON numbers for prices and totals.
	decimal.MarshalJSONWithoutQuotes = true
}

// Cents converts an integer cent amount into a two-place decimal.
func Cents(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}

// ToCents rounds a decimal amount to whole cents.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
