// Package money converts between major currency units (rupees) used at the API
// boundary and minor units (paise) used by storage and the payment gateway.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToMinor returns round(amount * 100).
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func FloatToMinor(amount float64) int64 {
	return ToMinor(decimal.NewFromFloat(amount))
}

func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

func MinorToFloat(minor int64) float64 {
	return FromMinor(minor).InexactFloat64()
}
