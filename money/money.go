// Package money formats Stripe minor-unit amounts for display.
package money

import "github.com/shopspring/decimal"

// Format renders minor units as a two-decimal string without a currency symbol.
// 1999 -> "19.99", -5 -> "-0.05".
func Format(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

// FormatPercent renders a coupon percentage without trailing zeros, e.g. 20 -> "20", 12.5 -> "12.5".
func FormatPercent(percent float64) string {
	return decimal.NewFromFloat(percent).String()
}
