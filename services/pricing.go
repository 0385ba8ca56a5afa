package services

import "github.com/shopspring/decimal"

// GSTRate is the fixed tax rate applied to every booking subtotal.
var GSTRate = decimal.RequireFromString("0.18")

// ComputePricing derives the booking amounts from the package price and
// traveler count:
//
//	subtotal = price * travelers
//	gst      = round(subtotal * 0.18, 2)   (half up)
//	total    = subtotal + gst
func ComputePricing(price decimal.Decimal, travelers int) (subtotal, gst, total decimal.Decimal) {
	subtotal = price.Mul(decimal.NewFromInt(int64(travelers))).Round(2)
	gst = subtotal.Mul(GSTRate).Round(2)
	total = subtotal.Add(gst)
	return subtotal, gst, total
}
