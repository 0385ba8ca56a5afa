package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		travelers int
		subtotal  string
		gst       string
		total     string
	}{
		{"reference case", "1000.00", 2, "2000.00", "360.00", "2360.00"},
		{"single traveler", "8999.00", 1, "8999.00", "1619.82", "10618.82"},
		{"rounding half up", "333.33", 3, "999.99", "180.00", "1179.99"},
		{"small amount", "0.50", 1, "0.50", "0.09", "0.59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, gst, total := ComputePricing(decimal.RequireFromString(tt.price), tt.travelers)

			assert.True(t, subtotal.Equal(decimal.RequireFromString(tt.subtotal)), "subtotal: got %s", subtotal)
			assert.True(t, gst.Equal(decimal.RequireFromString(tt.gst)), "gst: got %s", gst)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.total)), "total: got %s", total)
		})
	}
}

func TestComputePricingInvariants(t *testing.T) {
	prices := []string{"1000.00", "4999.00", "333.33", "12499.00", "0.01"}

	for _, p := range prices {
		for travelers := 1; travelers <= 5; travelers++ {
			subtotal, gst, total := ComputePricing(decimal.RequireFromString(p), travelers)

			assert.True(t, total.Equal(subtotal.Add(gst)),
				"total != subtotal + gst for price %s travelers %d", p, travelers)
			assert.True(t, gst.Equal(subtotal.Mul(GSTRate).Round(2)),
				"gst != round(subtotal*0.18, 2) for price %s travelers %d", p, travelers)
		}
	}
}
