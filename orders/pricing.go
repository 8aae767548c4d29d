package orders

import (
	"math"
)

// Pricing rules. The price breakdown is always computed server-side from
// product snapshots; price fields submitted by the client are ignored.
const (
	// ShippingFlatRate is charged below the free-shipping threshold.
	ShippingFlatRate = 50.0
	// FreeShippingThreshold waives shipping at or above this items subtotal.
	FreeShippingThreshold = 1000.0
	// TaxRate is applied to the items subtotal.
	TaxRate = 0.05
)

// ShippingFor returns the shipping price for an items subtotal.
func ShippingFor(itemsPrice float64) float64 {
	if itemsPrice >= FreeShippingThreshold {
		return 0
	}
	return ShippingFlatRate
}

// TaxFor returns the tax for an items subtotal, rounded to two decimals.
func TaxFor(itemsPrice float64) float64 {
	return round2(itemsPrice * TaxRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
