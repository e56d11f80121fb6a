package utils

import "math"

const (
	// ServiceFee is charged once per booking regardless of budget.
	ServiceFee int64 = 500
	// TaxRate applies to the package budget only.
	TaxRate = 0.18
)

// Pricing is the breakdown shown on checkout and confirmation pages.
type Pricing struct {
	Package    int64
	ServiceFee int64
	Taxes      int64
	Total      int64
}

// ComputePricing maps a non-negative budget to fee, taxes and total.
// Taxes round half to even on the float product, so 25 yields 4 and 75 yields 14.
func ComputePricing(budget int64) Pricing {
	taxes := int64(math.RoundToEven(float64(budget) * TaxRate))
	return Pricing{
		Package:    budget,
		ServiceFee: ServiceFee,
		Taxes:      taxes,
		Total:      budget + ServiceFee + taxes,
	}
}
