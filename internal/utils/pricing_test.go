package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	cases := []struct {
		budget int64
		taxes  int64
		total  int64
	}{
		{budget: 0, taxes: 0, total: 500},
		{budget: 1000, taxes: 180, total: 1680},
		{budget: 2500, taxes: 450, total: 3450},
		{budget: 1, taxes: 0, total: 501},
		{budget: 3, taxes: 1, total: 504},
		// exact halves round to even
		{budget: 25, taxes: 4, total: 529},
		{budget: 75, taxes: 14, total: 589},
	}

	for _, tc := range cases {
		p := ComputePricing(tc.budget)
		assert.Equal(t, tc.budget, p.Package, "budget %d", tc.budget)
		assert.Equal(t, ServiceFee, p.ServiceFee, "budget %d", tc.budget)
		assert.Equal(t, tc.taxes, p.Taxes, "budget %d", tc.budget)
		assert.Equal(t, tc.total, p.Total, "budget %d", tc.budget)
	}
}

func TestComputePricingTotalIsSumOfParts(t *testing.T) {
	for b := int64(0); b < 5000; b += 37 {
		p := ComputePricing(b)
		if p.Total != b+p.ServiceFee+p.Taxes {
			t.Fatalf("budget %d: total %d != %d+%d+%d", b, p.Total, b, p.ServiceFee, p.Taxes)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,680", FormatAmount(1680))
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
}
