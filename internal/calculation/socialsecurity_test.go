package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSocialSecurityBenefit(t *testing.T) {
	tests := []struct {
		name             string
		age              int
		isRetirementYear bool
		expected         decimal.Decimal
	}{
		{"not retired at 65", 65, false, decimal.Zero},
		{"retired before eligibility", 61, true, decimal.Zero},
		{"retired at eligibility age", 62, true, decimal.NewFromInt(41000)},
		// 41000 * 1.025^3 = 44152.515625
		{"three years of COLA", 65, true, decimal.NewFromFloat(44152.515625)},
		{"not retired below eligibility", 55, false, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SocialSecurityBenefit(tt.age, tt.isRetirementYear)
			assertDecimalEqual(t, tt.expected, got)
		})
	}
}

func TestSocialSecurityBenefit_CompoundsAnnually(t *testing.T) {
	// Each extra year multiplies the prior benefit by exactly 1.025
	prev := SocialSecurityBenefit(62, true)
	cola := decimal.NewFromFloat(1.025)
	for age := 63; age <= 100; age++ {
		current := SocialSecurityBenefit(age, true)
		assertDecimalEqual(t, prev.Mul(cola), current, "age %d", age)
		assert.True(t, current.GreaterThan(prev))
		prev = current
	}
}
