package calculation

import (
	"github.com/shopspring/decimal"
)

// SocialSecurityEligibilityAge is the hardcoded benefit start age. The plan
// config carries a separate social_security_start_age field that the engine
// does not consult; the original model pinned eligibility at 62 and that
// behavior is preserved.
const SocialSecurityEligibilityAge = 62

// socialSecurityBaseBenefit approximates the maximum annual benefit when
// claiming at age 62.
var socialSecurityBaseBenefit = decimal.NewFromInt(41000)

// socialSecurityCOLA is the annual cost-of-living adjustment compounded on
// the base benefit for each year past 62.
var socialSecurityCOLA = decimal.NewFromFloat(0.025)

// SocialSecurityBenefit returns the COLA-compounded annual benefit for a
// given age: base * (1 + COLA)^(age - 62) during retirement years at or
// past the eligibility age, zero otherwise.
func SocialSecurityBenefit(age int, isRetirementYear bool) decimal.Decimal {
	if !isRetirementYear || age < SocialSecurityEligibilityAge {
		return decimal.Zero
	}
	yearsSinceEligibility := int64(age - SocialSecurityEligibilityAge)
	growth := decimal.NewFromInt(1).Add(socialSecurityCOLA).Pow(decimal.NewFromInt(yearsSinceEligibility))
	return socialSecurityBaseBenefit.Mul(growth)
}
