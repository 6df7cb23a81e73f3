package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ImpactTier maps a reference donation amount to a unit of impact.
type ImpactTier struct {
	Amount int64
	Count  int64
	Unit   string
}

// ImpactTiers is ordered by ascending Amount.
var ImpactTiers = []ImpactTier{
	{Amount: 500, Count: 2, Unit: "School Kits"},
	{Amount: 1000, Count: 5, Unit: "Solar Lamps"},
	{Amount: 2500, Count: 10, Unit: "Water Filters"},
	{Amount: 5000, Count: 25, Unit: "Meal Packs"},
	{Amount: 10000, Count: 50, Unit: "Tree Saplings"},
}

// MatchImpactTier returns the highest tier not above amount, or the lowest
// tier when amount is below all of them.
func MatchImpactTier(amount int64) ImpactTier {
	match := ImpactTiers[0]
	for _, t := range ImpactTiers {
		if t.Amount <= amount {
			match = t
		}
	}
	return match
}

// ImpactText renders the impact equivalent of a donation, scaling the matched
// tier linearly by amount/tier.Amount and rounding half up.
func ImpactText(amount int64) string {
	tier := MatchImpactTier(amount)
	count := decimal.NewFromInt(tier.Count).
		Mul(decimal.NewFromInt(amount)).
		Div(decimal.NewFromInt(tier.Amount)).
		Round(0)
	return fmt.Sprintf("%s %s", count.String(), tier.Unit)
}
