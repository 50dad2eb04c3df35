package pricing

type tier struct {
	min, max float64
	price    float64
}

// Published price points. Bounds are inclusive on both ends; anything outside
// every tier, including the (12000, 12001] sliver, passes through unchanged.
var tiers = []tier{
	{min: 2500, max: 3000, price: 2800},
	{min: 5300, max: 6000, price: 5600},
	{min: 7700, max: 8900, price: 8400},
	{min: 10600, max: 12000, price: 11200},
}

// Snap replaces an amount falling inside a published tier with that tier's
// price.
func Snap(amount float64) float64 {
	for _, t := range tiers {
		if amount >= t.min && amount <= t.max {
			return t.price
		}
	}
	return amount
}
