package pricing

import (
	"math"

	"PriceScope/internal/model"
)

// VanityRule describes one market's psychological-pricing convention.
// Exactly one of Ending/Step is used: Ending forces the price to the nearest
// whole-unit-plus-suffix value (e.g. 0.99 → xx.99), Step rounds to the
// nearest multiple (for zero-decimal and coarse-grained currencies).
type VanityRule struct {
	Ending float64 `yaml:"ending"`
	Step   float64 `yaml:"step"`
}

// VanityTable maps markets to rounding conventions. Market-code rules win
// over currency rules; a market with neither gets the identity function,
// never a guessed convention.
type VanityTable struct {
	ByMarket   map[string]VanityRule `yaml:"by_market"`
	ByCurrency map[string]VanityRule `yaml:"by_currency"`
}

// DefaultVanity returns the built-in currency conventions.
func DefaultVanity() VanityTable {
	byCurrency := map[string]VanityRule{}
	for _, c := range []string{"USD", "EUR", "GBP", "CAD", "SEK", "NOK", "DKK", "CZK", "PLN", "CHF"} {
		byCurrency[c] = VanityRule{Ending: 0.99}
	}
	for _, c := range []string{"AUD", "NZD"} {
		byCurrency[c] = VanityRule{Ending: 0.95}
	}
	for _, c := range []string{"JPY", "KRW", "HUF", "ISK", "CLP"} {
		byCurrency[c] = VanityRule{Step: 1}
	}
	for _, c := range []string{"IDR", "VND"} {
		byCurrency[c] = VanityRule{Step: 100}
	}
	for _, c := range []string{"BRL", "RUB", "INR"} {
		byCurrency[c] = VanityRule{Step: 5}
	}
	return VanityTable{ByCurrency: byCurrency}
}

// Round applies the market's vanity convention to a target price. Without a
// configured rule the value passes through unrounded.
func (t VanityTable) Round(price float64, m model.Market) float64 {
	if rule, ok := t.ByMarket[m.Code]; ok {
		return rule.apply(price)
	}
	if rule, ok := t.ByCurrency[m.Currency]; ok {
		return rule.apply(price)
	}
	return price
}

func (r VanityRule) apply(price float64) float64 {
	switch {
	case r.Step > 0:
		return math.Round(price/r.Step) * r.Step
	case r.Ending > 0:
		return nearestEnding(price, r.Ending)
	default:
		return price
	}
}

// nearestEnding snaps to the closest whole-unit-plus-suffix value. Candidates
// sit one unit apart, so the chosen value is never more than half a unit from
// the target; ties round up.
func nearestEnding(price, ending float64) float64 {
	base := math.Floor(price)
	best := base + ending
	for _, cand := range []float64{base - 1 + ending, base + ending, base + 1 + ending} {
		if cand <= 0 {
			continue
		}
		dc, db := math.Abs(cand-price), math.Abs(best-price)
		if dc < db || (dc == db && cand > best) {
			best = cand
		}
	}
	return round2(best)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
