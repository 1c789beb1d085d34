package pricing

import (
	"math"
	"testing"

	"PriceScope/internal/model"
)

func TestVanity_EndingRules(t *testing.T) {
	table := DefaultVanity()
	tests := []struct {
		price    float64
		currency string
		want     float64
	}{
		{63.50, "USD", 63.99},
		{64.20, "USD", 63.99},
		{64.79, "USD", 64.99},
		{59.99, "EUR", 59.99}, // already on a valid ending
		{60.01, "EUR", 59.99},
		{100.40, "AUD", 99.95},
		{100.50, "AUD", 100.95},
	}
	for _, tt := range tests {
		m := model.Market{Code: "XX", Currency: tt.currency}
		got := table.Round(tt.price, m)
		if got != tt.want {
			t.Errorf("Round(%v, %s) = %v, want %v", tt.price, tt.currency, got, tt.want)
		}
		// Never more than half a currency unit from the target.
		if math.Abs(got-tt.price) > 0.5+1e-9 {
			t.Errorf("Round(%v, %s) = %v crosses half a unit", tt.price, tt.currency, got)
		}
	}
}

func TestVanity_StepRules(t *testing.T) {
	table := DefaultVanity()
	tests := []struct {
		price    float64
		currency string
		want     float64
	}{
		{8798.6, "JPY", 8799},
		{248001, "IDR", 248000},
		{347.3, "BRL", 345},
		{348.2, "BRL", 350},
	}
	for _, tt := range tests {
		m := model.Market{Code: "XX", Currency: tt.currency}
		if got := table.Round(tt.price, m); got != tt.want {
			t.Errorf("Round(%v, %s) = %v, want %v", tt.price, tt.currency, got, tt.want)
		}
	}
}

func TestVanity_NoRuleIsIdentity(t *testing.T) {
	table := DefaultVanity()
	m := model.Market{Code: "KW", Currency: "KWD"} // no configured convention
	for _, price := range []float64{19.543, 60.0, 0.75} {
		if got := table.Round(price, m); got != price {
			t.Errorf("Round(%v) = %v, want identity for unconfigured market", price, got)
		}
	}
}

func TestVanity_MarketRuleWinsOverCurrency(t *testing.T) {
	table := DefaultVanity()
	table.ByMarket = map[string]VanityRule{"US": {Ending: 0.95}}
	m := model.Market{Code: "US", Currency: "USD"}
	if got := table.Round(64.20, m); got != 63.95 {
		t.Errorf("market-specific rule should win: got %v, want 63.95", got)
	}
}
