package fx

import (
	"fmt"
	"strings"
	"time"

	"PriceScope/internal/model"
)

// Table holds the point-in-time conversion rates for one evaluation run.
// Exactly one rate per currency; USD is always present at 1.0.
type Table struct {
	rates map[string]model.FXRate
}

// NewTable builds a Table from rates. A duplicate currency fails the load;
// a rate must be positive. USD is pinned to 1.0 regardless of input.
func NewTable(rates []model.FXRate, asOf time.Time) (*Table, error) {
	m := make(map[string]model.FXRate, len(rates)+1)
	for _, r := range rates {
		cur := strings.ToUpper(r.Currency)
		if cur == "" {
			return nil, fmt.Errorf("fx table: empty currency code")
		}
		if r.USDPerUnit <= 0 {
			return nil, fmt.Errorf("fx table: non-positive rate for %s", cur)
		}
		if _, dup := m[cur]; dup {
			return nil, fmt.Errorf("fx table: duplicate rate for %s", cur)
		}
		r.Currency = cur
		m[cur] = r
	}
	m["USD"] = model.FXRate{Currency: "USD", USDPerUnit: 1.0, AsOf: asOf}
	return &Table{rates: m}, nil
}

// Rate returns the rate for a currency, if present.
func (t *Table) Rate(currency string) (model.FXRate, bool) {
	r, ok := t.rates[strings.ToUpper(currency)]
	return r, ok
}

// ToUSD converts a local amount to USD. The second return is false when no
// rate exists for the currency.
func (t *Table) ToUSD(local float64, currency string) (float64, bool) {
	r, ok := t.Rate(currency)
	if !ok {
		return 0, false
	}
	return local * r.USDPerUnit, true
}

// FromUSD converts a USD amount back to the local currency.
func (t *Table) FromUSD(usd float64, currency string) (float64, bool) {
	r, ok := t.Rate(currency)
	if !ok {
		return 0, false
	}
	return usd / r.USDPerUnit, true
}

// Stale reports whether the currency's rate is older than maxAge at now.
// An absent rate is not stale, it is missing; callers check Rate first.
func (t *Table) Stale(currency string, maxAge time.Duration, now time.Time) bool {
	r, ok := t.Rate(currency)
	if !ok || maxAge <= 0 {
		return false
	}
	return now.Sub(r.AsOf) > maxAge
}

// Len returns the number of currencies in the table.
func (t *Table) Len() int { return len(t.rates) }
