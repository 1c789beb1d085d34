package market

import (
	"fmt"
	"sort"

	"PriceScope/internal/model"
)

// NotFoundError reports a lookup miss for a country code within one
// platform's registry.
type NotFoundError struct {
	Platform model.Platform
	Code     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("market %q not found in %s registry", e.Code, e.Platform)
}

// Registry is an immutable country-code lookup table for a single platform.
// Each platform gets its own Registry instance; there is deliberately no
// shared table with a platform column, so data can never leak across silos.
type Registry struct {
	platform model.Platform
	markets  map[string]model.Market
	codes    []string
}

// New builds a Registry from rows, validating every entry. Duplicate country
// codes and empty code/locale/currency fields fail the load with an error
// naming the offending row.
func New(platform model.Platform, rows []model.Market) (*Registry, error) {
	markets := make(map[string]model.Market, len(rows))
	codes := make([]string, 0, len(rows))
	for i, m := range rows {
		if m.Code == "" {
			return nil, fmt.Errorf("%s registry row %d: empty country code", platform, i)
		}
		if m.Locale == "" {
			return nil, fmt.Errorf("%s registry row %q: empty locale", platform, m.Code)
		}
		if m.Currency == "" {
			return nil, fmt.Errorf("%s registry row %q: empty currency", platform, m.Code)
		}
		if _, dup := markets[m.Code]; dup {
			return nil, fmt.Errorf("%s registry: duplicate country code %q", platform, m.Code)
		}
		if m.Name == "" {
			m.Name = m.Code
		}
		markets[m.Code] = m
		codes = append(codes, m.Code)
	}
	sort.Strings(codes)
	return &Registry{platform: platform, markets: markets, codes: codes}, nil
}

// Platform returns the platform this registry belongs to.
func (r *Registry) Platform() model.Platform { return r.platform }

// Lookup returns the market for a country code, or a *NotFoundError.
func (r *Registry) Lookup(code string) (model.Market, error) {
	m, ok := r.markets[code]
	if !ok {
		return model.Market{}, &NotFoundError{Platform: r.platform, Code: code}
	}
	return m, nil
}

// Codes returns all country codes in sorted order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Len returns the number of markets in the registry.
func (r *Registry) Len() int { return len(r.markets) }
