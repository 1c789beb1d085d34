package collector

import (
	"context"
	"time"

	"PriceScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Prices is keyed by country code; a missing entry produces a FetchError.
// Delay simulates storefront latency.
type MockFetcher struct {
	ForPlatform model.Platform
	Prices      map[string]float64
	Confidence  model.EditionConfidence
	Delay       time.Duration
}

func (m *MockFetcher) Platform() model.Platform { return m.ForPlatform }
func (m *MockFetcher) Name() string             { return "mock" }

func (m *MockFetcher) Fetch(ctx context.Context, mk model.Market, _ string) (model.RawObservation, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return model.RawObservation{}, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	price, ok := m.Prices[mk.Code]
	if !ok {
		return model.RawObservation{}, &FetchError{Platform: m.ForPlatform, Market: mk.Code, Reason: "no mock price"}
	}
	confidence := m.Confidence
	if confidence == "" {
		confidence = model.EditionExact
	}
	return model.RawObservation{
		Market:     mk,
		Platform:   m.ForPlatform,
		LocalPrice: price,
		Currency:   mk.Currency,
		Confidence: confidence,
		ObservedAt: time.Now(),
	}, nil
}
