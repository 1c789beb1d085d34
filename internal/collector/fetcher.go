package collector

import (
	"context"
	"fmt"

	"PriceScope/internal/model"
)

// Fetcher fetches one raw price observation from a storefront. The fetcher
// is solely responsible for building the localized request from the market;
// callers only supply market + product reference.
type Fetcher interface {
	Fetch(ctx context.Context, m model.Market, ref string) (model.RawObservation, error)
	Platform() model.Platform
	Name() string
}

// FetchError reports a collector failure for one (market, reference) pair.
type FetchError struct {
	Platform model.Platform
	Market   string
	Reason   string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s fetch %s: %s: %v", e.Platform, e.Market, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s fetch %s: %s", e.Platform, e.Market, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }
