package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"PriceScope/internal/market"
	"PriceScope/internal/model"
)

func testRegistry(t *testing.T, p model.Platform) *market.Registry {
	t.Helper()
	reg, err := market.New(p, []model.Market{
		{Code: "US", Locale: "en-us", Currency: "USD", Name: "United States"},
		{Code: "FR", Locale: "fr-fr", Currency: "EUR", Name: "France"},
		{Code: "JP", Locale: "ja-jp", Currency: "JPY", Name: "Japan"},
	})
	if err != nil {
		t.Fatalf("test registry: %v", err)
	}
	return reg
}

func testTitle() model.Title {
	return model.Title{
		Name:        "Foo",
		Tier:        model.TierAAA,
		BaselineUSD: 69.99,
		Scale:       1.0,
		Weight:      100,
		Refs:        map[model.Platform]string{model.PlatformSteam: "12345"},
	}
}

func TestCollect_OneRowPerTriple(t *testing.T) {
	reg := testRegistry(t, model.PlatformSteam)
	fetcher := &MockFetcher{
		ForPlatform: model.PlatformSteam,
		Prices:      map[string]float64{"US": 69.99, "FR": 59.99, "JP": 8800},
	}
	c := New([]Fetcher{fetcher}, map[model.Platform]*market.Registry{model.PlatformSteam: reg})

	obs := c.Collect(context.Background(), []model.Title{testTitle()}, nil)
	if len(obs) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(obs))
	}
	for _, o := range obs {
		if o.Err != nil {
			t.Errorf("%s: unexpected error %v", o.Market.Code, o.Err)
		}
		if o.Title != "Foo" {
			t.Errorf("observation missing title: %+v", o)
		}
	}
}

func TestCollect_FailureIsContained(t *testing.T) {
	reg := testRegistry(t, model.PlatformSteam)
	// JP is missing from the mock: its fetch fails, others must be complete.
	fetcher := &MockFetcher{
		ForPlatform: model.PlatformSteam,
		Prices:      map[string]float64{"US": 69.99, "FR": 59.99},
	}
	c := New([]Fetcher{fetcher}, map[model.Platform]*market.Registry{model.PlatformSteam: reg})
	c.MaxRetries = 1

	obs := c.Collect(context.Background(), []model.Title{testTitle()}, nil)
	if len(obs) != 3 {
		t.Fatalf("expected 3 observations even with a failure, got %d", len(obs))
	}
	var failed, ok int
	for _, o := range obs {
		if o.Err != nil {
			failed++
			var fe *FetchError
			if !errors.As(o.Err, &fe) {
				t.Errorf("expected *FetchError, got %v", o.Err)
			}
			if o.Market.Code != "JP" {
				t.Errorf("unexpected failed market %s", o.Market.Code)
			}
		} else {
			ok++
		}
	}
	if failed != 1 || ok != 2 {
		t.Errorf("expected 1 failed / 2 ok, got %d / %d", failed, ok)
	}
}

func TestCollect_MarketNotFound(t *testing.T) {
	reg := testRegistry(t, model.PlatformSteam)
	fetcher := &MockFetcher{ForPlatform: model.PlatformSteam, Prices: map[string]float64{"US": 69.99}}
	c := New([]Fetcher{fetcher}, map[model.Platform]*market.Registry{model.PlatformSteam: reg})

	obs := c.Collect(context.Background(), []model.Title{testTitle()}, []string{"US", "ZZ"})
	if len(obs) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs))
	}
	for _, o := range obs {
		if o.Market.Code != "ZZ" {
			continue
		}
		var nf *market.NotFoundError
		if !errors.As(o.Err, &nf) {
			t.Errorf("ZZ: expected *market.NotFoundError, got %v", o.Err)
		}
	}
}

func TestCollect_TimeoutDoesNotBlockOthers(t *testing.T) {
	reg := testRegistry(t, model.PlatformSteam)
	fetcher := &MockFetcher{
		ForPlatform: model.PlatformSteam,
		Prices:      map[string]float64{"US": 69.99, "FR": 59.99, "JP": 8800},
		Delay:       200 * time.Millisecond,
	}
	c := New([]Fetcher{fetcher}, map[model.Platform]*market.Registry{model.PlatformSteam: reg})
	c.TaskTimeout = 20 * time.Millisecond
	c.MaxRetries = 1

	start := time.Now()
	obs := c.Collect(context.Background(), []model.Title{testTitle()}, nil)
	if len(obs) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(obs))
	}
	for _, o := range obs {
		if o.Err == nil {
			t.Errorf("%s: expected timeout error", o.Market.Code)
		}
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("slow tasks blocked the run: %v", elapsed)
	}
}

func TestCollect_Cancellation(t *testing.T) {
	reg := testRegistry(t, model.PlatformSteam)
	fetcher := &MockFetcher{
		ForPlatform: model.PlatformSteam,
		Prices:      map[string]float64{"US": 69.99, "FR": 59.99, "JP": 8800},
		Delay:       5 * time.Second,
	}
	c := New([]Fetcher{fetcher}, map[model.Platform]*market.Registry{model.PlatformSteam: reg})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		c.Collect(ctx, []model.Title{testTitle()}, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cancellation did not propagate to in-flight tasks")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw      string
		currency string
		want     float64
	}{
		{"59.99", "USD", 59.99},
		{"59,99", "EUR", 59.99},
		{"1,234.56", "USD", 1234.56},
		{"1.234", "IDR", 1234},
		{"8800", "JPY", 8800},
		{"5999", "EUR", 59.99}, // bare minor units
		{"€69.99", "EUR", 69.99},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.raw, tt.currency)
		if err != nil {
			t.Errorf("parsePrice(%q, %s): %v", tt.raw, tt.currency, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePrice(%q, %s) = %v, want %v", tt.raw, tt.currency, got, tt.want)
		}
	}
	if _, err := parsePrice("", "USD"); err == nil {
		t.Error("expected error for empty string")
	}
	if _, err := parsePrice("0", "USD"); err == nil {
		t.Error("expected error for zero price")
	}
}

func TestExtractPSPrice(t *testing.T) {
	html := `<script>{"productList":[{"basePrice":"$69.99","discountedPrice":"$49.99","currencyCode":"USD","edition":"Standard Edition"}]}</script>`
	price, currency, confidence, err := extractPSPrice(html, "USD")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if price != 69.99 || currency != "USD" {
		t.Errorf("got %v %s, want 69.99 USD", price, currency)
	}
	if confidence != model.EditionExact {
		t.Errorf("standard edition should be exact, got %s", confidence)
	}

	deluxe := `<script>{"basePrice":"79,99","currencyCode":"EUR","edition":"Deluxe Edition"}</script>`
	price, currency, confidence, err = extractPSPrice(deluxe, "EUR")
	if err != nil {
		t.Fatalf("extract deluxe: %v", err)
	}
	if price != 79.99 || currency != "EUR" {
		t.Errorf("got %v %s, want 79.99 EUR", price, currency)
	}
	if confidence != model.EditionAmbiguous {
		t.Errorf("deluxe edition should be ambiguous, got %s", confidence)
	}

	if _, _, _, err := extractPSPrice("<html>nothing here</html>", "USD"); err == nil {
		t.Error("expected error when no price is present")
	}
}
