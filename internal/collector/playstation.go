package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"PriceScope/internal/model"
)

const psStoreBaseURL = "https://store.playstation.com"

// PlayStationFetcher scrapes the localized store page for a product. The
// page embeds pricing JSON; basePrice is the list price before discounts
// and is the only price type used. Pages resolve standard and cross-gen
// editions reliably; bundle and deluxe pages are marked ambiguous instead
// of being trusted.
type PlayStationFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewPlayStationFetcher creates a PlayStation fetcher with optional proxy support.
func NewPlayStationFetcher(proxyURL string) *PlayStationFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PlayStationFetcher{
		BaseURL: psStoreBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *PlayStationFetcher) Platform() model.Platform { return model.PlatformPlayStation }
func (f *PlayStationFetcher) Name() string             { return "ps_store_page" }

var (
	psBasePriceRe  = regexp.MustCompile(`(?i)basePrice["\s:]+["$€£¥₹R\s]*([\d,.]+)`)
	psDiscPriceRe  = regexp.MustCompile(`(?i)discountedPrice["\s:]+["$€£¥₹R\s]*([\d,.]+)`)
	psCurrencyRe   = regexp.MustCompile(`(?i)currencyCode["\s:]+["']*([A-Z]{3})`)
	psEditionRe    = regexp.MustCompile(`(?i)"(?:edition|badge)"\s*:\s*"([^"]*)"`)
	ambiguousWords = []string{"deluxe", "ultimate", "bundle", "collection"}
)

func (f *PlayStationFetcher) Fetch(ctx context.Context, m model.Market, ref string) (model.RawObservation, error) {
	endpoint := fmt.Sprintf("%s/%s/product/%s", f.BaseURL, m.Locale, url.PathEscape(ref))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "build request", Err: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if lang, _, ok := strings.Cut(m.Locale, "-"); ok {
		req.Header.Set("Accept-Language", fmt.Sprintf("%s,%s;q=0.8", m.Locale, lang))
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "request", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "read body", Err: err}
	}

	price, currency, confidence, err := extractPSPrice(string(body), m.Currency)
	if err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "no price on page", Err: err}
	}

	return model.RawObservation{
		Market:     m,
		Platform:   f.Platform(),
		LocalPrice: price,
		Currency:   currency,
		Confidence: confidence,
		ObservedAt: time.Now(),
	}, nil
}

// extractPSPrice hunts the page for the embedded pricing JSON. basePrice
// wins over discountedPrice; the currency parsed from the page wins over
// the registry's static currency.
func extractPSPrice(html, fallbackCurrency string) (float64, string, model.EditionConfidence, error) {
	currency := fallbackCurrency
	if cm := psCurrencyRe.FindStringSubmatch(html); cm != nil {
		currency = cm[1]
	}

	confidence := model.EditionExact
	if em := psEditionRe.FindStringSubmatch(html); em != nil {
		label := strings.ToLower(em[1])
		for _, w := range ambiguousWords {
			if strings.Contains(label, w) {
				confidence = model.EditionAmbiguous
				break
			}
		}
	}

	if bm := psBasePriceRe.FindStringSubmatch(html); bm != nil {
		if price, err := parsePrice(bm[1], currency); err == nil {
			return price, currency, confidence, nil
		}
	}
	if dm := psDiscPriceRe.FindStringSubmatch(html); dm != nil {
		if price, err := parsePrice(dm[1], currency); err == nil {
			// Only a sale price was visible; the standard-edition MSRP is
			// not certain.
			return price, currency, model.EditionAmbiguous, nil
		}
	}
	return 0, "", model.EditionAmbiguous, fmt.Errorf("no basePrice or discountedPrice found")
}
