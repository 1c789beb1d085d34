package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"PriceScope/internal/model"
)

const steamAppDetailsURL = "https://store.steampowered.com/api/appdetails"

// SteamFetcher pulls prices from the Steam appdetails API. Steam keys its
// markets by bare country code, so the market locale is the lowercased code.
type SteamFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewSteamFetcher creates a Steam fetcher with optional proxy support.
func NewSteamFetcher(proxyURL string) *SteamFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &SteamFetcher{
		BaseURL: steamAppDetailsURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *SteamFetcher) Platform() model.Platform { return model.PlatformSteam }
func (f *SteamFetcher) Name() string             { return "steam_api" }

// steamPriceOverview is the relevant slice of the appdetails response.
// Prices come back in minor units; "initial" is the pre-discount list price.
type steamPriceOverview struct {
	Currency string `json:"currency"`
	Initial  int64  `json:"initial"`
	Final    int64  `json:"final"`
}

func (f *SteamFetcher) Fetch(ctx context.Context, m model.Market, ref string) (model.RawObservation, error) {
	endpoint := fmt.Sprintf("%s?appids=%s&cc=%s&l=en", f.BaseURL, url.QueryEscape(ref), url.QueryEscape(m.Locale))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "build request", Err: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

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

	var payload map[string]struct {
		Success bool `json:"success"`
		Data    struct {
			PriceOverview steamPriceOverview `json:"price_overview"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "parse response", Err: err}
	}
	entry, ok := payload[ref]
	if !ok || !entry.Success {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "app not available"}
	}

	po := entry.Data.PriceOverview
	cents := po.Initial
	if cents <= 0 {
		cents = po.Final
	}
	if cents <= 0 {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "no price in response"}
	}
	currency := po.Currency
	if currency == "" {
		currency = m.Currency
	}

	return model.RawObservation{
		Market:     m,
		Platform:   f.Platform(),
		LocalPrice: float64(cents) / 100.0,
		Currency:   currency,
		Confidence: model.EditionExact,
		ObservedAt: time.Now(),
	}, nil
}
