package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"PriceScope/internal/model"
)

const xboxDisplayCatalogURL = "https://displaycatalog.mp.microsoft.com/v7.0/products"

// XboxFetcher pulls MSRP from the Microsoft Store display catalog API.
type XboxFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewXboxFetcher creates an Xbox fetcher with optional proxy support.
func NewXboxFetcher(proxyURL string) *XboxFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &XboxFetcher{
		BaseURL: xboxDisplayCatalogURL,
		Client: &http.Client{
			Timeout:   25 * time.Second,
			Transport: transport,
		},
	}
}

func (f *XboxFetcher) Platform() model.Platform { return model.PlatformXbox }
func (f *XboxFetcher) Name() string             { return "xbox_catalog" }

// The catalog nests list prices several levels deep. encoding/json matches
// field names case-insensitively, which covers both casings the API emits.
type xboxCatalogResponse struct {
	Products []struct {
		DisplaySkuAvailabilities []struct {
			Availabilities []struct {
				OrderManagementData struct {
					Price struct {
						MSRP         float64 `json:"MSRP"`
						ListPrice    float64 `json:"ListPrice"`
						CurrencyCode string  `json:"CurrencyCode"`
					} `json:"Price"`
				} `json:"OrderManagementData"`
			} `json:"Availabilities"`
		} `json:"DisplaySkuAvailabilities"`
	} `json:"Products"`
}

func (f *XboxFetcher) Fetch(ctx context.Context, m model.Market, ref string) (model.RawObservation, error) {
	q := url.Values{}
	q.Set("bigIds", ref)
	q.Set("market", m.Code)
	q.Set("languages", m.Locale)
	q.Set("fieldsTemplate", "Details")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "build request", Err: err}
	}
	req.Header.Set("MS-CV", msCorrelationVector())
	req.Header.Set("Accept", "application/json")

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

	var payload xboxCatalogResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "parse response", Err: err}
	}

	for _, product := range payload.Products {
		for _, sku := range product.DisplaySkuAvailabilities {
			for _, av := range sku.Availabilities {
				price := av.OrderManagementData.Price
				amount := price.MSRP
				if amount <= 0 {
					amount = price.ListPrice
				}
				if amount <= 0 {
					continue
				}
				currency := price.CurrencyCode
				if currency == "" {
					currency = m.Currency
				}
				return model.RawObservation{
					Market:     m,
					Platform:   f.Platform(),
					LocalPrice: amount,
					Currency:   currency,
					Confidence: model.EditionExact,
					ObservedAt: time.Now(),
				}, nil
			}
		}
	}
	return model.RawObservation{}, &FetchError{Platform: f.Platform(), Market: m.Code, Reason: "no price in catalog response"}
}

const msCVAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// msCorrelationVector generates the per-request MS-CV header the catalog
// endpoints expect.
func msCorrelationVector() string {
	b := make([]byte, 24)
	for i := range b {
		b[i] = msCVAlphabet[rand.Intn(len(msCVAlphabet))]
	}
	return string(b)
}
