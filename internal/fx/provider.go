package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"PriceScope/internal/model"
)

// Provider supplies the FX table for an evaluation run. The engine itself
// only ever consumes a Table; where the rates come from is the caller's
// choice.
type Provider interface {
	Rates(ctx context.Context) (*Table, error)
	Name() string
}

// fileSnapshot is the YAML shape of a rates file: usd_per_unit values keyed
// by currency, with one as-of timestamp for the whole snapshot.
type fileSnapshot struct {
	AsOf  time.Time          `yaml:"as_of"`
	Rates map[string]float64 `yaml:"rates"`
}

// FileProvider loads a point-in-time rates snapshot from a YAML file.
type FileProvider struct {
	Path string
}

func (p *FileProvider) Name() string { return "file" }

func (p *FileProvider) Rates(_ context.Context) (*Table, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}
	var snap fileSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse rates file: %w", err)
	}
	rates := make([]model.FXRate, 0, len(snap.Rates))
	for cur, v := range snap.Rates {
		rates = append(rates, model.FXRate{Currency: cur, USDPerUnit: v, AsOf: snap.AsOf})
	}
	return NewTable(rates, snap.AsOf)
}

// HTTPProvider fetches live rates from an exchangerate.host style endpoint
// that returns units-per-USD with base USD; rates are inverted into
// usd-per-unit on load.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPProvider creates an HTTPProvider with optional proxy support.
func NewHTTPProvider(baseURL, proxyURL string) *HTTPProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (p *HTTPProvider) Name() string { return "http" }

func (p *HTTPProvider) Rates(ctx context.Context) (*Table, error) {
	endpoint := fmt.Sprintf("%s?base=USD", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch rates: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rates response: %w", err)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse rates response: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rates response contains no rates")
	}

	now := time.Now()
	rates := make([]model.FXRate, 0, len(payload.Rates))
	for cur, unitsPerUSD := range payload.Rates {
		if unitsPerUSD <= 0 {
			log.Printf("[WARN] skipping non-positive rate for %s", cur)
			continue
		}
		rates = append(rates, model.FXRate{Currency: cur, USDPerUnit: 1 / unitsPerUSD, AsOf: now})
	}
	return NewTable(rates, now)
}
