package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"PriceScope/internal/model"
	"PriceScope/internal/pricing"
)

// Duration wraps time.Duration for YAML fields like "24h" or "45s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// TitleConfig is one game in the competitive set.
type TitleConfig struct {
	Name        string            `yaml:"name"`
	Tier        string            `yaml:"tier"`
	BaselineUSD float64           `yaml:"baseline_usd"`
	Scale       float64           `yaml:"scale"`
	Weight      float64           `yaml:"weight"`
	Refs        map[string]string `yaml:"refs"`
}

// Config holds all application configuration.
type Config struct {
	BaselineMarket string  `yaml:"baseline_market"`
	VarianceBand   float64 `yaml:"variance_band_pct"`

	FX struct {
		SourceURL string   `yaml:"source_url"`
		RatesFile string   `yaml:"rates_file"`
		MaxAge    Duration `yaml:"max_age"`
	} `yaml:"fx"`

	Collection struct {
		Concurrency int      `yaml:"concurrency"`
		TaskTimeout Duration `yaml:"task_timeout"`
		MaxRetries  int      `yaml:"max_retries"`
		Markets     []string `yaml:"markets"`
	} `yaml:"collection"`

	// Per-platform market override CSVs. A set path fully replaces that
	// platform's built-in registry.
	Overrides map[string]string `yaml:"overrides"`

	Vanity pricing.VanityTable `yaml:"vanity"`

	Titles []TitleConfig `yaml:"titles"`

	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("BASELINE_MARKET"); v != "" {
		cfg.BaselineMarket = v
	}
	if v := os.Getenv("FX_SOURCE_URL"); v != "" {
		cfg.FX.SourceURL = v
	}
	if v := os.Getenv("FX_RATES_FILE"); v != "" {
		cfg.FX.RatesFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.BaselineMarket == "" {
		cfg.BaselineMarket = "US"
	}
	if cfg.VarianceBand == 0 {
		cfg.VarianceBand = 40
	}
	if cfg.FX.SourceURL == "" {
		cfg.FX.SourceURL = "https://api.exchangerate.host/latest"
	}
	if cfg.FX.MaxAge == 0 {
		cfg.FX.MaxAge = Duration(24 * time.Hour)
	}
	if cfg.Collection.Concurrency == 0 {
		cfg.Collection.Concurrency = 20
	}
	if cfg.Collection.TaskTimeout == 0 {
		cfg.Collection.TaskTimeout = Duration(45 * time.Second)
	}
	if cfg.Collection.MaxRetries == 0 {
		cfg.Collection.MaxRetries = 3
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "out"
	}
	if len(cfg.Vanity.ByMarket) == 0 && len(cfg.Vanity.ByCurrency) == 0 {
		cfg.Vanity = pricing.DefaultVanity()
	}

	return cfg, nil
}

// Validate checks the whole config before any fetching starts. Bad input
// data fails the run here rather than surfacing as runtime flags.
func (c *Config) Validate() error {
	if len(c.Titles) == 0 {
		return fmt.Errorf("titles: at least one title is required")
	}
	if c.VarianceBand < 0 {
		return fmt.Errorf("variance_band_pct must not be negative")
	}
	if c.Collection.Concurrency < 1 {
		return fmt.Errorf("collection.concurrency must be >= 1")
	}
	if c.Collection.MaxRetries < 1 {
		return fmt.Errorf("collection.max_retries must be >= 1")
	}

	seen := map[string]bool{}
	weightByPlatform := map[model.Platform]float64{}
	for i, t := range c.Titles {
		if t.Name == "" {
			return fmt.Errorf("titles[%d]: name is required", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("titles: duplicate title %q", t.Name)
		}
		seen[t.Name] = true
		if t.Scale <= 0 {
			return fmt.Errorf("title %q: scale must be positive, got %v", t.Name, t.Scale)
		}
		if t.Weight < 0 {
			return fmt.Errorf("title %q: weight must not be negative", t.Name)
		}
		if len(t.Refs) == 0 {
			return fmt.Errorf("title %q: at least one platform ref is required", t.Name)
		}
		for platform, ref := range t.Refs {
			p := model.Platform(platform)
			if !validPlatform(p) {
				return fmt.Errorf("title %q: unknown platform %q", t.Name, platform)
			}
			if ref == "" {
				return fmt.Errorf("title %q: empty ref for platform %q", t.Name, platform)
			}
			weightByPlatform[p] += t.Weight
		}
	}

	// Weights steer the aggregate recommendation; a basket that doesn't sum
	// to 100% per platform would silently skew it.
	for p, sum := range weightByPlatform {
		if math.Abs(sum-100) > 0.1 {
			return fmt.Errorf("%s: title weights sum to %.2f, must sum to 100", p, sum)
		}
	}

	for platform := range c.Overrides {
		if !validPlatform(model.Platform(platform)) {
			return fmt.Errorf("overrides: unknown platform %q", platform)
		}
	}
	return nil
}

// ModelTitles converts the configured competitive set to domain titles.
func (c *Config) ModelTitles() []model.Title {
	titles := make([]model.Title, 0, len(c.Titles))
	for _, t := range c.Titles {
		refs := make(map[model.Platform]string, len(t.Refs))
		for platform, ref := range t.Refs {
			refs[model.Platform(platform)] = ref
		}
		titles = append(titles, model.Title{
			Name:        t.Name,
			Tier:        model.Tier(t.Tier),
			BaselineUSD: t.BaselineUSD,
			Scale:       t.Scale,
			Weight:      t.Weight,
			Refs:        refs,
		})
	}
	return titles
}

func validPlatform(p model.Platform) bool {
	for _, known := range model.Platforms {
		if p == known {
			return true
		}
	}
	return false
}
