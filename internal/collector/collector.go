package collector

import (
	"context"
	"log"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"PriceScope/internal/market"
	"PriceScope/internal/model"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Collector fans out price collection across every requested
// (title, market, platform) triple. Collection is the only latency-bound
// stage, so it is the only concurrent one; everything downstream waits for
// the full result set.
type Collector struct {
	fetchers   map[model.Platform]Fetcher
	registries map[model.Platform]*market.Registry

	Concurrency int
	TaskTimeout time.Duration
	MaxRetries  int
}

// New creates a Collector over the given fetchers and their per-platform
// registries.
func New(fetchers []Fetcher, registries map[model.Platform]*market.Registry) *Collector {
	byPlatform := make(map[model.Platform]Fetcher, len(fetchers))
	for _, f := range fetchers {
		byPlatform[f.Platform()] = f
	}
	return &Collector{
		fetchers:    byPlatform,
		registries:  registries,
		Concurrency: 20,
		TaskTimeout: 45 * time.Second,
		MaxRetries:  3,
	}
}

// Collect gathers one observation per (title, market, platform) triple.
// markets restricts collection to the given country codes; empty means every
// market in each platform's registry. A failed or timed-out task yields an
// observation with Err set rather than a missing row, and never blocks the
// others. Cancelling ctx stops in-flight tasks.
func (c *Collector) Collect(ctx context.Context, titles []model.Title, markets []string) []model.RawObservation {
	type task struct {
		title    model.Title
		platform model.Platform
		ref      string
		code     string
	}

	var tasks []task
	for _, title := range titles {
		for platform, reg := range c.registries {
			ref, ok := title.Ref(platform)
			if !ok {
				continue
			}
			codes := markets
			if len(codes) == 0 {
				codes = reg.Codes()
			}
			for _, code := range codes {
				tasks = append(tasks, task{title: title, platform: platform, ref: ref, code: code})
			}
		}
	}
	log.Printf("[INFO] collecting %d price observations", len(tasks))

	// Each task writes to its own slot, so no lock is needed.
	results := make([]model.RawObservation, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, tk := range tasks {
		g.Go(func() error {
			results[i] = c.collectOne(gctx, tk.title, tk.platform, tk.ref, tk.code)
			return nil
		})
	}
	g.Wait()

	return results
}

// collectOne resolves the market and fetches with retry. All failures are
// contained in the returned observation's Err field.
func (c *Collector) collectOne(ctx context.Context, title model.Title, platform model.Platform, ref, code string) model.RawObservation {
	obs := model.RawObservation{
		Title:    title.Name,
		Platform: platform,
		Market:   model.Market{Code: code},
	}

	m, err := c.registries[platform].Lookup(code)
	if err != nil {
		obs.Err = err
		return obs
	}
	obs.Market = m

	fetcher, ok := c.fetchers[platform]
	if !ok {
		obs.Err = &FetchError{Platform: platform, Market: code, Reason: "no fetcher configured"}
		return obs
	}

	taskCtx, cancel := context.WithTimeout(ctx, c.TaskTimeout)
	defer cancel()

	fetched, err := c.fetchWithRetry(taskCtx, fetcher, m, ref)
	if err != nil {
		log.Printf("[WARN] %s %s/%s %q: %v", fetcher.Name(), platform, code, title.Name, err)
		obs.Err = err
		return obs
	}
	fetched.Title = title.Name
	return fetched
}

// fetchWithRetry retries transient failures with exponential backoff and
// jitter, inside the task's timeout budget.
func (c *Collector) fetchWithRetry(ctx context.Context, f Fetcher, m model.Market, ref string) (model.RawObservation, error) {
	delay := time.Second
	var lastErr error
	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		if attempt > 0 {
			jittered := delay + time.Duration(rand.Int63n(int64(time.Second)))
			select {
			case <-ctx.Done():
				return model.RawObservation{}, ctx.Err()
			case <-time.After(jittered):
			}
			delay *= 2
		}
		obs, err := f.Fetch(ctx, m, ref)
		if err == nil {
			return obs, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return model.RawObservation{}, ctx.Err()
		}
	}
	return model.RawObservation{}, lastErr
}
