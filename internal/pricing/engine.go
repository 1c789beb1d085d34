package pricing

import (
	"log"
	"math"
	"sort"
	"time"

	"PriceScope/internal/fx"
	"PriceScope/internal/model"
)

// Params configures one evaluation run.
type Params struct {
	// BaselineMarket is the country code variance is measured against.
	BaselineMarket string
	// VarianceBand is the |pct_diff| threshold (in percent) beyond which a
	// row is flagged for human review.
	VarianceBand float64
	// FXMaxAge flags rates older than this as stale. Zero disables the check.
	FXMaxAge time.Duration
	// Vanity holds the per-market rounding conventions.
	Vanity VanityTable
}

// Engine turns raw observations into the recommendation table: scale, convert
// to USD, measure variance against the baseline market, vanity-round the
// recommended local price, and assemble one row per requested triple.
type Engine struct {
	params Params
}

// NewEngine creates an Engine, applying defaults for unset params.
func NewEngine(p Params) *Engine {
	if p.BaselineMarket == "" {
		p.BaselineMarket = "US"
	}
	if p.VarianceBand == 0 {
		p.VarianceBand = 40
	}
	return &Engine{params: p}
}

// Result is the output of one evaluation run.
type Result struct {
	Rows       []model.RecommendationRow
	Aggregates []model.AggregateRow
}

// Evaluate runs the full normalization pipeline. Every observation produces
// exactly one output row; data problems surface as flags and nil fields,
// never as dropped rows.
func (e *Engine) Evaluate(titles []model.Title, observations []model.RawObservation, table *fx.Table, now time.Time) Result {
	byName := make(map[string]model.Title, len(titles))
	for _, t := range titles {
		byName[t.Name] = t
	}

	normalized := make([]model.NormalizedPrice, len(observations))
	for i, obs := range observations {
		normalized[i] = e.normalize(obs, byName[obs.Title], table, now)
	}

	e.applyVariance(normalized)

	return Result{
		Rows:       e.assembleRows(normalized, table),
		Aggregates: e.assembleAggregates(normalized, byName, table),
	}
}

// normalize scales one observation and converts it to USD. The scale factor
// was validated positive at config load, so it is applied unconditionally.
func (e *Engine) normalize(obs model.RawObservation, title model.Title, table *fx.Table, now time.Time) model.NormalizedPrice {
	np := model.NormalizedPrice{
		Title:      obs.Title,
		Market:     obs.Market,
		Platform:   obs.Platform,
		Currency:   obs.Currency,
		Confidence: obs.Confidence,
		Flags:      model.FlagSet{},
	}
	if obs.Err != nil {
		np.Flags.Add(model.FlagFetchFailed)
		return np
	}
	if obs.Confidence == model.EditionAmbiguous {
		np.Flags.Add(model.FlagAmbiguousEdition)
	}

	np.LocalRaw = model.Float64(obs.LocalPrice)
	scale := title.Scale
	if scale == 0 {
		scale = 1
	}
	np.LocalScaled = model.Float64(obs.LocalPrice * scale)

	usd, ok := table.ToUSD(*np.LocalScaled, obs.Currency)
	if !ok {
		// Emitted downstream but excluded from variance: a defaulted zero
		// would read as "matches baseline".
		np.Flags.Add(model.FlagMissingFX)
		return np
	}
	np.USDPrice = model.Float64(round2(usd))
	if table.Stale(obs.Currency, e.params.FXMaxAge, now) {
		np.Flags.Add(model.FlagStaleRate)
	}
	return np
}

// applyVariance computes pct-diff against the baseline market per
// (title, platform) group. A title without a usable baseline gets every row
// flagged instead of a variance computed against a stand-in.
func (e *Engine) applyVariance(normalized []model.NormalizedPrice) {
	type group struct {
		title    string
		platform model.Platform
	}
	baselines := make(map[group]*float64)
	for i := range normalized {
		np := &normalized[i]
		if np.Market.Code == e.params.BaselineMarket && np.USDPrice != nil {
			baselines[group{np.Title, np.Platform}] = np.USDPrice
		}
	}

	for i := range normalized {
		np := &normalized[i]
		baseline, ok := baselines[group{np.Title, np.Platform}]
		if !ok {
			np.Flags.Add(model.FlagBaselineMissing)
			if np.USDPrice != nil {
				log.Printf("[WARN] no usable %s baseline for %q on %s, variance skipped",
					e.params.BaselineMarket, np.Title, np.Platform)
			}
			continue
		}
		np.BaselineUSD = baseline
		if np.USDPrice == nil {
			continue
		}
		var pct float64
		if np.Market.Code == e.params.BaselineMarket {
			pct = 0 // the baseline never diverges from itself
		} else {
			pct = (*np.USDPrice - *baseline) / *baseline * 100
		}
		np.PctDiff = model.Float64(pct)
		if math.Abs(pct) > e.params.VarianceBand {
			np.Flags.Add(model.FlagOutOfBand)
		}
	}
}

// assembleRows produces the final ordered table, one row per observation.
func (e *Engine) assembleRows(normalized []model.NormalizedPrice, table *fx.Table) []model.RecommendationRow {
	rows := make([]model.RecommendationRow, 0, len(normalized))
	for _, np := range normalized {
		row := model.RecommendationRow{
			Title:         np.Title,
			Platform:      np.Platform,
			Market:        np.Market,
			LocalPriceRaw: np.LocalRaw,
			USDPrice:      np.USDPrice,
			PctDiff:       np.PctDiff,
			Flags:         np.Flags,
		}
		if np.USDPrice != nil {
			if local, ok := table.FromUSD(*np.USDPrice, np.Currency); ok {
				row.LocalRecommended = model.Float64(round2(e.params.Vanity.Round(local, np.Market)))
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Title != rows[j].Title {
			return rows[i].Title < rows[j].Title
		}
		if rows[i].Market.Code != rows[j].Market.Code {
			return rows[i].Market.Code < rows[j].Market.Code
		}
		return rows[i].Platform < rows[j].Platform
	})
	return rows
}

// assembleAggregates computes the weighted competitive-set recommendation per
// (platform, market). Only here do title weights matter; a market's own rows
// are never diluted by them.
func (e *Engine) assembleAggregates(normalized []model.NormalizedPrice, titles map[string]model.Title, table *fx.Table) []model.AggregateRow {
	type key struct {
		platform model.Platform
		code     string
	}
	type acc struct {
		market      model.Market
		currency    string
		weightedSum float64
		weightSum   float64
		count       int
	}
	accs := make(map[key]*acc)
	for _, np := range normalized {
		if np.USDPrice == nil {
			continue
		}
		weight := titles[np.Title].Weight
		if weight <= 0 {
			continue
		}
		k := key{np.Platform, np.Market.Code}
		a, ok := accs[k]
		if !ok {
			a = &acc{market: np.Market, currency: np.Currency}
			accs[k] = a
		}
		a.weightedSum += *np.USDPrice * weight
		a.weightSum += weight
		a.count++
	}

	rows := make([]model.AggregateRow, 0, len(accs))
	for k, a := range accs {
		usd := a.weightedSum / a.weightSum
		row := model.AggregateRow{
			Platform:       k.platform,
			Market:         a.market,
			RecommendedUSD: round2(usd),
			TitleCount:     a.count,
		}
		if local, ok := table.FromUSD(usd, a.currency); ok {
			row.RecommendedLoc = model.Float64(round2(e.params.Vanity.Round(local, a.market)))
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Platform != rows[j].Platform {
			return rows[i].Platform < rows[j].Platform
		}
		return rows[i].Market.Code < rows[j].Market.Code
	})
	return rows
}
