package model

import (
	"sort"
	"strings"
	"time"
)

// EditionConfidence indicates whether a collected price unambiguously
// corresponds to the standard edition of a title.
type EditionConfidence string

const (
	EditionExact     EditionConfidence = "exact"
	EditionAmbiguous EditionConfidence = "ambiguous"
)

// RawObservation is one storefront price as collected, before any
// normalization. Immutable once recorded. Err is non-nil when the collector
// failed for this (title, market, platform) triple; the row is still carried
// through to the output, flagged rather than dropped.
type RawObservation struct {
	Title      string
	Market     Market
	Platform   Platform
	LocalPrice float64
	Currency   string
	Confidence EditionConfidence
	ObservedAt time.Time
	Err        error
}

// FXRate is a point-in-time conversion rate: one unit of the currency is
// worth USDPerUnit dollars. One rate per currency per evaluation run.
type FXRate struct {
	Currency   string
	USDPerUnit float64
	AsOf       time.Time
}

// Flag marks a data-quality condition on a recommendation row.
type Flag string

const (
	FlagMissingFX        Flag = "missing_fx"
	FlagAmbiguousEdition Flag = "ambiguous_edition"
	FlagStaleRate        Flag = "stale_rate"
	FlagOutOfBand        Flag = "out_of_band_variance"
	FlagBaselineMissing  Flag = "baseline_missing"
	FlagFetchFailed      Flag = "fetch_failed"
)

// FlagSet is a small set of quality flags.
type FlagSet map[Flag]bool

// Add marks a flag.
func (s FlagSet) Add(f Flag) { s[f] = true }

// Has reports whether the flag is set.
func (s FlagSet) Has(f Flag) bool { return s[f] }

// String renders the set as a sorted comma-separated list, empty for no flags.
func (s FlagSet) String() string {
	if len(s) == 0 {
		return ""
	}
	names := make([]string, 0, len(s))
	for f := range s {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// NormalizedPrice is a scaled, USD-converted observation. Derived, never
// mutated after creation. Nil pointer fields mean "unknown", never zero.
type NormalizedPrice struct {
	Title       string
	Market      Market
	Platform    Platform
	Currency    string
	LocalRaw    *float64
	LocalScaled *float64
	USDPrice    *float64
	BaselineUSD *float64
	PctDiff     *float64
	Confidence  EditionConfidence
	Flags       FlagSet
}

// RecommendationRow is the terminal output entity, one per requested
// (title, market, platform) triple.
type RecommendationRow struct {
	Title            string
	Platform         Platform
	Market           Market
	LocalPriceRaw    *float64
	LocalRecommended *float64
	USDPrice         *float64
	PctDiff          *float64
	Flags            FlagSet
}

// AggregateRow is the weighted competitive-set recommendation for one
// (platform, market): the weight-averaged scaled USD price across all titles
// with usable data, converted back to the market's local currency and
// vanity-rounded.
type AggregateRow struct {
	Platform       Platform
	Market         Market
	RecommendedUSD float64
	RecommendedLoc *float64
	TitleCount     int
}

// Float64 returns a pointer to v. Helper for nullable price fields.
func Float64(v float64) *float64 { return &v }
