package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"PriceScope/internal/model"
)

// WriteRows writes the recommendation table as a flat CSV. Unknown values
// render as empty cells, never as zeroes.
func WriteRows(w io.Writer, rows []model.RecommendationRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"title", "platform", "country", "market", "currency",
		"local_price_raw", "local_price_recommended", "usd_price",
		"pct_diff_vs_baseline", "flags",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Title,
			string(r.Platform),
			r.Market.Code,
			r.Market.Name,
			r.Market.Currency,
			formatPrice(r.LocalPriceRaw),
			formatPrice(r.LocalRecommended),
			formatPrice(r.USDPrice),
			formatPct(r.PctDiff),
			r.Flags.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s/%s: %w", r.Title, r.Market.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAggregates writes the weighted per-(platform, market) view.
func WriteAggregates(w io.Writer, rows []model.AggregateRow) error {
	cw := csv.NewWriter(w)
	header := []string{"platform", "country", "market", "currency", "recommended_usd", "recommended_local", "title_count"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			string(r.Platform),
			r.Market.Code,
			r.Market.Name,
			r.Market.Currency,
			strconv.FormatFloat(r.RecommendedUSD, 'f', 2, 64),
			formatPrice(r.RecommendedLoc),
			strconv.Itoa(r.TitleCount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s/%s: %w", r.Platform, r.Market.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveRun writes both tables into dir, named by run ID.
func SaveRun(dir, runID string, rows []model.RecommendationRow, aggregates []model.AggregateRow) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := saveCSV(filepath.Join(dir, fmt.Sprintf("recommendations_%s.csv", runID)), func(w io.Writer) error {
		return WriteRows(w, rows)
	}); err != nil {
		return err
	}
	return saveCSV(filepath.Join(dir, fmt.Sprintf("aggregates_%s.csv", runID)), func(w io.Writer) error {
		return WriteAggregates(w, aggregates)
	})
}

func saveCSV(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatPct(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%+.1f%%", *v)
}
