package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"PriceScope/internal/model"
)

// LoadOverrideCSV builds a registry for a platform from an override file,
// fully replacing the built-in table. Columns: country,locale,currency,name
// (header required, order free). A partial or merged registry is never
// produced: any bad row fails the whole load.
func LoadOverrideCSV(platform model.Platform, path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s override: %w", platform, err)
	}
	defer f.Close()
	reg, err := ReadOverride(platform, f)
	if err != nil {
		return nil, fmt.Errorf("%s override %s: %w", platform, path, err)
	}
	return reg, nil
}

// ReadOverride parses override CSV data into a registry.
func ReadOverride(platform model.Platform, r io.Reader) (*Registry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"country", "locale", "currency"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []model.Market
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, model.Market{
			Code:     strings.ToUpper(field(rec, "country")),
			Locale:   field(rec, "locale"),
			Currency: strings.ToUpper(field(rec, "currency")),
			Name:     field(rec, "name"),
		})
	}
	return New(platform, rows)
}
