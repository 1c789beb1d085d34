package market

import (
	"errors"
	"strings"
	"testing"

	"PriceScope/internal/model"
)

func TestNew_DuplicateCode(t *testing.T) {
	rows := []model.Market{
		{Code: "FR", Locale: "fr-fr", Currency: "EUR", Name: "France"},
		{Code: "DE", Locale: "de-de", Currency: "EUR", Name: "Germany"},
		{Code: "FR", Locale: "fr-fr", Currency: "EUR", Name: "France again"},
	}
	_, err := New(model.PlatformSteam, rows)
	if err == nil {
		t.Fatal("expected error for duplicate country code")
	}
	if !strings.Contains(err.Error(), `"FR"`) {
		t.Errorf("error should name the duplicate code, got: %v", err)
	}
}

func TestNew_EmptyFields(t *testing.T) {
	tests := []struct {
		name string
		row  model.Market
		want string
	}{
		{"empty code", model.Market{Locale: "en-us", Currency: "USD"}, "country code"},
		{"empty locale", model.Market{Code: "US", Currency: "USD"}, "locale"},
		{"empty currency", model.Market{Code: "US", Locale: "en-us"}, "currency"},
	}
	for _, tt := range tests {
		_, err := New(model.PlatformXbox, []model.Market{tt.row})
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q should mention %q", tt.name, err, tt.want)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	reg, err := Builtin(model.PlatformPlayStation)
	if err != nil {
		t.Fatalf("built-in registry: %v", err)
	}
	_, err = reg.Lookup("XX")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.Code != "XX" || nf.Platform != model.PlatformPlayStation {
		t.Errorf("unexpected error fields: %+v", nf)
	}
}

func TestBuiltin_AllPlatformsValid(t *testing.T) {
	for _, p := range model.Platforms {
		reg, err := Builtin(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if reg.Len() == 0 {
			t.Errorf("%s: empty built-in registry", p)
		}
		us, err := reg.Lookup("US")
		if err != nil {
			t.Fatalf("%s: US lookup: %v", p, err)
		}
		if us.Currency != "USD" {
			t.Errorf("%s: US currency = %s", p, us.Currency)
		}
	}
}

func TestReadOverride_FullReplace(t *testing.T) {
	csvData := "country,locale,currency,name\nfr,fr-fr,EUR,France\nus,en-us,USD,United States\n"
	reg, err := ReadOverride(model.PlatformSteam, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("read override: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 markets (built-ins replaced, not merged), got %d", reg.Len())
	}
	m, err := reg.Lookup("FR")
	if err != nil {
		t.Fatalf("FR lookup: %v", err)
	}
	if m.Currency != "EUR" || m.Locale != "fr-fr" {
		t.Errorf("unexpected FR market: %+v", m)
	}
	// DE exists in the built-in table but must not survive an override.
	if _, err := reg.Lookup("DE"); err == nil {
		t.Error("expected DE to be absent after full replace")
	}
}

func TestReadOverride_DuplicateFails(t *testing.T) {
	csvData := "country,locale,currency,name\nFR,fr-fr,EUR,France\nFR,fr-fr,EUR,France\n"
	_, err := ReadOverride(model.PlatformSteam, strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected duplicate FR to fail the load")
	}
	if !strings.Contains(err.Error(), `"FR"`) {
		t.Errorf("error should identify FR, got: %v", err)
	}
}

func TestReadOverride_MissingColumn(t *testing.T) {
	csvData := "country,name\nFR,France\n"
	_, err := ReadOverride(model.PlatformSteam, strings.NewReader(csvData))
	if err == nil || !strings.Contains(err.Error(), "locale") {
		t.Fatalf("expected missing-column error naming locale, got: %v", err)
	}
}
