package domain

import (
	"testing"
	"time"
)

func TestExchangeQualify(t *testing.T) {
	if got := ExchangeNSE.Qualify("RELIANCE"); got != "RELIANCE.NS" {
		t.Fatalf("expected RELIANCE.NS, got %s", got)
	}
	if got := ExchangeBSE.Qualify("TCS"); got != "TCS.BO" {
		t.Fatalf("expected TCS.BO, got %s", got)
	}
	if got := Exchange("LSE").Qualify("VOD"); got != "VOD" {
		t.Fatalf("expected unknown exchange to pass symbol through, got %s", got)
	}
}

func TestFallbackOrder(t *testing.T) {
	if len(FallbackOrder) != 2 || FallbackOrder[0] != ExchangeNSE || FallbackOrder[1] != ExchangeBSE {
		t.Fatalf("expected NSE then BSE, got %v", FallbackOrder)
	}
}

func TestPriceSeriesAccessors(t *testing.T) {
	s := PriceSeries{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Close: 10},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Close: 11},
	}
	if s.Latest().Close != 11 {
		t.Fatalf("expected latest close 11, got %f", s.Latest().Close)
	}
	closes := s.Closes()
	if len(closes) != 2 || closes[0] != 10 || closes[1] != 11 {
		t.Fatalf("unexpected closes: %v", closes)
	}
}

func TestScreenFiltersAllows(t *testing.T) {
	f := ScreenFilters{MinMarketCap: 1e9, MaxPE: 30, MinVolume: 1000}

	if !f.Allows(2e9, 20, 5000, "") {
		t.Fatal("expected candidate within all bounds to pass")
	}
	if f.Allows(5e8, 20, 5000, "") {
		t.Fatal("expected low market cap to be rejected")
	}
	if f.Allows(2e9, 45, 5000, "") {
		t.Fatal("expected high P/E to be rejected")
	}
	if f.Allows(2e9, 20, 10, "") {
		t.Fatal("expected low volume to be rejected")
	}
	// Unknown fundamentals (zero) leave those filters inert.
	if !f.Allows(0, 0, 5000, "") {
		t.Fatal("expected unknown fundamentals to pass")
	}
	if (ScreenFilters{}).Allows(0, 0, 0, "") != true {
		t.Fatal("expected empty filters to pass everything")
	}
}

func TestScreenFiltersSectors(t *testing.T) {
	f := ScreenFilters{Sectors: []string{"Energy", "Banking"}}

	if !f.Allows(0, 0, 0, "energy") {
		t.Fatal("expected sector match (case-insensitive) to pass")
	}
	if f.Allows(0, 0, 0, "Pharma") {
		t.Fatal("expected unlisted sector to be rejected")
	}
	// Candidates with no sector data leave the filter inert.
	if !f.Allows(0, 0, 0, "") {
		t.Fatal("expected unknown sector to pass")
	}
}

func TestEmptySeriesIsValid(t *testing.T) {
	var s PriceSeries
	if len(s.Closes()) != 0 {
		t.Fatal("expected no closes for empty series")
	}
}
