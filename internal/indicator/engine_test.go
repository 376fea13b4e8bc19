package indicator

import (
	"math"
	"testing"
	"time"

	"nifty-advisor/internal/domain"
)

func makeSeries(closes ...float64) domain.PriceSeries {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(domain.PriceSeries, 0, len(closes))
	for i, c := range closes {
		series = append(series, domain.PriceBar{
			Date:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		})
	}
	return series
}

func TestComputeAlignsOneSnapshotPerBar(t *testing.T) {
	series := makeSeries(10, 11, 12, 13, 14)
	snaps := Compute(series)
	if len(snaps) != len(series) {
		t.Fatalf("expected %d snapshots, got %d", len(series), len(snaps))
	}
}

func TestSMAWarmupWindowOfOne(t *testing.T) {
	snaps := Compute(makeSeries(42, 44, 46))
	if snaps[0].SMA20 != 42 {
		t.Fatalf("expected SMA20[0] == Close[0], got %f", snaps[0].SMA20)
	}
	if snaps[1].SMA20 != 43 {
		t.Fatalf("expected SMA20[1] == 43, got %f", snaps[1].SMA20)
	}
	if snaps[2].SMA50 != 44 {
		t.Fatalf("expected SMA50[2] == 44, got %f", snaps[2].SMA50)
	}
}

func TestRSIUndefinedAtFirstBar(t *testing.T) {
	snaps := Compute(makeSeries(10, 12))
	if !math.IsNaN(snaps[0].RSI) {
		t.Fatalf("expected RSI[0] NaN, got %f", snaps[0].RSI)
	}
	if math.IsNaN(snaps[1].RSI) {
		t.Fatal("expected RSI[1] to be defined")
	}
}

func TestRSIUndefinedWhenLossIsZero(t *testing.T) {
	// Flat series: every delta is zero, so both gain and loss means are
	// zero and RS is 0/0, not infinity.
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100
	}
	snaps := Compute(makeSeries(closes...))
	for i := 1; i < len(snaps); i++ {
		if !math.IsNaN(snaps[i].RSI) {
			t.Fatalf("expected RSI NaN at bar %d for flat series, got %f", i, snaps[i].RSI)
		}
	}

	// Strictly rising series: loss mean is zero as well.
	snaps = Compute(makeSeries(10, 11, 12, 13))
	if !math.IsNaN(snaps[3].RSI) {
		t.Fatalf("expected RSI NaN when loss is zero, got %f", snaps[3].RSI)
	}
}

func TestRSIBalancedMoves(t *testing.T) {
	// Alternating +2/-2 gives equal gain and loss means, so RS=1 and RSI=50.
	snaps := Compute(makeSeries(100, 102, 100, 102, 100))
	got := snaps[len(snaps)-1].RSI
	if math.Abs(got-50) > 1e-9 {
		t.Fatalf("expected RSI 50, got %f", got)
	}
}

func TestBollingerBandsFlatSeries(t *testing.T) {
	snaps := Compute(makeSeries(100, 100, 100, 100))
	last := snaps[len(snaps)-1]
	if last.BBMiddle != 100 || last.BBUpper != 100 || last.BBLower != 100 {
		t.Fatalf("expected degenerate bands at 100, got %+v", last)
	}
}

func TestBollingerBandsWiden(t *testing.T) {
	snaps := Compute(makeSeries(90, 110))
	last := snaps[1]
	if last.BBMiddle != 100 {
		t.Fatalf("expected middle 100, got %f", last.BBMiddle)
	}
	// Sample std of {90,110} is sqrt(200) ~= 14.142, so the bands sit at
	// middle +/- 28.284, matching a pandas rolling .std() of the window.
	width := 2 * math.Sqrt(200)
	if math.Abs(last.BBUpper-(100+width)) > 1e-9 || math.Abs(last.BBLower-(100-width)) > 1e-9 {
		t.Fatalf("unexpected bands: %+v", last)
	}
	if math.Abs(last.BBUpper-128.2842712474619) > 1e-9 {
		t.Fatalf("expected upper band 128.284271, got %f", last.BBUpper)
	}
}

func TestBollingerBandsFullWindowSampleStd(t *testing.T) {
	// 20 bars of 100 then 110 alternating: mean 105, sample variance
	// 25*20/19, so the 2-sigma band width is 2*sqrt(500/19).
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
		if i%2 == 1 {
			closes[i] = 110
		}
	}
	snaps := Compute(makeSeries(closes...))
	last := snaps[len(snaps)-1]
	want := 105 + 2*math.Sqrt(500.0/19.0)
	if math.Abs(last.BBUpper-want) > 1e-9 {
		t.Fatalf("expected upper band %f, got %f", want, last.BBUpper)
	}
}

func TestComputeEmptySeries(t *testing.T) {
	if snaps := Compute(nil); len(snaps) != 0 {
		t.Fatalf("expected no snapshots, got %d", len(snaps))
	}
}
