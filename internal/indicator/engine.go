// Package indicator derives trailing statistics over a daily price series.
package indicator

import (
	"math"

	"nifty-advisor/internal/domain"
)

const (
	smaShortPeriod  = 20
	smaLongPeriod   = 50
	rsiPeriod       = 14
	bollingerPeriod = 20
	bollingerWidth  = 2.0
)

// Compute returns one snapshot per input bar, aligned to the series.
// Every statistic uses a minimum-one-sample warm-up: the window ending
// at bar i covers min(period, i+1) bars, so short series still produce
// displayable approximations. Unavailable values are NaN, never zero.
func Compute(series domain.PriceSeries) []domain.IndicatorSnapshot {
	closes := series.Closes()
	snaps := make([]domain.IndicatorSnapshot, len(series))

	for i := range series {
		mid, std := meanStd(trailing(closes, i, bollingerPeriod))
		snaps[i] = domain.IndicatorSnapshot{
			SMA20:    mean(trailing(closes, i, smaShortPeriod)),
			SMA50:    mean(trailing(closes, i, smaLongPeriod)),
			RSI:      rsiAt(closes, i),
			BBMiddle: mid,
			BBUpper:  mid + bollingerWidth*std,
			BBLower:  mid - bollingerWidth*std,
		}
	}
	return snaps
}

// trailing returns the window of at most period values ending at index i.
func trailing(values []float64, i, period int) []float64 {
	start := i + 1 - period
	if start < 0 {
		start = 0
	}
	return values[start : i+1]
}

// rsiAt computes the relative-strength index at bar i from trailing
// mean gains and losses over min(rsiPeriod, i) deltas. When the mean
// loss is exactly zero the ratio is undefined and NaN is returned
// rather than 100.
func rsiAt(closes []float64, i int) float64 {
	if i == 0 {
		return math.NaN()
	}
	window := i - rsiPeriod
	if window < 0 {
		window = 0
	}

	var gain, loss float64
	n := 0
	for j := window + 1; j <= i; j++ {
		delta := closes[j] - closes[j-1]
		gain += math.Max(delta, 0)
		loss += math.Max(-delta, 0)
		n++
	}
	avgLoss := loss / float64(n)
	if avgLoss == 0 {
		return math.NaN()
	}
	avgGain := gain / float64(n)
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// meanStd returns the mean and sample standard deviation (n-1) of the
// window, the same flavor pandas rolling .std() uses. A single-bar
// window has no spread and reports 0.
func meanStd(values []float64) (m, std float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	m = mean(values)
	if len(values) == 1 {
		return m, 0
	}
	for _, v := range values {
		d := v - m
		std += d * d
	}
	std = math.Sqrt(std / float64(len(values)-1))
	return m, std
}
