// Package score turns the latest indicator snapshot and a user profile
// into a buy/sell recommendation.
package score

import (
	"fmt"
	"math"

	"nifty-advisor/internal/domain"
)

const (
	volumeWindow     = 20
	volumeSpikeRatio = 1.5
	tradingDays      = 252

	lowRiskVolatility    = 20
	mediumRiskVolatility = 40

	riskMismatchPenalty = 30

	strongBuyThreshold = 70
	buyThreshold       = 50
	holdThreshold      = 30
)

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Score evaluates the latest bar of the series. Rules are additive and
// independent except for the RSI pair, which is mutually exclusive. The
// score is not clamped; rating thresholds apply to the raw value.
// Identical inputs always produce identical output.
func (e *Engine) Score(series domain.PriceSeries, snaps []domain.IndicatorSnapshot, profile domain.UserProfile) domain.Recommendation {
	latest := series.Latest()
	snap := snaps[len(snaps)-1]

	total := 0
	reasons := make([]string, 0, 6)

	if available(snap.SMA20) && latest.Close > snap.SMA20 {
		total += 20
		reasons = append(reasons, "Price above 20-day moving average (Bullish)")
	}
	if available(snap.SMA50) && latest.Close > snap.SMA50 {
		total += 15
		reasons = append(reasons, "Price above 50-day moving average (Strong trend)")
	}

	if available(snap.RSI) {
		switch {
		case snap.RSI <= 30:
			total += 25
			reasons = append(reasons, fmt.Sprintf("RSI at %.2f - Oversold (Potential buy)", snap.RSI))
		case snap.RSI < 70:
			total += 20
			reasons = append(reasons, fmt.Sprintf("RSI at %.2f - Normal range", snap.RSI))
		}
	}

	if available(snap.BBLower) && latest.Close < snap.BBLower {
		total += 20
		reasons = append(reasons, "Price below lower Bollinger Band (Oversold)")
	}

	if avg := trailingMeanVolume(series, volumeWindow); avg > 0 && float64(latest.Volume) > volumeSpikeRatio*avg {
		total += 15
		reasons = append(reasons, "High volume activity")
	}

	volatility := annualizedVolatility(series)
	riskLevel := domain.RiskHigh
	switch {
	case volatility < lowRiskVolatility:
		riskLevel = domain.RiskLow
	case volatility < mediumRiskVolatility:
		riskLevel = domain.RiskMedium
	}

	riskMatch := true
	if profile.RiskTolerance == domain.RiskToleranceLow && riskLevel == domain.RiskHigh {
		riskMatch = false
		total -= riskMismatchPenalty
	}

	return domain.Recommendation{
		Score:      total,
		Rating:     ratingFor(total),
		Reasons:    reasons,
		RiskLevel:  riskLevel,
		Volatility: volatility,
		RiskMatch:  riskMatch,
	}
}

func ratingFor(total int) string {
	switch {
	case total >= strongBuyThreshold:
		return domain.RatingStrongBuy
	case total >= buyThreshold:
		return domain.RatingBuy
	case total >= holdThreshold:
		return domain.RatingHold
	}
	return domain.RatingSell
}

// trailingMeanVolume averages volume over the last min(window, len)
// bars, including the latest one.
func trailingMeanVolume(series domain.PriceSeries, window int) float64 {
	if len(series) == 0 {
		return 0
	}
	start := len(series) - window
	if start < 0 {
		start = 0
	}
	var sum float64
	for _, bar := range series[start:] {
		sum += float64(bar.Volume)
	}
	return sum / float64(len(series)-start)
}

// annualizedVolatility is the sample standard deviation of daily
// percentage returns over the whole series, scaled by sqrt(252), in
// percent.
func annualizedVolatility(series domain.PriceSeries) float64 {
	closes := series.Closes()
	returns := make([]float64, 0, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	if len(returns) < 2 {
		return 0
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(tradingDays) * 100
}

func available(v float64) bool {
	return !math.IsNaN(v)
}
