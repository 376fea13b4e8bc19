package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound means no exchange returned data for the symbol.
	ErrNotFound = errors.New("stock not found")
	// ErrNotConfigured means the configured market data provider is missing
	// a required credential or endpoint.
	ErrNotConfigured = errors.New("market data service not configured")
	// ErrStreamLimit means the subscription pool is full.
	ErrStreamLimit = errors.New("too many active subscriptions")
)

// Exchange identifies a listing venue for an Indian equity.
type Exchange string

const (
	ExchangeNSE Exchange = "NSE"
	ExchangeBSE Exchange = "BSE"
)

// Suffix returns the Yahoo-style ticker suffix for the exchange.
func (e Exchange) Suffix() string {
	switch e {
	case ExchangeNSE:
		return ".NS"
	case ExchangeBSE:
		return ".BO"
	}
	return ""
}

// Qualify composes the exchange-qualified ticker for a canonical symbol.
func (e Exchange) Qualify(symbol string) string {
	return symbol + e.Suffix()
}

// FallbackOrder is the order in which exchanges are tried during a fetch.
var FallbackOrder = []Exchange{ExchangeNSE, ExchangeBSE}

// PriceBar is one trading day of OHLCV data.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is a symbol's daily history, ascending by date. An empty
// series is valid and distinct from "not yet fetched".
type PriceSeries []PriceBar

// Latest returns the most recent bar. Only valid on non-empty series.
func (s PriceSeries) Latest() PriceBar {
	return s[len(s)-1]
}

// Closes extracts the close column.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Close
	}
	return out
}

// IndicatorSnapshot carries per-bar derived values. A NaN field means the
// value is not available for that bar.
type IndicatorSnapshot struct {
	SMA20    float64
	SMA50    float64
	RSI      float64
	BBMiddle float64
	BBUpper  float64
	BBLower  float64
}

type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

// UserProfile is the caller's stated budget and appetite. Missing fields
// are substituted with defaults rather than rejected.
type UserProfile struct {
	Budget        float64       `json:"budget"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
}

const (
	RatingStrongBuy = "Strong Buy"
	RatingBuy       = "Buy"
	RatingHold      = "Hold"
	RatingSell      = "Sell"

	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Recommendation is the scoring engine's verdict for the latest bar.
type Recommendation struct {
	Score      int      `json:"score"`
	Rating     string   `json:"rating"`
	Reasons    []string `json:"reasons"`
	RiskLevel  string   `json:"risk_level"`
	Volatility float64  `json:"volatility"`
	RiskMatch  bool     `json:"risk_match"`
}

// RankedRecommendation is one entry of the top-N screening result.
type RankedRecommendation struct {
	Symbol           string         `json:"symbol"`
	CurrentPrice     float64        `json:"current_price"`
	Recommendation   Recommendation `json:"recommendation"`
	SharesAffordable int64          `json:"shares_affordable"`
}

// ScreenFilters narrows the screening universe beyond budget and score.
// Zero values mean "not set". Fields the provider cannot populate
// (market cap, P/E) only apply when the candidate carries a real value.
type ScreenFilters struct {
	MinMarketCap float64  `json:"min_market_cap"`
	MaxPE        float64  `json:"max_pe"`
	MinVolume    int64    `json:"min_volume"`
	Sectors      []string `json:"sectors"`
}

// Allows reports whether a candidate passes the advanced filters.
// Fundamentals and sector are checked only when the candidate carries
// a real value; sources that cannot supply them report zero or empty,
// which leaves those filters inert instead of excluding everything.
func (f ScreenFilters) Allows(marketCap, peRatio float64, volume int64, sector string) bool {
	if f.MinMarketCap > 0 && marketCap > 0 && marketCap < f.MinMarketCap {
		return false
	}
	if f.MaxPE > 0 && peRatio > 0 && peRatio > f.MaxPE {
		return false
	}
	if f.MinVolume > 0 && volume < f.MinVolume {
		return false
	}
	if len(f.Sectors) > 0 && sector != "" && !containsFold(f.Sectors, sector) {
		return false
	}
	return true
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

// SearchBar is a PriceBar with its calendar date rendered for the API.
type SearchBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// SearchResult is the lookup payload for one symbol. MarketCap and
// PERatio are 0 when the data source cannot supply them. Week52High
// and Week52Low span the fetched history window, which is shorter than
// a calendar year under the default range; chart providers expose no
// true 52-week quote metadata.
type SearchResult struct {
	Symbol         string      `json:"symbol"`
	Exchange       Exchange    `json:"exchange"`
	CurrentPrice   float64     `json:"current_price"`
	PreviousClose  float64     `json:"previous_close"`
	Change         float64     `json:"change"`
	ChangePercent  float64     `json:"change_percent"`
	Volume         int64       `json:"volume"`
	MarketCap      float64     `json:"market_cap"`
	PERatio        float64     `json:"pe_ratio"`
	Week52High     float64     `json:"week_52_high"`
	Week52Low      float64     `json:"week_52_low"`
	HistoricalData []SearchBar `json:"historical_data"`
}

// PriceUpdate is one push message on a price subscription.
type PriceUpdate struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
}

// NewsItem is a placeholder news record; there is no real news
// integration behind it.
type NewsItem struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Published string `json:"published"`
}
