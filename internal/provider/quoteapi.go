package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"nifty-advisor/internal/domain"
)

const defaultQuoteAPIBaseURL = "https://api.twelvedata.com"

// rangeOutputSize maps a Yahoo-style range onto a bar count for
// subscription APIs that take an output size instead of a range.
var rangeOutputSize = map[string]int{
	"1mo": 22,
	"3mo": 66,
	"6mo": 126,
	"1y":  252,
}

// QuoteAPI fetches daily bars from a subscription time-series API
// (Twelve Data response shape: string-typed OHLCV values under a
// status/message envelope). Requires an API key.
type QuoteAPI struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewQuoteAPI(apiKey, baseURL string, timeout time.Duration) *QuoteAPI {
	if baseURL == "" {
		baseURL = defaultQuoteAPIBaseURL
	}
	return &QuoteAPI{
		client:  newHTTPClient(timeout),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (q *QuoteAPI) Name() string { return "quoteapi" }

func (q *QuoteAPI) Configured() error {
	if q.apiKey == "" {
		return fmt.Errorf("quoteapi: missing API key: %w", domain.ErrNotConfigured)
	}
	return nil
}

type quoteAPIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Values  []struct {
		Datetime string `json:"datetime"`
		Open     string `json:"open"`
		High     string `json:"high"`
		Low      string `json:"low"`
		Close    string `json:"close"`
		Volume   string `json:"volume"`
	} `json:"values"`
}

func (q *QuoteAPI) History(ctx context.Context, qualified, rng, interval string) (domain.PriceSeries, error) {
	if err := q.Configured(); err != nil {
		return nil, err
	}

	outputSize, ok := rangeOutputSize[rng]
	if !ok {
		outputSize = 66
	}
	if interval == "1d" {
		interval = "1day"
	}

	params := url.Values{}
	params.Set("symbol", qualified)
	params.Set("interval", interval)
	params.Set("outputsize", strconv.Itoa(outputSize))
	params.Set("apikey", q.apiKey)

	u := fmt.Sprintf("%s/time_series?%s", q.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := q.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quoteapi fetch %s: %w", qualified, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("quoteapi: status %d for %s", res.StatusCode, qualified)
	}

	var body quoteAPIResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("quoteapi decode: %w", err)
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("quoteapi: %s", body.Message)
	}

	series := make(domain.PriceSeries, 0, len(body.Values))
	for _, v := range body.Values {
		bar, err := parseQuoteBar(v.Datetime, v.Open, v.High, v.Low, v.Close, v.Volume)
		if err != nil {
			// One unparseable row should not sink the series.
			continue
		}
		series = append(series, bar)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

func parseQuoteBar(datetime, open, high, low, closePx, volume string) (domain.PriceBar, error) {
	ts, err := time.Parse("2006-01-02 15:04:05", datetime)
	if err != nil {
		ts, err = time.Parse("2006-01-02", datetime)
		if err != nil {
			return domain.PriceBar{}, fmt.Errorf("parse time %q: %w", datetime, err)
		}
	}
	o, err := strconv.ParseFloat(open, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parse open %q: %w", open, err)
	}
	h, err := strconv.ParseFloat(high, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parse high %q: %w", high, err)
	}
	l, err := strconv.ParseFloat(low, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parse low %q: %w", low, err)
	}
	c, err := strconv.ParseFloat(closePx, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parse close %q: %w", closePx, err)
	}
	vol, err := strconv.ParseInt(volume, 10, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parse volume %q: %w", volume, err)
	}
	return domain.PriceBar{Date: ts.UTC(), Open: o, High: h, Low: l, Close: c, Volume: vol}, nil
}
