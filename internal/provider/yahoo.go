package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"nifty-advisor/internal/domain"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Yahoo fetches daily bars from the public Yahoo Finance chart API.
// No credential is required; the endpoint is anti-scraping-protected,
// so a browser-like User-Agent is sent with every request.
type Yahoo struct {
	client  *http.Client
	baseURL string
}

func NewYahoo(timeout time.Duration) *Yahoo {
	return &Yahoo{
		client:  newHTTPClient(timeout),
		baseURL: defaultYahooBaseURL,
	}
}

func (y *Yahoo) Name() string { return "yahoo" }

func (y *Yahoo) Configured() error { return nil }

// yahooChart mirrors the chart API response. OHLCV arrays carry nulls
// for holidays and halts, hence the pointer elements.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (y *Yahoo) History(ctx context.Context, qualified, rng, interval string) (domain.PriceSeries, error) {
	u := fmt.Sprintf("%s/%s?interval=%s&range=%s",
		y.baseURL, url.PathEscape(qualified), url.QueryEscape(interval), url.QueryEscape(rng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	res, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", qualified, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d for %s", res.StatusCode, qualified)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data for %s", qualified)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	series := make(domain.PriceSeries, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		bar := domain.PriceBar{
			Date:   time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Open:   deref(at(quote.Open, i)),
			High:   deref(at(quote.High, i)),
			Low:    deref(at(quote.Low, i)),
			Close:  deref(at(quote.Close, i)),
			Volume: derefInt(at(quote.Volume, i)),
		}
		// Null bars (holidays, halts) carry no information.
		if bar.Open == 0 && bar.High == 0 && bar.Low == 0 && bar.Close == 0 {
			continue
		}
		series = append(series, bar)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

// at guards against OHLCV arrays shorter than the timestamp array,
// which the chart API produces during partial sessions.
func at[T any](values []*T, i int) *T {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
