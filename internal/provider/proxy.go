package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"nifty-advisor/internal/domain"
)

// Proxy fetches daily bars through a forwarding proxy that fronts one
// of the real data sources but exposes the same logical contract:
// GET {base}/history?symbol=&range=&interval= returning normalized
// JSON bars. Useful when the deployment network cannot reach the data
// source directly.
type Proxy struct {
	client  *http.Client
	baseURL string
}

func NewProxy(baseURL string, timeout time.Duration) *Proxy {
	return &Proxy{
		client:  newHTTPClient(timeout),
		baseURL: baseURL,
	}
}

func (p *Proxy) Name() string { return "proxy" }

func (p *Proxy) Configured() error {
	if p.baseURL == "" {
		return fmt.Errorf("proxy: missing base URL: %w", domain.ErrNotConfigured)
	}
	return nil
}

type proxyHistoryResponse struct {
	Symbol string            `json:"symbol"`
	Bars   []domain.PriceBar `json:"bars"`
}

func (p *Proxy) History(ctx context.Context, qualified, rng, interval string) (domain.PriceSeries, error) {
	if err := p.Configured(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", qualified)
	params.Set("range", rng)
	params.Set("interval", interval)

	u := fmt.Sprintf("%s/history?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy fetch %s: %w", qualified, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy: status %d for %s", res.StatusCode, qualified)
	}

	var body proxyHistoryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("proxy decode: %w", err)
	}

	series := domain.PriceSeries(body.Bars)
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}
