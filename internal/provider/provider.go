// Package provider abstracts the upstream market-data integrations
// behind one capability: exchange-qualified symbol + range + interval
// in, normalized daily series out. Free-tier sources rate-limit, block
// and drift, so every failure mode surfaces as an ordinary error the
// fetch pipeline can treat as "this exchange has no data".
package provider

import (
	"context"
	"net/http"
	"time"

	"nifty-advisor/internal/domain"
)

// MarketDataProvider fetches daily price history for one
// exchange-qualified symbol over a bounded lookback range.
type MarketDataProvider interface {
	Name() string
	// Configured reports domain.ErrNotConfigured when the integration
	// is missing a required credential or endpoint. Checked once at the
	// entry of each operation that depends on upstream data.
	Configured() error
	History(ctx context.Context, qualified, rng, interval string) (domain.PriceSeries, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
