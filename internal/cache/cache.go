// Package cache stores recently fetched price series keyed by
// exchange-qualified symbol, bounding how often the upstream provider
// is hit inside the freshness window.
package cache

import (
	"context"

	"nifty-advisor/internal/domain"
)

// SeriesCache is the storage contract the fetch pipeline depends on.
// Get reports absent both for keys never stored and for entries older
// than the TTL. Implementations must tolerate concurrent access; a
// race between refreshes of the same key is harmless because entries
// are immutable once written.
type SeriesCache interface {
	Get(ctx context.Context, key string) (domain.PriceSeries, bool)
	Put(ctx context.Context, key string, series domain.PriceSeries)
}
