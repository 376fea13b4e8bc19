package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"nifty-advisor/internal/cache"
	"nifty-advisor/internal/domain"
	"nifty-advisor/internal/provider"
	"nifty-advisor/internal/symbol"

	"go.opentelemetry.io/otel/trace"
)

const (
	historyInterval = "1d"
	searchBarLimit  = 60
)

// MarketService owns the tiered fetch pipeline: canonical symbol in,
// cached or freshly fetched series out, falling back from the primary
// to the secondary exchange when an attempt yields nothing.
type MarketService struct {
	tracer   trace.Tracer
	provider provider.MarketDataProvider
	cache    cache.SeriesCache
	rng      string
	timeout  time.Duration
}

func NewMarketService(
	tracer trace.Tracer,
	p provider.MarketDataProvider,
	c cache.SeriesCache,
	rng string,
	timeout time.Duration,
) *MarketService {
	if rng == "" {
		rng = "3mo"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MarketService{
		tracer:   tracer,
		provider: p,
		cache:    c,
		rng:      rng,
		timeout:  timeout,
	}
}

// Configured reports whether the underlying provider can be used at all.
func (s *MarketService) Configured() error {
	return s.provider.Configured()
}

// FetchSeries resolves a raw symbol to a price series and the exchange
// that produced it. Upstream faults on one exchange are downgraded to
// a fallback attempt on the next; only a missing credential aborts
// early. Returns domain.ErrNotFound when every exchange comes up empty.
func (s *MarketService) FetchSeries(ctx context.Context, rawSymbol string) (domain.PriceSeries, domain.Exchange, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.fetch-series")
	defer span.End()

	if err := s.provider.Configured(); err != nil {
		return nil, "", err
	}

	canonical := symbol.Normalize(rawSymbol)
	for _, exchange := range domain.FallbackOrder {
		key := exchange.Qualify(canonical)

		if series, ok := s.cache.Get(ctx, key); ok && len(series) > 0 {
			return series, exchange, nil
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		series, err := s.provider.History(attemptCtx, key, s.rng, historyInterval)
		cancel()
		if err != nil {
			log.Printf("%s fetch %s failed: %v", s.provider.Name(), key, err)
			continue
		}
		if len(series) == 0 {
			continue
		}

		s.cache.Put(ctx, key, series)
		return series, exchange, nil
	}

	return nil, "", fmt.Errorf("%s: %w", canonical, domain.ErrNotFound)
}

// Search runs the fetch pipeline and assembles the lookup payload.
// Fundamentals the providers cannot supply (market cap, P/E) are zero.
func (s *MarketService) Search(ctx context.Context, rawSymbol string) (*domain.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.search")
	defer span.End()

	series, exchange, err := s.FetchSeries(ctx, rawSymbol)
	if err != nil {
		return nil, err
	}

	latest := series.Latest()
	prevClose := latest.Close
	if len(series) >= 2 {
		prevClose = series[len(series)-2].Close
	}
	change := latest.Close - prevClose
	changePercent := 0.0
	if prevClose != 0 {
		changePercent = change / prevClose * 100
	}

	// Best available 52-week proxy: the extremes of the fetched window.
	high52, low52 := latest.High, latest.Low
	for _, bar := range series {
		if bar.High > high52 {
			high52 = bar.High
		}
		if bar.Low > 0 && bar.Low < low52 {
			low52 = bar.Low
		}
	}

	start := len(series) - searchBarLimit
	if start < 0 {
		start = 0
	}
	bars := make([]domain.SearchBar, 0, len(series)-start)
	for _, bar := range series[start:] {
		bars = append(bars, domain.SearchBar{
			Date:   bar.Date.Format("2006-01-02"),
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}

	return &domain.SearchResult{
		Symbol:         symbol.Normalize(rawSymbol),
		Exchange:       exchange,
		CurrentPrice:   latest.Close,
		PreviousClose:  prevClose,
		Change:         change,
		ChangePercent:  changePercent,
		Volume:         latest.Volume,
		MarketCap:      0,
		PERatio:        0,
		Week52High:     high52,
		Week52Low:      low52,
		HistoricalData: bars,
	}, nil
}
