// Package stream pushes best-effort price updates for subscribed
// symbols. Each subscription is one supervised goroutine polling the
// fetch pipeline; the pool is bounded and every task is cancellable,
// so an abandoned client can never leak a loop.
package stream

import (
	"context"
	"log"
	"sync"
	"time"

	"nifty-advisor/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type PriceFetcher interface {
	FetchSeries(ctx context.Context, symbol string) (domain.PriceSeries, domain.Exchange, error)
}

type Manager struct {
	tracer  trace.Tracer
	market  PriceFetcher
	poll    time.Duration
	maxSubs int

	mu     sync.Mutex
	active int
}

func NewManager(tracer trace.Tracer, market PriceFetcher, poll time.Duration, maxSubs int) *Manager {
	if poll <= 0 {
		poll = 5 * time.Second
	}
	if maxSubs <= 0 {
		maxSubs = 64
	}
	return &Manager{
		tracer:  tracer,
		market:  market,
		poll:    poll,
		maxSubs: maxSubs,
	}
}

// Subscribe starts a polling task for the symbol and returns its
// update channel plus a cancel func. The channel is closed when the
// task exits. Returns domain.ErrStreamLimit when the pool is full.
// Updates are dropped rather than buffered when the receiver lags.
func (m *Manager) Subscribe(ctx context.Context, symbol string) (<-chan domain.PriceUpdate, func(), error) {
	m.mu.Lock()
	if m.active >= m.maxSubs {
		m.mu.Unlock()
		return nil, nil, domain.ErrStreamLimit
	}
	m.active++
	m.mu.Unlock()

	subCtx, cancel := context.WithCancel(ctx)
	updates := make(chan domain.PriceUpdate, 1)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			m.mu.Lock()
			m.active--
			m.mu.Unlock()
		})
	}

	go func() {
		defer close(updates)
		defer stop()
		m.run(subCtx, symbol, updates)
	}()

	return updates, stop, nil
}

// Active reports the number of live subscription tasks.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Manager) run(ctx context.Context, symbol string, updates chan<- domain.PriceUpdate) {
	ticker := time.NewTicker(m.poll)
	defer ticker.Stop()

	m.push(ctx, symbol, updates)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.push(ctx, symbol, updates)
		}
	}
}

func (m *Manager) push(ctx context.Context, symbol string, updates chan<- domain.PriceUpdate) {
	_, span := m.tracer.Start(ctx, "stream.push")
	defer span.End()

	series, _, err := m.market.FetchSeries(ctx, symbol)
	if err != nil {
		// Best-effort: a failed poll is skipped, not fatal.
		log.Printf("stream poll %s: %v", symbol, err)
		return
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

	update := domain.PriceUpdate{
		Symbol:        symbol,
		Price:         latest.Close,
		Change:        change,
		ChangePercent: changePercent,
		Volume:        latest.Volume,
	}

	select {
	case updates <- update:
	default:
		// Receiver is behind; drop this tick.
	}
}
