package stream

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"nifty-advisor/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type fakeFetcher struct {
	series domain.PriceSeries
	err    error
}

func (f *fakeFetcher) FetchSeries(_ context.Context, _ string) (domain.PriceSeries, domain.Exchange, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.series, domain.ExchangeNSE, nil
}

func twoBars() domain.PriceSeries {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.PriceSeries{
		{Date: base, Close: 100, Volume: 900},
		{Date: base.AddDate(0, 0, 1), Close: 102, Volume: 1200},
	}
}

func newTestManager(fetcher PriceFetcher, maxSubs int) *Manager {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	return NewManager(tracer, fetcher, 10*time.Millisecond, maxSubs)
}

func TestSubscribeDeliversUpdates(t *testing.T) {
	m := newTestManager(&fakeFetcher{series: twoBars()}, 4)

	updates, stop, err := m.Subscribe(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stop()

	select {
	case u := <-updates:
		if u.Symbol != "TCS" || u.Price != 102 {
			t.Fatalf("unexpected update: %+v", u)
		}
		if u.Change != 2 || u.ChangePercent != 2 {
			t.Fatalf("unexpected change fields: %+v", u)
		}
		if u.Volume != 1200 {
			t.Fatalf("unexpected volume: %d", u.Volume)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an update")
	}
}

func TestSubscribeEnforcesLimit(t *testing.T) {
	m := newTestManager(&fakeFetcher{series: twoBars()}, 2)
	ctx := context.Background()

	var stops []func()
	for i := 0; i < 2; i++ {
		_, stop, err := m.Subscribe(ctx, fmt.Sprintf("SYM%d", i))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stops = append(stops, stop)
	}
	defer func() {
		for _, stop := range stops {
			stop()
		}
	}()

	if _, _, err := m.Subscribe(ctx, "OVER"); !errors.Is(err, domain.ErrStreamLimit) {
		t.Fatalf("expected ErrStreamLimit, got %v", err)
	}
}

func TestStopReleasesSlotAndClosesChannel(t *testing.T) {
	m := newTestManager(&fakeFetcher{series: twoBars()}, 1)

	updates, stop, err := m.Subscribe(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stop()

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-updates:
			if !open {
				goto closed
			}
		case <-deadline:
			t.Fatal("expected channel to close after stop")
		}
	}
closed:
	// Slot release may race the goroutine exit briefly.
	for i := 0; i < 100 && m.Active() != 0; i++ {
		time.Sleep(5 * time.Millisecond)
	}
	if m.Active() != 0 {
		t.Fatalf("expected slot release, active=%d", m.Active())
	}
	if _, stop2, err := m.Subscribe(context.Background(), "INFY"); err != nil {
		t.Fatalf("expected freed slot to be reusable, got %v", err)
	} else {
		stop2()
	}
}

func TestContextCancelStopsTask(t *testing.T) {
	m := newTestManager(&fakeFetcher{series: twoBars()}, 1)
	ctx, cancel := context.WithCancel(context.Background())

	updates, _, err := m.Subscribe(ctx, "TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-updates:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("expected channel to close after context cancel")
		}
	}
}

func TestFailedPollsAreSkipped(t *testing.T) {
	m := newTestManager(&fakeFetcher{err: fmt.Errorf("boom: %w", domain.ErrNotFound)}, 1)

	updates, stop, err := m.Subscribe(context.Background(), "GHOST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stop()

	select {
	case u, open := <-updates:
		if open {
			t.Fatalf("expected no updates for failing fetch, got %+v", u)
		}
	case <-time.After(50 * time.Millisecond):
		// No update and still running: the loop skipped the failure.
	}
}
