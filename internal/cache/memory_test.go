package cache

import (
	"context"
	"testing"
	"time"

	"nifty-advisor/internal/domain"
)

func sampleSeries(close float64) domain.PriceSeries {
	return domain.PriceSeries{{
		Date:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: 100,
	}}
}

func TestMemoryGetAbsentKey(t *testing.T) {
	m := NewMemory(time.Minute, 8)
	if _, ok := m.Get(context.Background(), "RELIANCE.NS"); ok {
		t.Fatal("expected miss for never-stored key")
	}
}

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory(time.Minute, 8)
	ctx := context.Background()

	m.Put(ctx, "TCS.NS", sampleSeries(4100))
	got, ok := m.Get(ctx, "TCS.NS")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Latest().Close != 4100 {
		t.Fatalf("unexpected series: %+v", got)
	}
}

func TestMemoryExpiresOnRead(t *testing.T) {
	m := NewMemory(90*time.Second, 8)
	ctx := context.Background()

	current := time.Unix(1_700_000_000, 0)
	m.now = func() time.Time { return current }

	m.Put(ctx, "INFY.NS", sampleSeries(1500))
	current = current.Add(89 * time.Second)
	if _, ok := m.Get(ctx, "INFY.NS"); !ok {
		t.Fatal("expected hit inside TTL")
	}

	current = current.Add(2 * time.Second)
	if _, ok := m.Get(ctx, "INFY.NS"); ok {
		t.Fatal("expected stale entry to be reported absent")
	}
	// The stale entry must also have been removed.
	m.mu.Lock()
	_, present := m.entries["INFY.NS"]
	m.mu.Unlock()
	if present {
		t.Fatal("expected stale entry to be evicted on read")
	}
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	m := NewMemory(time.Minute, 2)
	ctx := context.Background()

	m.Put(ctx, "A.NS", sampleSeries(1))
	m.Put(ctx, "B.NS", sampleSeries(2))
	m.Get(ctx, "A.NS") // A is now most recently used
	m.Put(ctx, "C.NS", sampleSeries(3))

	if _, ok := m.Get(ctx, "B.NS"); ok {
		t.Fatal("expected B to be evicted as least recently used")
	}
	if _, ok := m.Get(ctx, "A.NS"); !ok {
		t.Fatal("expected A to survive eviction")
	}
	if _, ok := m.Get(ctx, "C.NS"); !ok {
		t.Fatal("expected C to be present")
	}
}

func TestMemoryPutOverwrites(t *testing.T) {
	m := NewMemory(time.Minute, 8)
	ctx := context.Background()

	m.Put(ctx, "SBIN.NS", sampleSeries(700))
	m.Put(ctx, "SBIN.NS", sampleSeries(710))
	got, ok := m.Get(ctx, "SBIN.NS")
	if !ok || got.Latest().Close != 710 {
		t.Fatalf("expected overwritten entry, got %+v ok=%v", got, ok)
	}
}
