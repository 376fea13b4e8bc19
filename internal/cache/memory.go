package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"nifty-advisor/internal/domain"
)

// Memory is an in-process SeriesCache with per-entry TTL and a
// least-recently-used capacity bound. Stale entries are evicted on
// read; there is no background sweeper.
type Memory struct {
	ttl        time.Duration
	maxEntries int

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List

	now func() time.Time
}

type memoryEntry struct {
	key       string
	series    domain.PriceSeries
	fetchedAt time.Time
}

func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &Memory{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (domain.PriceSeries, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*memoryEntry)
	if m.now().Sub(entry.fetchedAt) > m.ttl {
		m.order.Remove(elem)
		delete(m.entries, key)
		return nil, false
	}
	m.order.MoveToFront(elem)
	return entry.series, true
}

func (m *Memory) Put(_ context.Context, key string, series domain.PriceSeries) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.series = series
		entry.fetchedAt = m.now()
		m.order.MoveToFront(elem)
		return
	}

	m.entries[key] = m.order.PushFront(&memoryEntry{
		key:       key,
		series:    series,
		fetchedAt: m.now(),
	})

	if m.order.Len() > m.maxEntries {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*memoryEntry).key)
	}
}
