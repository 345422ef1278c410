package cache

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory — кэш в памяти процесса. Время берётся из clock.Clock, чтобы TTL можно было
// проверять в тестах без sleep.
type Memory struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	clock clock.Clock
}

// NewMemory создаёт кэш; clk == nil означает реальные часы.
func NewMemory(ttl time.Duration, clk clock.Clock) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Memory{items: make(map[string]entry), ttl: ttl, clock: clk}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !m.clock.Now().Before(e.expires) {
		m.mu.Lock()
		// запись могли перезаписать, пока держали RLock
		if cur, ok := m.items[key]; ok && cur.expires.Equal(e.expires) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return append([]byte(nil), e.value...), true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = entry{value: append([]byte(nil), value...), expires: m.clock.Now().Add(m.ttl)}
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// Len — число записей, включая ещё не вычищенные просроченные.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Prune удаляет просроченные записи, которые больше никто не читает.
func (m *Memory) Prune() int {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, e := range m.items {
		if !now.Before(e.expires) {
			delete(m.items, k)
			n++
		}
	}
	return n
}

// RunCleanup вызывает Prune раз в TTL до отмены ctx.
func (m *Memory) RunCleanup(ctx context.Context) {
	t := m.clock.Ticker(m.ttl)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Prune()
		}
	}
}
