// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"sync"
	"time"
)

// Cache stores encoded solver outcomes. Implementations treat every failure
// as a miss; the solver remains the source of truth.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// DefaultCapacity bounds the in-memory cache
const DefaultCapacity = 4096

type entry struct {
	value   []byte
	expires time.Time
	seq     uint64
}

type slot struct {
	key string
	seq uint64
}

// Memory is a bounded in-process cache. When full, the oldest key is evicted.
type Memory struct {
	mu       sync.Mutex
	entries  map[string]entry
	order    []slot
	seq      uint64
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

func NewMemory(capacity int, ttl time.Duration) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{
		entries:  make(map[string]entry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && m.now().After(e.expires) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.entries[key]
	if !exists {
		for len(m.entries) >= m.capacity && len(m.order) > 0 {
			oldest := m.order[0]
			m.order = m.order[1:]
			// Slots of keys removed on expiry and later re-added are stale
			if cur, ok := m.entries[oldest.key]; ok && cur.seq == oldest.seq {
				delete(m.entries, oldest.key)
			}
		}
		m.seq++
		e.seq = m.seq
		m.order = append(m.order, slot{key: key, seq: e.seq})
		if len(m.order) > 2*m.capacity {
			m.compact()
		}
	}

	e.value = value
	e.expires = m.now().Add(m.ttl)
	m.entries[key] = e
	return nil
}

// compact drops stale slots. The caller holds mu. The newest slot is kept
// even though its entry is not stored yet.
func (m *Memory) compact() {
	live := m.order[:0]
	for _, s := range m.order {
		if cur, ok := m.entries[s.key]; (ok && cur.seq == s.seq) || s.seq == m.seq {
			live = append(live, s)
		}
	}
	m.order = live
}

// Close drops every entry. The cache stays usable afterwards.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
	m.order = nil
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
