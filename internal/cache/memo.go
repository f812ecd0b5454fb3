// Package cache memoizes resolved theme tables.
package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexisbeaulieu97/themevars/internal/domain/theme"
)

// DefaultSize is the number of tables kept when no size is configured.
const DefaultSize = 64

// Key identifies one resolution. Registry and Defaults are content
// fingerprints, so reloading identical files keeps hitting the cache.
type Key struct {
	ThemeID   string
	Tone      string
	Prefix    string
	Requested string
	Registry  string
	Defaults  string
}

// KeyFor derives the memo key for req against reg and defaults. Tone and
// prefix defaults are applied so "" and "light" share an entry.
func KeyFor(reg *theme.Registry, defaults theme.ComponentDefaults, req theme.Request) Key {
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = theme.ToneLight
	}
	prefix := req.Prefix
	if prefix == "" {
		prefix = theme.DefaultPrefix
	}
	requested := append([]string(nil), req.Requested...)
	sort.Strings(requested)

	return Key{
		ThemeID:   req.ThemeID,
		Tone:      tone,
		Prefix:    prefix,
		Requested: strings.Join(requested, ","),
		Registry:  reg.Fingerprint(),
		Defaults:  defaults.Fingerprint(),
	}
}

// Stats reports memo effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// Memo is a bounded LRU of resolved tables. Cached tables are shared between
// callers and must be treated as read-only.
type Memo struct {
	mu     sync.Mutex
	tables *lru.Cache[Key, *theme.Table]
	hits   uint64
	misses uint64
}

// New creates a memo holding up to size tables.
func New(size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultSize
	}
	tables, err := lru.New[Key, *theme.Table](size)
	if err != nil {
		return nil, fmt.Errorf("create table cache: %w", err)
	}
	return &Memo{tables: tables}, nil
}

// GetOrCompute returns the cached table for key, or runs compute and stores
// its result. Errors are never cached. The bool reports a cache hit.
func (m *Memo) GetOrCompute(key Key, compute func() (*theme.Table, error)) (*theme.Table, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if table, ok := m.tables.Get(key); ok {
		m.hits++
		return table, true, nil
	}
	m.misses++

	table, err := compute()
	if err != nil {
		return nil, false, err
	}
	m.tables.Add(key, table)
	return table, false, nil
}

// Purge drops every cached table.
func (m *Memo) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables.Purge()
}

// Stats returns a snapshot of the hit and miss counters.
func (m *Memo) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Hits: m.hits, Misses: m.misses, Size: m.tables.Len()}
}
