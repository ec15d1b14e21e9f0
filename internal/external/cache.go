package external

import (
	"sort"
	"sync"
	"time"
)

// Snapshot is the last known live scores of one source.
type Snapshot struct {
	Source    Source      `json:"source"`
	Items     []LiveScore `json:"items"`
	FetchedAt time.Time   `json:"fetched_at"`
	Error     string      `json:"error,omitempty"`
}

// Cache holds one snapshot per source.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[Source]Snapshot
}

func NewCache() *Cache {
	return &Cache{snapshots: make(map[Source]Snapshot)}
}

func (c *Cache) Get(source Source) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.snapshots[source]
	return s, ok
}

// All returns every snapshot ordered by source name.
func (c *Cache) All() []Snapshot {
	c.mu.RLock()
	out := make([]Snapshot, 0, len(c.snapshots))
	for _, s := range c.snapshots {
		out = append(out, s)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

// replace stores a fresh snapshot and returns the previous one.
func (c *Cache) replace(source Source, items []LiveScore, at time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.snapshots[source]
	c.snapshots[source] = Snapshot{Source: source, Items: items, FetchedAt: at}
	return prev
}

// markError records a failed fetch but keeps the previous items and fetch time.
func (c *Cache) markError(source Source, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.snapshots[source]
	s.Source = source
	if s.Items == nil {
		s.Items = []LiveScore{}
	}
	s.Error = err.Error()
	c.snapshots[source] = s
}
