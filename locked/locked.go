// Package locked serializes a hash table behind a single mutex held for
// the full duration of every operation, which is the simplest way to make
// the probe-chain invariant hold under concurrent use.
package locked

import (
	"sync"

	"openaddr/hashtable"
)

// A Map is a hashtable.Table safe for concurrent use by any number of
// goroutines.
type Map[V any] struct {
	mu  *sync.Mutex
	tab *hashtable.Table[V]
}

func New[V any](capacity uint64, hash hashtable.HashFn) *Map[V] {
	return &Map[V]{
		mu:  new(sync.Mutex),
		tab: hashtable.New[V](capacity, hash),
	}
}

func (m *Map[V]) Put(key string, value V) {
	m.mu.Lock()
	m.tab.Put(key, value)
	m.mu.Unlock()
}

func (m *Map[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	value, ok := m.tab.Get(key)
	m.mu.Unlock()
	return value, ok
}

func (m *Map[V]) Remove(key string) (V, bool) {
	m.mu.Lock()
	value, ok := m.tab.Remove(key)
	m.mu.Unlock()
	return value, ok
}

func (m *Map[V]) Size() uint64 {
	m.mu.Lock()
	size := m.tab.Size()
	m.mu.Unlock()
	return size
}
