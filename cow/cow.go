package cow

import (
	"sync"

	"openaddr/hashtable"
)

type atomicPtr[V any] struct {
	mu  *sync.Mutex
	val *hashtable.Table[V]
}

func newAtomicPtr[V any](t *hashtable.Table[V]) *atomicPtr[V] {
	return &atomicPtr[V]{mu: new(sync.Mutex), val: t}
}

func (a *atomicPtr[V]) load() *hashtable.Table[V] {
	a.mu.Lock()
	val := a.val
	a.mu.Unlock()
	return val
}

func (a *atomicPtr[V]) store(t *hashtable.Table[V]) {
	a.mu.Lock()
	a.val = t
	a.mu.Unlock()
}

// A Map supports concurrent reads by deep-cloning the table on every
// write: readers share an immutable snapshot, writers clone it, mutate the
// clone, and swap it in. Reads never hold a lock across probing because
// Get and Size do not mutate the snapshot.
//
// Modeled on DeepCopyMap in Go's [map_reference_test.go].
//
// [map_reference_test.go]: https://cs.opensource.google/go/go/+/refs/tags/go1.22.5:src/sync/map_reference_test.go
type Map[V any] struct {
	clean *atomicPtr[V]
	mu    *sync.Mutex
}

func New[V any](capacity uint64, hash hashtable.HashFn) *Map[V] {
	t := hashtable.New[V](capacity, hash)
	return &Map[V]{clean: newAtomicPtr(t), mu: new(sync.Mutex)}
}

func (m *Map[V]) Get(key string) (V, bool) {
	clean := m.clean.load()
	return clean.Get(key)
}

func (m *Map[V]) Size() uint64 {
	clean := m.clean.load()
	return clean.Size()
}

// Assuming mu is held, return an owned copy of the current clean table.
func (m *Map[V]) dirty() *hashtable.Table[V] {
	clean := m.clean.load()
	return clean.Clone()
}

func (m *Map[V]) Put(key string, value V) {
	m.mu.Lock()
	dirty := m.dirty()
	dirty.Put(key, value)
	m.clean.store(dirty)
	m.mu.Unlock()
}

func (m *Map[V]) Remove(key string) (V, bool) {
	m.mu.Lock()
	dirty := m.dirty()
	value, ok := dirty.Remove(key)
	m.clean.store(dirty)
	m.mu.Unlock()
	return value, ok
}
