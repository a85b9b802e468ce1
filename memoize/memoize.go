package memoize

import "openaddr/hashtable"

// Memoize caches the results of a string-keyed function in a hash table.
// It is not safe for concurrent use.
type Memoize[V any] struct {
	f       func(string) V
	results *hashtable.Table[V]
}

func New[V any](f func(string) V, hash hashtable.HashFn) Memoize[V] {
	return Memoize[V]{
		f:       f,
		results: hashtable.New[V](0, hash),
	}
}

func (m Memoize[V]) Call(x string) V {
	cached, ok := m.results.Get(x)
	if ok {
		return cached
	}
	y := m.f(x)
	m.results.Put(x, y)
	return y
}

// Forget drops any cached result for x, so the next Call recomputes it.
func (m Memoize[V]) Forget(x string) {
	m.results.Remove(x)
}

// MockMemoize has the same API as Memoize but with an implementation that
// doesn't actually save any results.
type MockMemoize[V any] struct {
	f func(string) V
}

func NewMock[V any](f func(string) V) *MockMemoize[V] {
	return &MockMemoize[V]{f: f}
}

func (m *MockMemoize[V]) Call(x string) V {
	return m.f(x)
}
