// Package sharded stripes keys over a fixed set of hash table shards, each
// behind its own lock, so operations on different shards proceed in
// parallel.
//
// The same injected hash picks the shard and drives probing inside it.
package sharded

import (
	"sync"

	"github.com/goose-lang/std"

	"openaddr/hashtable"
)

const shardCapacity = 8

type bucket[V any] struct {
	mu    *sync.Mutex
	shard *hashtable.Table[V]
}

// A Map is a sharded hash table safe for concurrent use. The number of
// shards is fixed at construction; each shard grows independently.
type Map[V any] struct {
	hash    hashtable.HashFn
	buckets []*bucket[V]
}

func newBucket[V any](hash hashtable.HashFn) *bucket[V] {
	return &bucket[V]{
		mu:    new(sync.Mutex),
		shard: hashtable.New[V](shardCapacity, hash),
	}
}

func New[V any](numShards uint64, hash hashtable.HashFn) *Map[V] {
	if numShards == 0 {
		numShards = 1
	}
	var buckets = []*bucket[V]{}
	for i := uint64(0); i < numShards; i++ {
		buckets = append(buckets, newBucket[V](hash))
	}
	return &Map[V]{hash: hash, buckets: buckets}
}

func (m *Map[V]) bucketIdx(key string) uint64 {
	return m.hash(key) % uint64(len(m.buckets))
}

func (m *Map[V]) Get(key string) (V, bool) {
	b := m.buckets[m.bucketIdx(key)]
	b.mu.Lock()
	value, ok := b.shard.Get(key)
	b.mu.Unlock()
	return value, ok
}

func (m *Map[V]) Put(key string, value V) {
	b := m.buckets[m.bucketIdx(key)]
	b.mu.Lock()
	b.shard.Put(key, value)
	b.mu.Unlock()
}

func (m *Map[V]) Remove(key string) (V, bool) {
	b := m.buckets[m.bucketIdx(key)]
	b.mu.Lock()
	value, ok := b.shard.Remove(key)
	b.mu.Unlock()
	return value, ok
}

// Size sums the shard counters. The total is a snapshot: shards are locked
// one at a time, not all at once.
func (m *Map[V]) Size() uint64 {
	var total = uint64(0)
	for _, b := range m.buckets {
		b.mu.Lock()
		total = std.SumAssumeNoOverflow(total, b.shard.Size())
		b.mu.Unlock()
	}
	return total
}
