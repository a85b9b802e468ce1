package hashtable

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// A HashFn maps a key to a 64-bit hash. The table reduces the hash modulo
// its capacity, so a HashFn should spread keys over the full 64-bit range;
// a weak one only costs probe length, never correctness.
type HashFn func(key string) uint64

// SlotState is the state of a single slot: Empty slots have never held a
// key (or were cleared by a rehash), Occupied slots hold a live pair, and
// Deleted slots are tombstones left behind by Remove so that probe chains
// running through them stay intact.
type SlotState uint8

const (
	Empty SlotState = iota
	Occupied
	Deleted
)

type slot[V any] struct {
	state SlotState
	key   string
	value V
}

// The table grows when an insert would push size past maxLoadNum/maxLoadDen
// of capacity.
const (
	maxLoadNum = 7
	maxLoadDen = 10
)

const defaultCapacity = 8

// A Table is an open-addressing hash table from string keys to values of
// type V, resolving collisions by linear probing. It is not safe for
// concurrent use; the locked, sharded and cow packages provide serialized
// variants.
type Table[V any] struct {
	hash  HashFn
	slots []slot[V]
	size  uint64
}

// New creates a table with the given initial capacity and hash function.
// A capacity of 0 picks a small default. Passing a nil hash is a programmer
// error and panics.
func New[V any](capacity uint64, hash HashFn) *Table[V] {
	if hash == nil {
		panic("hashtable: nil hash function")
	}
	if capacity == 0 {
		capacity = defaultCapacity
	}
	return &Table[V]{
		hash:  hash,
		slots: make([]slot[V], capacity),
	}
}

// Size returns the number of keys currently present.
func (t *Table[V]) Size() uint64 {
	return t.size
}

// Capacity returns the current number of slots.
func (t *Table[V]) Capacity() uint64 {
	return uint64(len(t.slots))
}

func (t *Table[V]) startIndex(key string) uint64 {
	return t.hash(key) % uint64(len(t.slots))
}

// lookup probes linearly from the key's hash slot, skipping tombstones and
// occupied slots holding other keys. It returns the index of the key's slot
// and whether the key was found; the probe terminates at an Empty slot or
// after visiting every slot.
func (t *Table[V]) lookup(key string) (uint64, bool) {
	capacity := uint64(len(t.slots))
	var index = t.startIndex(key)
	for probed := uint64(0); probed < capacity; probed++ {
		s := &t.slots[index]
		if s.state == Empty {
			return 0, false
		}
		if s.state == Occupied && s.key == key {
			return index, true
		}
		index = (index + 1) % capacity
	}
	return 0, false
}

// Get returns the value stored under key. The boolean reports whether the
// key was present. Get never mutates the table.
func (t *Table[V]) Get(key string) (V, bool) {
	index, ok := t.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.slots[index].value, true
}

// Put stores value under key, overwriting any previous value for it.
// Overwrites leave the size unchanged.
func (t *Table[V]) Put(key string, value V) {
	if std.SumAssumeNoOverflow(t.size, 1)*maxLoadDen > uint64(len(t.slots))*maxLoadNum {
		t.rehash(std.SumAssumeNoOverflow(uint64(len(t.slots)), uint64(len(t.slots))))
	}
	for !t.tryPut(key, value) {
		// every slot was occupied or a tombstone on some other chain
		t.rehash(std.SumAssumeNoOverflow(uint64(len(t.slots)), uint64(len(t.slots))))
	}
}

// tryPut makes one probe pass for key and reports whether it found a home.
// The first tombstone on the path is remembered rather than claimed
// immediately: the key may already live further down the same chain, and
// claiming early would leave it in two slots.
func (t *Table[V]) tryPut(key string, value V) bool {
	capacity := uint64(len(t.slots))
	var index = t.startIndex(key)
	var tombstone = uint64(0)
	var haveTombstone = false
	for probed := uint64(0); probed < capacity; probed++ {
		s := &t.slots[index]
		if s.state == Occupied && s.key == key {
			s.value = value
			return true
		}
		if s.state == Empty {
			if haveTombstone {
				index = tombstone
			}
			t.claim(index, key, value)
			return true
		}
		if s.state == Deleted && !haveTombstone {
			tombstone = index
			haveTombstone = true
		}
		index = (index + 1) % capacity
	}
	if haveTombstone {
		t.claim(tombstone, key, value)
		return true
	}
	return false
}

func (t *Table[V]) claim(index uint64, key string, value V) {
	t.slots[index] = slot[V]{state: Occupied, key: key, value: value}
	t.size = std.SumAssumeNoOverflow(t.size, 1)
	primitive.Assert(t.size <= uint64(len(t.slots)))
}

// Remove deletes key and returns the removed value. The slot becomes a
// tombstone, not Empty, so keys inserted past it after a collision remain
// reachable. Removing an absent key is a no-op returning the zero value
// and false.
func (t *Table[V]) Remove(key string) (V, bool) {
	index, ok := t.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	value := t.slots[index].value
	t.slots[index] = slot[V]{state: Deleted}
	t.size = t.size - 1
	return value, true
}

// rehash re-inserts every occupied pair into a fresh array of newCapacity
// slots. Tombstones are dropped here, which is what bounds their buildup
// over the table's lifetime.
func (t *Table[V]) rehash(newCapacity uint64) {
	primitive.Assert(newCapacity >= t.size)
	old := t.slots
	t.slots = make([]slot[V], newCapacity)
	t.size = 0
	for i := range old {
		if old[i].state == Occupied {
			ok := t.tryPut(old[i].key, old[i].value)
			primitive.Assert(ok)
		}
	}
}
