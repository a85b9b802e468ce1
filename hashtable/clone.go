package hashtable

import "github.com/goose-lang/primitive"

// Clone returns an independent table with the same capacity, hash function
// and contents. Only occupied pairs are copied, so tombstones do not carry
// over to the clone.
func (t *Table[V]) Clone() *Table[V] {
	clone := New[V](uint64(len(t.slots)), t.hash)
	for i := range t.slots {
		if t.slots[i].state == Occupied {
			ok := clone.tryPut(t.slots[i].key, t.slots[i].value)
			primitive.Assert(ok)
		}
	}
	return clone
}
