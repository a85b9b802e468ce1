package hashtable

import (
	"fmt"
	"strings"
)

// SlotInfo reports the contents of one slot for diagnostics. Key and Value
// are meaningful only when State is Occupied.
type SlotInfo[V any] struct {
	Index uint64
	State SlotState
	Key   string
	Value V
}

func (s SlotState) String() string {
	switch s {
	case Occupied:
		return "occupied"
	case Deleted:
		return "deleted"
	default:
		return "empty"
	}
}

// Dump returns the slots in index order. The result is diagnostic output,
// not a stable format.
func (t *Table[V]) Dump() []SlotInfo[V] {
	var infos = make([]SlotInfo[V], 0, len(t.slots))
	for i := range t.slots {
		info := SlotInfo[V]{Index: uint64(i), State: t.slots[i].state}
		if t.slots[i].state == Occupied {
			info.Key = t.slots[i].key
			info.Value = t.slots[i].value
		}
		infos = append(infos, info)
	}
	return infos
}

func (t *Table[V]) String() string {
	var b strings.Builder
	for _, s := range t.Dump() {
		if s.State == Occupied {
			fmt.Fprintf(&b, "%d: %q=%v\n", s.Index, s.Key, s.Value)
		} else {
			fmt.Fprintf(&b, "%d: <%v>\n", s.Index, s.State)
		}
	}
	return b.String()
}
