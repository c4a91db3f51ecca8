package solver

import (
	"iter"

	"retrograde/game"
)

type Entry[P any, V any] struct {
	Position P
	Value    V
}

// Table memoizes solved positions. Keys are bucketed by Hash and confirmed
// with Equal. A stored value is final and is never overwritten. The zero
// value is an empty table.
type Table[P game.Keyed[P], V any] struct {
	buckets map[uint64][]Entry[P, V]
	size    int
	// collisions counts insertions that landed in a bucket already holding an
	// unequal position.
	collisions int
}

func NewTable[P game.Keyed[P], V any]() *Table[P, V] {
	return &Table[P, V]{buckets: make(map[uint64][]Entry[P, V])}
}

func (t *Table[P, V]) Get(position P) (V, bool) {
	for _, entry := range t.buckets[position.Hash()] {
		if entry.Position.Equal(position) {
			return entry.Value, true
		}
	}
	var zero V
	return zero, false
}

// Put stores value under position and reports whether it was inserted. A
// position that is already present keeps its original value.
func (t *Table[P, V]) Put(position P, value V) bool {
	hash := position.Hash()
	bucket := t.buckets[hash]
	for _, entry := range bucket {
		if entry.Position.Equal(position) {
			return false
		}
	}
	if len(bucket) > 0 {
		t.collisions++
	}
	if t.buckets == nil {
		t.buckets = make(map[uint64][]Entry[P, V])
	}
	t.buckets[hash] = append(bucket, Entry[P, V]{Position: position, Value: value})
	t.size++
	return true
}

func (t *Table[P, V]) Len() int {
	return t.size
}

func (t *Table[P, V]) Collisions() int {
	return t.collisions
}

// All iterates over every entry in no particular order.
func (t *Table[P, V]) All() iter.Seq2[P, V] {
	return func(yield func(P, V) bool) {
		for _, bucket := range t.buckets {
			for _, entry := range bucket {
				if !yield(entry.Position, entry.Value) {
					return
				}
			}
		}
	}
}

func (t *Table[P, V]) Values() []V {
	values := make([]V, 0, t.size)
	for _, value := range t.All() {
		values = append(values, value)
	}
	return values
}
