package domain

import "iter"

// Entry is a single key/value pair used to build a Table.
type Entry[V any] struct {
	Key   string
	Value V
}

// Table is an insertion-ordered, read-only mapping from key to record.
// Resolvers depend on the iteration order for first-match tie-breaks,
// so tables must never be backed by a plain map alone.
//
// A Table is immutable once built and safe for concurrent reads.
type Table[V any] struct {
	keys []string
	rows map[string]V
}

// NewTable builds a table from entries in the given order.
// A repeated key keeps its first position and takes the last value.
func NewTable[V any](entries ...Entry[V]) Table[V] {
	t := Table[V]{
		keys: make([]string, 0, len(entries)),
		rows: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.rows[e.Key]; !ok {
			t.keys = append(t.keys, e.Key)
		}
		t.rows[e.Key] = e.Value
	}
	return t
}

// Get returns the record stored under key.
func (t Table[V]) Get(key string) (V, bool) {
	v, ok := t.rows[key]
	return v, ok
}

// Has reports whether key exists.
func (t Table[V]) Has(key string) bool {
	_, ok := t.rows[key]
	return ok
}

// Len returns the number of keys.
func (t Table[V]) Len() int {
	return len(t.keys)
}

// Keys returns a copy of the keys in insertion order.
func (t Table[V]) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// All iterates over key/value pairs in insertion order.
func (t Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range t.keys {
			if !yield(k, t.rows[k]) {
				return
			}
		}
	}
}

// Entries returns the table contents as entries in insertion order.
func (t Table[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Entry[V]{Key: k, Value: t.rows[k]})
	}
	return out
}
