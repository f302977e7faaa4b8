// Package memtable shares an llrb tree between goroutines.
//
// The tree itself does no locking. Table takes the write lock around
// every mutation and the read lock around every lookup.
package memtable

import (
	"cmp"
	"sync"

	s "github.com/bnclabs/gosettings"

	"github.com/AlonMell/redblackst/internal/llrb"
)

// Defaultsettings for a table.
//
// "maxcount" (int64, default: 0),
//		IsFull() reports true once the table holds this many keys.
//		Zero means unbounded.
//
// "verify" (bool, default: false),
//		Passed down to the tree, see llrb.Defaultsettings().
func Defaultsettings() s.Settings {
	return s.Settings{
		"maxcount": int64(0),
		"verify":   false,
	}
}

// Table represents an ordered in-memory table.
type Table[K cmp.Ordered, V any] struct {
	tree     *llrb.Tree[K, V]
	maxcount int
	mu       sync.RWMutex
}

// New creates a new Table instance.
func New[K cmp.Ordered, V any](name string, setts s.Settings) *Table[K, V] {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	treesetts := s.Settings{"verify": setts.Bool("verify")}
	return &Table[K, V]{
		tree:     llrb.NewWithSettings[K, V](name, treesetts),
		maxcount: int(setts.Int64("maxcount")),
	}
}

// Put adds or updates a key-value pair in the Table.
func (m *Table[K, V]) Put(key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tree.Put(key, value)
}

// Get retrieves a value by key from the Table.
func (m *Table[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Get(key)
}

// Contains checks if a key is present in the Table.
func (m *Table[K, V]) Contains(key K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Contains(key)
}

// Delete removes key from the Table.
func (m *Table[K, V]) Delete(key K) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tree.Delete(key)
}

// DeleteMin removes the smallest key from the Table.
func (m *Table[K, V]) DeleteMin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tree.DeleteMin()
}

// Len returns the number of entries in the Table.
func (m *Table[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Size()
}

// IsFull reports whether the Table reached "maxcount".
func (m *Table[K, V]) IsFull() bool {
	if m.maxcount <= 0 {
		return false
	}
	return m.Len() >= m.maxcount
}

// Stats returns the underlying tree's counters.
func (m *Table[K, V]) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Stats()
}

// ForEach iterates over all entries in the Table in sorted order.
func (m *Table[K, V]) ForEach(fn func(key K, value V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for key, value := range m.tree.InOrder() {
		if !fn(key, value) {
			break
		}
	}
}

type entry[K, V any] struct {
	key   K
	value V
}

// Iterator walks a snapshot of the Table taken when it was created.
type Iterator[K cmp.Ordered, V any] struct {
	table     *Table[K, V]
	entries   []entry[K, V]
	currIndex int
	mu        sync.Mutex
	closed    bool
}

// Iterator creates a new Iterator. Writers block until Close is
// called.
func (m *Table[K, V]) Iterator() *Iterator[K, V] {
	m.mu.RLock() // Will be released when Close() is called

	entries := make([]entry[K, V], 0, m.tree.Size())
	for key, value := range m.tree.InOrder() {
		entries = append(entries, entry[K, V]{key, value})
	}

	return &Iterator[K, V]{
		table:     m,
		entries:   entries,
		currIndex: -1, // Start before the first element
	}
}

// Next advances the iterator to the next entry.
func (it *Iterator[K, V]) Next() bool {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.closed || it.currIndex >= len(it.entries)-1 {
		return false
	}
	it.currIndex++
	return true
}

// Key returns the current key.
func (it *Iterator[K, V]) Key() K {
	return it.entries[it.currIndex].key
}

// Value returns the current value.
func (it *Iterator[K, V]) Value() V {
	return it.entries[it.currIndex].value
}

// Close releases resources held by the iterator.
func (it *Iterator[K, V]) Close() error {
	it.mu.Lock()
	defer it.mu.Unlock()

	if !it.closed {
		it.closed = true
		it.table.mu.RUnlock() // Release lock acquired in Iterator()
	}

	return nil
}
