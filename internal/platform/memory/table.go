package memory

import "sync"

// table is an ordered collection of records keyed by a store-assigned ID.
// Rows keep insertion order and IDs come from a counter that starts at 1
// and is never reused, not even after a delete.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   []row[T]
}

type row[T any] struct {
	id    int64
	value T
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1}
}

// list returns a snapshot of all rows in insertion order. Never nil.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r.value)
	}
	return out
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		return t.rows[i].value, true
	}
	var zero T
	return zero, false
}

// insert reserves the next ID, builds the record for it and appends it.
func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	value := build(id)
	t.rows = append(t.rows, row[T]{id: id, value: value})
	return value
}

// update replaces the record with the result of fn under the write lock,
// so readers never see a partially merged record.
func (t *table[T]) update(id int64, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	t.rows[i].value = fn(t.rows[i].value)
	return t.rows[i].value, true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

// reset drops every row and restarts ID assignment at 1.
func (t *table[T]) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = nil
	t.nextID = 1
}

// indexOf must be called with the lock held.
func (t *table[T]) indexOf(id int64) int {
	for i := range t.rows {
		if t.rows[i].id == id {
			return i
		}
	}
	return -1
}
