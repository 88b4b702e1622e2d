package windowing

import "sync"

// memoKey identifies a computed window. Two computations with the same key
// produce identical windows as long as the underlying items are unchanged,
// which is the caller's contract for using a memo.
type memoKey struct {
	n          int
	start      int
	end        int
	itemHeight float64
}

// Memo caches the most recent window so that successive scroll offsets that
// land in the same index range skip re-slicing. It is an optional layer:
// correctness never depends on it, and a zero Memo is ready to use.
type Memo[T any] struct {
	mu     sync.Mutex
	key    memoKey
	window Window[T]
	valid  bool
}

// Window returns the cached window when the computed bounds match the last
// call, otherwise recomputes and stores the result.
func (m *Memo[T]) Window(items []T, geom Geometry, scrollTop float64) Window[T] {
	n := len(items)
	start, end := geom.bounds(n, scrollTop)
	key := memoKey{n: n, start: start, end: end, itemHeight: geom.ItemHeight}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.key == key {
		return m.window
	}
	m.window = Compute(items, geom, scrollTop)
	m.key = key
	m.valid = true
	return m.window
}

// Invalidate drops the cached window, forcing the next call to recompute.
// Callers use this after mutating items in place without changing length.
func (m *Memo[T]) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
}
