package windowing

import (
	"fmt"
	"math"
)

// DefaultOverscan is the number of extra rows rendered beyond each visible
// edge when the caller does not choose its own buffer size.
const DefaultOverscan = 5

// Geometry describes the fixed layout of a virtualized list: a uniform item
// height, the viewport height, and the overscan buffer. It is immutable for
// the lifetime of an engine.
type Geometry struct {
	ItemHeight      float64
	ContainerHeight float64
	Overscan        int
}

// Validate checks the geometry for configuration errors
func (g Geometry) Validate() error {
	if g.ItemHeight <= 0 {
		return fmt.Errorf("item height must be positive, got %v", g.ItemHeight)
	}
	if g.ContainerHeight < 0 {
		return fmt.Errorf("container height must not be negative, got %v", g.ContainerHeight)
	}
	if g.Overscan < 0 {
		return fmt.Errorf("overscan must not be negative, got %d", g.Overscan)
	}
	return nil
}

// bounds returns the clamped inclusive index range covered by the viewport
// at the given offset, for a collection of n items. Returns (0, -1) when the
// collection is empty.
func (g Geometry) bounds(n int, scrollTop float64) (int, int) {
	if n == 0 {
		return 0, -1
	}

	rawStart := int(math.Floor(scrollTop / g.ItemHeight))
	start := rawStart - g.Overscan
	if start < 0 {
		start = 0
	}

	rawEnd := int(math.Floor((scrollTop + g.ContainerHeight) / g.ItemHeight))
	end := rawEnd + g.Overscan
	if end > n-1 {
		end = n - 1
	}

	// An offset far past the content would put start beyond the last item;
	// clamp so the window stays a valid end-of-range run.
	if start > end {
		start = end
	}
	return start, end
}

// Item is one computed row of a window: the item itself plus the pixel
// offsets it would occupy if fully laid out.
type Item[T any] struct {
	Index int
	Start float64
	End   float64
	Value T
}

// Window is the result of one windowing computation: a contiguous ascending
// run of items covering [StartIndex, EndIndex], plus the laid-out height of
// the whole collection. An empty collection yields StartIndex 0, EndIndex -1.
type Window[T any] struct {
	Items       []Item[T]
	StartIndex  int
	EndIndex    int
	TotalHeight float64
}

// Len returns the number of items in the window
func (w Window[T]) Len() int { return len(w.Items) }

// Compute derives the visible window for the given collection, geometry and
// scroll offset. It is a pure function: no state is read or written, and all
// arithmetic is clamped, so it cannot fail once the geometry is valid.
func Compute[T any](items []T, geom Geometry, scrollTop float64) Window[T] {
	n := len(items)
	if n == 0 {
		return Window[T]{StartIndex: 0, EndIndex: -1}
	}

	start, end := geom.bounds(n, scrollTop)
	win := Window[T]{
		Items:       make([]Item[T], 0, end-start+1),
		StartIndex:  start,
		EndIndex:    end,
		TotalHeight: float64(n) * geom.ItemHeight,
	}
	for i := start; i <= end; i++ {
		top := float64(i) * geom.ItemHeight
		win.Items = append(win.Items, Item[T]{
			Index: i,
			Start: top,
			End:   top + geom.ItemHeight,
			Value: items[i],
		})
	}
	return win
}

// Engine owns the scroll offset for one virtualized list. It has exactly one
// piece of mutable state, scrollTop, written by OnScroll and ScrollToIndex
// and read by Window. The collection itself stays with the caller and its
// length is re-read on every computation, so items may be added or removed
// between calls.
type Engine[T any] struct {
	geom      Geometry
	scrollTop float64
}

// New creates an engine for the given geometry. Invalid geometry is fatal
// here rather than at computation time.
func New[T any](geom Geometry) (*Engine[T], error) {
	if err := geom.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	return &Engine[T]{geom: geom}, nil
}

// Geometry returns the engine's fixed geometry
func (e *Engine[T]) Geometry() Geometry { return e.geom }

// ScrollTop returns the current scroll offset
func (e *Engine[T]) ScrollTop() float64 { return e.scrollTop }

// OnScroll stores a new scroll offset. Negative offsets are clamped to zero;
// there is deliberately no upper clamp, so momentum overscroll past the end
// of the content simply yields an end-of-range window on the next read.
func (e *Engine[T]) OnScroll(offset float64) {
	if offset < 0 {
		offset = 0
	}
	e.scrollTop = offset
}

// ScrollToIndex positions the given item's top edge at the viewport's top
// edge. Out-of-range indices are tolerated; the computed window clamps to
// the nearest valid range.
func (e *Engine[T]) ScrollToIndex(index int) {
	e.OnScroll(float64(index) * e.geom.ItemHeight)
}

// Window computes the window for the current scroll offset
func (e *Engine[T]) Window(items []T) Window[T] {
	return Compute(items, e.geom, e.scrollTop)
}
