package windowing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	return items
}

func TestGeometryValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid geometry passes", func(t *testing.T) {
		t.Parallel()
		g := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
		require.NoError(t, g.Validate())
	})

	t.Run("zero container height is allowed", func(t *testing.T) {
		t.Parallel()
		g := Geometry{ItemHeight: 40, ContainerHeight: 0, Overscan: 0}
		require.NoError(t, g.Validate())
	})

	t.Run("zero item height fails", func(t *testing.T) {
		t.Parallel()
		g := Geometry{ItemHeight: 0, ContainerHeight: 400}
		require.Error(t, g.Validate())
	})

	t.Run("negative item height fails", func(t *testing.T) {
		t.Parallel()
		g := Geometry{ItemHeight: -1, ContainerHeight: 400}
		require.Error(t, g.Validate())
	})

	t.Run("negative container height fails", func(t *testing.T) {
		t.Parallel()
		g := Geometry{ItemHeight: 40, ContainerHeight: -1}
		require.Error(t, g.Validate())
	})

	t.Run("negative overscan fails", func(t *testing.T) {
		t.Parallel()
		g := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: -1}
		require.Error(t, g.Validate())
	})
}

func TestNewRejectsInvalidGeometry(t *testing.T) {
	t.Parallel()

	_, err := New[string](Geometry{ItemHeight: 0, ContainerHeight: 400})
	require.Error(t, err)

	_, err = New[string](Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: -3})
	require.Error(t, err)

	e, err := New[string](Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: DefaultOverscan})
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.ScrollTop(), "fresh engine starts at offset zero")
}

func TestComputeScenarios(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}

	t.Run("top of a large list", func(t *testing.T) {
		t.Parallel()
		win := Compute(makeItems(1000), geom, 0)
		assert.Equal(t, 0, win.StartIndex)
		assert.Equal(t, 15, win.EndIndex)
		assert.Equal(t, 16, win.Len())
		assert.Equal(t, 40000.0, win.TotalHeight)
	})

	t.Run("middle of a large list", func(t *testing.T) {
		t.Parallel()
		win := Compute(makeItems(1000), geom, 2000)
		assert.Equal(t, 45, win.StartIndex)
		assert.Equal(t, 65, win.EndIndex)
		assert.Equal(t, 40000.0, win.TotalHeight)
	})

	t.Run("list smaller than the viewport", func(t *testing.T) {
		t.Parallel()
		win := Compute(makeItems(3), geom, 0)
		assert.Equal(t, 0, win.StartIndex)
		assert.Equal(t, 2, win.EndIndex)
		assert.Equal(t, 3, win.Len())
		assert.Equal(t, 120.0, win.TotalHeight)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		win := Compute([]string{}, geom, 0)
		assert.Equal(t, 0, win.Len())
		assert.Equal(t, 0.0, win.TotalHeight)
		assert.Equal(t, 0, win.StartIndex)
		assert.Equal(t, -1, win.EndIndex)
	})
}

func TestComputeWindowInvariants(t *testing.T) {
	t.Parallel()

	geoms := []Geometry{
		{ItemHeight: 40, ContainerHeight: 400, Overscan: 5},
		{ItemHeight: 1, ContainerHeight: 24, Overscan: 0},
		{ItemHeight: 17.5, ContainerHeight: 301, Overscan: 2},
		{ItemHeight: 40, ContainerHeight: 0, Overscan: 5},
	}
	sizes := []int{1, 2, 3, 16, 100, 1000}
	offsets := []float64{0, 1, 39, 40, 41, 399.5, 2000, 39999, 40000, 1e6}

	for _, geom := range geoms {
		for _, n := range sizes {
			items := makeItems(n)
			for _, offset := range offsets {
				win := Compute(items, geom, offset)

				require.True(t, win.StartIndex >= 0,
					"start %d for n=%d offset=%v", win.StartIndex, n, offset)
				require.True(t, win.StartIndex <= win.EndIndex,
					"start %d > end %d for n=%d offset=%v", win.StartIndex, win.EndIndex, n, offset)
				require.True(t, win.EndIndex <= n-1,
					"end %d past n-1=%d for offset=%v", win.EndIndex, n-1, offset)
				require.Equal(t, float64(n)*geom.ItemHeight, win.TotalHeight)

				// Contiguous ascending run, no gaps or duplicates
				require.Equal(t, win.EndIndex-win.StartIndex+1, win.Len())
				for i, item := range win.Items {
					require.Equal(t, win.StartIndex+i, item.Index)
					require.Equal(t, float64(item.Index)*geom.ItemHeight, item.Start)
					require.Equal(t, item.Start+geom.ItemHeight, item.End)
					require.Equal(t, items[item.Index], item.Value)
				}
			}
		}
	}
}

func TestOnScroll(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
	items := makeItems(1000)

	t.Run("negative offset clamps to zero", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		e.OnScroll(-50)
		assert.Equal(t, 0.0, e.ScrollTop())
		assert.Equal(t, Compute(items, geom, 0), e.Window(items))
	})

	t.Run("repeated identical offsets are idempotent", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		e.OnScroll(2000)
		first := e.Window(items)
		e.OnScroll(2000)
		assert.Equal(t, first, e.Window(items))
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		e.OnScroll(800)
		e.OnScroll(4000)
		e.OnScroll(1200)
		assert.Equal(t, 1200.0, e.ScrollTop())
		assert.Equal(t, Compute(items, geom, 1200), e.Window(items))
	})

	t.Run("no upper clamp on the offset itself", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		e.OnScroll(1e9)
		assert.Equal(t, 1e9, e.ScrollTop())
		win := e.Window(items)
		assert.Equal(t, 999, win.EndIndex, "overscroll lands on the end of the range")
		assert.Equal(t, 999, win.StartIndex)
	})
}

func TestScrollToIndex(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
	items := makeItems(1000)

	t.Run("target item is always in the window", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		for _, i := range []int{0, 1, 42, 500, 998, 999} {
			e.ScrollToIndex(i)
			win := e.Window(items)
			assert.GreaterOrEqual(t, i, win.StartIndex, "index %d", i)
			assert.LessOrEqual(t, i, win.EndIndex, "index %d", i)
		}
	})

	t.Run("top-aligns the target", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		e.ScrollToIndex(50)
		assert.Equal(t, 2000.0, e.ScrollTop())
	})

	t.Run("out of range indices clamp instead of failing", func(t *testing.T) {
		t.Parallel()
		e, err := New[string](geom)
		require.NoError(t, err)

		e.ScrollToIndex(-3)
		assert.Equal(t, 0.0, e.ScrollTop())

		e.ScrollToIndex(5000)
		win := e.Window(items)
		assert.Equal(t, 999, win.EndIndex)
	})
}

func TestWindowRereadsCollectionLength(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
	e, err := New[string](geom)
	require.NoError(t, err)

	e.ScrollToIndex(90)
	win := e.Window(makeItems(100))
	assert.Equal(t, 99, win.EndIndex)
	assert.Equal(t, 4000.0, win.TotalHeight)

	// Items removed between computations: same offset, shorter collection
	win = e.Window(makeItems(50))
	assert.Equal(t, 49, win.EndIndex)
	assert.Equal(t, 49, win.StartIndex)
	assert.Equal(t, 2000.0, win.TotalHeight)

	// And grown again
	win = e.Window(makeItems(200))
	assert.Equal(t, 85, win.StartIndex)
	assert.Equal(t, 8000.0, win.TotalHeight)
}
