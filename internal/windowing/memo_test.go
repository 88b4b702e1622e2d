package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoMatchesPureComputation(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
	items := makeItems(1000)

	var memo Memo[string]
	for _, offset := range []float64{0, 10, 2000, 2010, 39999, 1e6, 0} {
		assert.Equal(t, Compute(items, geom, offset), memo.Window(items, geom, offset),
			"offset %v", offset)
	}
}

func TestMemoReusesWindowWithinSameBounds(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
	items := makeItems(1000)

	var memo Memo[string]
	// Offsets 2000 and 2039 floor to the same raw bounds
	first := memo.Window(items, geom, 2000)
	second := memo.Window(items, geom, 2039)
	require.Equal(t, first.StartIndex, second.StartIndex)
	require.Equal(t, first.EndIndex, second.EndIndex)
	assert.Equal(t, first, second)
}

func TestMemoRecomputesWhenLengthChanges(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}

	var memo Memo[string]
	win := memo.Window(makeItems(1000), geom, 0)
	assert.Equal(t, 40000.0, win.TotalHeight)

	win = memo.Window(makeItems(10), geom, 0)
	assert.Equal(t, 400.0, win.TotalHeight)
	assert.Equal(t, 9, win.EndIndex)
}

func TestMemoInvalidate(t *testing.T) {
	t.Parallel()
	geom := Geometry{ItemHeight: 40, ContainerHeight: 400, Overscan: 5}
	items := makeItems(100)

	var memo Memo[string]
	before := memo.Window(items, geom, 0)
	items[0] = "renamed"
	// Same length and bounds, so the stale window comes back until invalidated
	assert.Equal(t, before, memo.Window(items, geom, 0))

	memo.Invalidate()
	after := memo.Window(items, geom, 0)
	assert.Equal(t, "renamed", after.Items[0].Value)
}
