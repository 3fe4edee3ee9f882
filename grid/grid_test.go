package grid_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
)

//----------------------------------------------------------------------------//
// Frame Tests
//----------------------------------------------------------------------------//

func TestNewFrame_BadTileSize(t *testing.T) {
	for _, ts := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := grid.NewFrame(grid.Pos{}, ts)
		assert.ErrorIs(t, err, grid.ErrBadTileSize, "tile size %v", ts)
	}
}

func TestFrame_RoundTrip(t *testing.T) {
	f, err := grid.NewFrame(grid.P(-10, -10), 2)
	require.NoError(t, err)

	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			c := grid.C(x, z)
			p := f.World(c)
			assert.Equal(t, c, f.CellOf(p))
			assert.True(t, f.Aligned(p))
		}
	}
}

func TestFrame_SnapRoundsToNearestTile(t *testing.T) {
	f := grid.DefaultFrame()
	cases := []struct {
		in, want grid.Pos
	}{
		{grid.P(0.4, 0.6), grid.P(0, 1)},
		{grid.P(-0.4, -0.6), grid.P(0, -1)},
		{grid.P(2.5, -2.5), grid.P(3, -3)},
		{grid.P(7, 3), grid.P(7, 3)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f.Snap(tc.in), "Snap(%v)", tc.in)
	}
	assert.False(t, f.Aligned(grid.P(0.25, 0)))
}

func TestPos_Manhattan(t *testing.T) {
	assert.Equal(t, 7.0, grid.P(1, -2).Manhattan(grid.P(-2, 2)))
	assert.Equal(t, 0.0, grid.P(3, 3).Manhattan(grid.P(3, 3)))
}

//----------------------------------------------------------------------------//
// Bounds Tests
//----------------------------------------------------------------------------//

func TestBoundsForMaze(t *testing.T) {
	b := grid.BoundsForMaze(10, 4, 1)
	assert.Equal(t, grid.P(-10, -4), b.Min)
	assert.Equal(t, grid.P(9, 3), b.Max)

	w, l := b.Dimensions(1)
	assert.Equal(t, 19, w)
	assert.Equal(t, 7, l)
}

func TestBoundsForMaze_FractionalTile(t *testing.T) {
	b := grid.BoundsForMaze(10, 4, 0.5)
	assert.Equal(t, grid.P(-5, -2), b.Min)
	assert.Equal(t, grid.P(4.5, 1.5), b.Max)

	for _, tile := range []float64{0.5, 0.3, 0.25, 0.01, 2.5} {
		w, l := grid.BoundsForMaze(10, 4, tile).Dimensions(tile)
		assert.Equal(t, 19, w, "tile %g", tile)
		assert.Equal(t, 7, l, "tile %g", tile)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := grid.Bounds{Min: grid.P(0, 0), Max: grid.P(5, 5)}
	assert.True(t, b.Contains(grid.P(0, 0)))
	assert.True(t, b.Contains(grid.P(4, 4)))
	assert.False(t, b.Contains(grid.P(5, 0)))
	assert.False(t, b.Contains(grid.P(0, -1)))
}

func TestBounds_ContainsEitherAcceptsEverything(t *testing.T) {
	b := grid.Bounds{Min: grid.P(0, 0), Max: grid.P(5, 5)}
	for _, p := range []grid.Pos{grid.P(-100, 3), grid.P(3, 100), grid.P(5, 5), grid.P(-1, -1)} {
		assert.True(t, b.ContainsEither(p), "ContainsEither(%v)", p)
	}
	// Degenerate bounds with Min == Max still reject the shared coordinate.
	d := grid.Bounds{Min: grid.P(2, 2), Max: grid.P(2, 2)}
	assert.False(t, d.ContainsEither(grid.P(2, 2)))
}

//----------------------------------------------------------------------------//
// OccupancyMap Tests
//----------------------------------------------------------------------------//

func TestOccupancyMap_BlockUnblock(t *testing.T) {
	m := grid.NewOccupancyMap(grid.DefaultFrame())
	m.Block(grid.C(1, 1), grid.C(2, 1))
	m.BlockAt(grid.P(3.2, 0.9))

	assert.Equal(t, 3, m.Len())
	assert.True(t, m.IsOccupied(grid.P(1, 1)))
	assert.True(t, m.IsOccupied(grid.P(3, 1)))
	assert.False(t, m.IsOccupied(grid.P(0, 0)))
	assert.Equal(t, []grid.Cell{{1, 1}, {2, 1}, {3, 1}}, m.Cells())

	m.Unblock(grid.C(2, 1), grid.C(9, 9))
	assert.False(t, m.Blocked(grid.C(2, 1)))
	m.Clear()
	assert.Zero(t, m.Len())
}

func TestOccupancyMap_SnapshotIsStable(t *testing.T) {
	m := grid.NewOccupancyMap(grid.DefaultFrame())
	m.Block(grid.C(0, 0))
	snap := m.Snapshot()

	m.Block(grid.C(1, 0))
	m.Unblock(grid.C(0, 0))

	assert.True(t, snap.IsOccupied(grid.P(0, 0)))
	assert.False(t, snap.IsOccupied(grid.P(1, 0)))
	assert.Equal(t, 1, snap.Len())
}

func TestOccupancyMap_Concurrent(t *testing.T) {
	m := grid.NewOccupancyMap(grid.DefaultFrame())
	const n = 200
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			m.Block(grid.C(i, 0))
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = m.IsOccupied(grid.P(float64(i), 0))
		}(i)
	}
	wg.Wait()
	require.Equal(t, n, m.Len())
}

func TestOccupancyFunc(t *testing.T) {
	var occ grid.Occupancy = grid.OccupancyFunc(func(p grid.Pos) bool { return p.X < 0 })
	assert.True(t, occ.IsOccupied(grid.P(-1, 0)))
	assert.False(t, occ.IsOccupied(grid.P(1, 0)))
	assert.False(t, grid.Free.IsOccupied(grid.P(-1, 0)))
}
