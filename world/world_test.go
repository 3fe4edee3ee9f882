package world_test

import (
	"bytes"
	"log"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/world"
)

func newWorld(t *testing.T, seed int64, opts ...world.Option) *world.World {
	t.Helper()
	cfg := config.Default()
	cfg.Maze = config.Maze{Width: 6, Length: 5}
	opts = append([]world.Option{world.WithRand(rand.New(rand.NewSource(seed)))}, opts...)
	w, err := world.New(cfg, opts...)
	require.NoError(t, err)

	return w
}

// farthestFree is the free cell farthest from the agent.
func farthestFree(w *world.World) grid.Pos {
	return w.Maze().FarthestFree(w.Agent())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.Width = 2
	_, err := world.New(cfg)
	assert.ErrorIs(t, err, config.ErrBadConfig)
}

func TestNew_AgentOnStart(t *testing.T) {
	w := newWorld(t, 1)
	m := w.Maze()
	assert.Equal(t, m.StartPosition, w.Agent())
	assert.False(t, w.Occupancy().IsOccupied(w.Agent()))
	assert.Equal(t, grid.BoundsForMaze(6, 5, 1), w.Bounds())
	assert.Equal(t, 11, m.Width)
	assert.Equal(t, 9, m.Length)
	assert.Nil(t, w.Route())
}

func TestNew_FractionalTileSize(t *testing.T) {
	cfg := config.Default()
	cfg.TileSize = 0.5
	w, err := world.New(cfg, world.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	m := w.Maze()
	assert.Equal(t, 19, m.Width)
	assert.Equal(t, 19, m.Length)
	assert.Equal(t, grid.P(-5, -5), w.Bounds().Min)
	assert.Equal(t, grid.P(4.5, 4.5), w.Bounds().Max)
	assert.False(t, w.Occupancy().IsOccupied(w.Agent()))

	target := farthestFree(w)
	path, ok := w.RequestPath(target)
	require.True(t, ok)
	for _, p := range path.Positions() {
		assert.Equal(t, m.Frame.Snap(p), p)
	}
	for {
		if _, moved := w.Step(); !moved {
			break
		}
	}
	assert.Equal(t, target, w.Agent())
}

func TestRequestPath_WalkToTarget(t *testing.T) {
	w := newWorld(t, 2)
	target := farthestFree(w)

	path, ok := w.RequestPath(target)
	require.True(t, ok)
	require.Greater(t, path.Len(), 1)
	assert.Equal(t, path.Positions()[1:], w.Route())

	steps := 0
	for {
		_, moved := w.Step()
		if !moved {
			break
		}
		steps++
	}
	assert.Equal(t, path.Len()-1, steps)
	assert.Equal(t, target, w.Agent())
	assert.Nil(t, w.Route())
}

func TestRequestPath_WallTargetKeepsRoute(t *testing.T) {
	w := newWorld(t, 3)
	target := farthestFree(w)
	_, ok := w.RequestPath(target)
	require.True(t, ok)
	before := w.Route()

	wall := w.Maze().WallPositions()[0]
	_, ok = w.RequestPath(wall)
	assert.False(t, ok)
	assert.Equal(t, before, w.Route())
}

func TestRequestPath_OutsideMazeIsBlocked(t *testing.T) {
	w := newWorld(t, 4)
	b := w.Bounds()
	_, ok := w.RequestPath(grid.P(b.Max.X+3, b.Max.Z+3))
	assert.False(t, ok, "the perimeter ring seals the maze")
}

func TestBlock_DynamicObstacle(t *testing.T) {
	w := newWorld(t, 5)
	target := farthestFree(w)
	w.Block(target)
	_, ok := w.RequestPath(target)
	assert.False(t, ok)

	w.Unblock(target)
	_, ok = w.RequestPath(target)
	assert.True(t, ok)
}

func TestRebuild_ResetsAgentAndRoute(t *testing.T) {
	var buf bytes.Buffer
	w := newWorld(t, 6, world.WithLogger(log.New(&buf, "", 0)))
	_, ok := w.RequestPath(farthestFree(w))
	require.True(t, ok)

	require.NoError(t, w.Rebuild(8, 3))
	m := w.Maze()
	assert.Equal(t, 15, m.Width)
	assert.Equal(t, 5, m.Length)
	assert.Equal(t, m.StartPosition, w.Agent())
	assert.Nil(t, w.Route())
	assert.Equal(t, config.Maze{Width: 8, Length: 3}, w.Config().Maze)
	assert.Contains(t, buf.String(), "rebuilt 15x5 maze")

	assert.ErrorIs(t, w.Rebuild(1, 5), config.ErrBadConfig)
}

func TestWorld_StrictBoundsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Maze = config.Maze{Width: 4, Length: 4}
	cfg.Pathfinder.BoundsMode = astar.BoundsStrict.String()
	w, err := world.New(cfg, world.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)

	path, ok := w.RequestPath(farthestFree(w))
	require.True(t, ok)
	for _, p := range path.Positions() {
		assert.True(t, w.Bounds().Contains(p))
	}
}

func TestWorld_ConcurrentRequestsAndRebuilds(t *testing.T) {
	w := newWorld(t, 10)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w.RequestPath(farthestFree(w))
			w.Step()
		}()
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, w.Rebuild(3+i%5, 3+i%4))
		}(i)
	}
	wg.Wait()
	assert.False(t, w.Occupancy().IsOccupied(w.Agent()))
}

func TestRoute_Cursor(t *testing.T) {
	path := astar.Path{Nodes: []astar.Node{
		{Position: grid.P(0, 0), Source: astar.NoSource},
		{Position: grid.P(1, 0), Source: 0, CostFromOrigin: 1},
		{Position: grid.P(2, 0), Source: 1, CostFromOrigin: 2},
	}}
	r := world.NewRoute(path)
	n, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, grid.P(1, 0), n.Position)
	assert.Equal(t, []grid.Pos{grid.P(1, 0), grid.P(2, 0)}, r.Remaining())

	assert.True(t, r.Advance())
	assert.False(t, r.Advance())
	assert.True(t, r.Done())
	_, ok = r.Current()
	assert.False(t, ok)
	assert.Nil(t, r.Remaining())

	single := world.NewRoute(astar.Path{Nodes: path.Nodes[:1]})
	assert.True(t, single.Done())
}
