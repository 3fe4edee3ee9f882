package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// BenchmarkFindPath_OpenGrid routes corner to corner on an empty 200×200 area.
func BenchmarkFindPath_OpenGrid(b *testing.B) {
	bounds := grid.Bounds{Max: grid.P(200, 200)}
	f, err := astar.NewFinder(grid.Free, bounds, astar.WithBoundsMode(astar.BoundsStrict))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := f.FindPath(grid.P(0, 0), grid.P(199, 199)); !ok {
			b.Fatal("no path")
		}
	}
}

// BenchmarkFindPath_Maze routes corner to corner through a 101×101 maze.
func BenchmarkFindPath_Maze(b *testing.B) {
	m, err := maze.Generate(101, 101, rand.New(rand.NewSource(7)))
	if err != nil {
		b.Fatal(err)
	}
	f, err := astar.NewFinder(m.Occupancy(), m.Bounds())
	if err != nil {
		b.Fatal(err)
	}
	from, to := grid.P(0, 0), grid.P(100, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := f.FindPath(from, to); !ok {
			b.Fatal("no path")
		}
	}
}
