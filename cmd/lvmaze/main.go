// Command lvmaze generates a maze, routes from its start to a target and
// prints the result. With -png it also writes a scaled bitmap of the maze
// with the route drawn in.
//
// Usage:
//
//	lvmaze [-config world.yaml] [-width 10] [-length 10] [-seed 42]
//	       [-to x,z] [-strict] [-png out.png] [-scale 8]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/world"
)

// Overlay glyphs for the printed route.
const (
	glyphStep   = '*'
	glyphTarget = 'T'
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	width := flag.Int("width", 0, "maze width (UI size, overrides config)")
	length := flag.Int("length", 0, "maze length (UI size, overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	to := flag.String("to", "", "target world position as x,z (default: farthest free cell)")
	strict := flag.Bool("strict", false, "confine searches to [min,max) bounds")
	pngPath := flag.String("png", "", "write a PNG snapshot to this file")
	scale := flag.Int("scale", 8, "pixels per cell in the PNG snapshot")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Loading config failed: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Maze.Width = *width
		case "length":
			cfg.Maze.Length = *length
		case "seed":
			cfg.Seed = *seed
		case "strict":
			if *strict {
				cfg.Pathfinder.BoundsMode = astar.BoundsStrict.String()
			}
		}
	})

	var opts []world.Option
	opts = append(opts, world.WithLogger(log.Default()))
	if cfg.Seed != 0 {
		opts = append(opts, world.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	w, err := world.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Building world failed: %v", err)
	}

	target := w.Maze().FarthestFree(w.Agent())
	if *to != "" {
		if target, err = parsePos(*to); err != nil {
			log.Fatalf("Bad -to value: %v", err)
		}
	}

	path, ok := w.RequestPath(target)
	m := w.Maze()
	fmt.Print(m.Render(overlay(m, path)))
	if ok {
		fmt.Printf("path %v -> %v: %d steps, cost %g\n", w.Agent(), target, len(path.Steps()), path.Cost())
	} else {
		fmt.Printf("no path %v -> %v\n", w.Agent(), target)
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, m, path, *scale); err != nil {
			log.Fatalf("Writing PNG failed: %v", err)
		}
		log.Printf("Wrote %s", *pngPath)
	}
}

// parsePos reads "x,z" into a world position.
func parsePos(s string) (grid.Pos, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Pos{}, fmt.Errorf("want x,z, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return grid.Pos{}, err
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return grid.Pos{}, err
	}

	return grid.P(x, z), nil
}

// overlay marks the route's steps and target in lattice coordinates.
func overlay(m *maze.Maze, path astar.Path) map[grid.Cell]rune {
	out := make(map[grid.Cell]rune, path.Len())
	steps := path.Steps()
	for i, n := range steps {
		g := glyphStep
		if i == len(steps)-1 {
			g = glyphTarget
		}
		out[m.Frame.CellOf(n.Position)] = g
	}

	return out
}
