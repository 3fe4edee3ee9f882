package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/maze"
)

var (
	colorWall  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorFree  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorPath  = color.RGBA{R: 0x30, G: 0x90, B: 0xe0, A: 0xff}
	colorStart = color.RGBA{R: 0x20, G: 0xc0, B: 0x40, A: 0xff}
)

// renderImage draws one pixel per cell, north up, and stamps the route.
func renderImage(m *maze.Maze, path astar.Path) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Length))
	for x := 0; x < m.Width; x++ {
		for z := 0; z < m.Length; z++ {
			c, _ := m.Cell(x, z)
			col := colorFree
			if c.IsWall {
				col = colorWall
			}
			img.SetRGBA(x, m.Length-1-z, col)
		}
	}
	for _, n := range path.Steps() {
		c := m.Frame.CellOf(n.Position)
		if m.InBounds(c.X, c.Z) {
			img.SetRGBA(c.X, m.Length-1-c.Z, colorPath)
		}
	}
	img.SetRGBA(m.Start.X, m.Length-1-m.Start.Z, colorStart)

	return img
}

// writePNG renders the maze, scales it by scale with nearest-neighbor
// sampling so cells stay crisp, and encodes it to path.
func writePNG(path string, m *maze.Maze, route astar.Path, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := renderImage(m, route)
	out := image.NewRGBA(image.Rect(0, 0, m.Width*scale, m.Length*scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
