package maze

import (
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// Glyphs used by Render.
const (
	GlyphWall  = '#'
	GlyphFree  = '.'
	GlyphStart = 'S'
)

// String renders the maze as text, one row per Z from Length-1 down to 0,
// X increasing left to right.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze like String and then stamps overlay glyphs on top.
// Overlay cells outside the lattice are ignored.
func (m *Maze) Render(overlay map[grid.Cell]rune) string {
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Length)
	for z := m.Length - 1; z >= 0; z-- {
		for x := 0; x < m.Width; x++ {
			c := grid.Cell{X: x, Z: z}
			if r, ok := overlay[c]; ok {
				sb.WriteRune(r)
				continue
			}
			switch {
			case c == m.Start:
				sb.WriteRune(GlyphStart)
			case m.at(x, z).IsWall:
				sb.WriteRune(GlyphWall)
			default:
				sb.WriteRune(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
