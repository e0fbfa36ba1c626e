package link

import "math"

// Cell is one character of a rasterized gutter.
type Cell struct {
	Rune rune
	Hot  bool
}

const (
	runeFlat  = '─'
	runeDown  = '╲'
	runeUp    = '╱'
	runeCross = '┼'
)

// Raster maps segments onto a grid of character cells. Cell (col, row) covers
// the unit square whose top-left corner is (Left+col, row) in the same
// coordinate space the segments use.
type Raster struct {
	Left   int
	Width  int
	Height int
}

// Draw rasterizes segs. Cells touched by a segment for which hot returns true
// are marked Hot. Blank cells hold a space.
func (r Raster) Draw(segs []Segment, hot func(Segment) bool) [][]Cell {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	grid := make([][]Cell, r.Height)
	for row := range grid {
		grid[row] = make([]Cell, r.Width)
		for col := range grid[row] {
			grid[row][col].Rune = ' '
		}
	}

	for _, seg := range segs {
		minX, maxX := math.Min(seg.X1, seg.X2), math.Max(seg.X1, seg.X2)
		if maxX-minX < 1e-9 {
			continue
		}
		glyph := runeFlat
		switch {
		case seg.Y2 > seg.Y1 && seg.X2 > seg.X1, seg.Y2 < seg.Y1 && seg.X2 < seg.X1:
			glyph = runeDown
		case seg.Y2 != seg.Y1:
			glyph = runeUp
		}
		isHot := hot != nil && hot(seg)
		yAt := func(x float64) float64 {
			return seg.Y1 + (x-seg.X1)*(seg.Y2-seg.Y1)/(seg.X2-seg.X1)
		}

		for col := 0; col < r.Width; col++ {
			xa := math.Max(float64(r.Left+col), minX)
			xb := math.Min(float64(r.Left+col+1), maxX)
			if xb <= xa {
				continue
			}
			ya, yb := yAt(xa), yAt(xb)
			top, bottom := math.Min(ya, yb), math.Max(ya, yb)
			r0 := int(math.Floor(top))
			r1 := int(math.Floor(bottom - 1e-9))
			if r1 < r0 {
				r1 = r0
			}
			for row := r0; row <= r1; row++ {
				if row < 0 || row >= r.Height {
					continue
				}
				c := &grid[row][col]
				switch c.Rune {
				case ' ', glyph:
					c.Rune = glyph
				default:
					c.Rune = runeCross
				}
				c.Hot = c.Hot || isHot
			}
		}
	}
	return grid
}
