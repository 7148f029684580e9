package terminal

import (
	"PongGL/render"

	"github.com/go-gl/mathgl/mgl32"
)

// Canvas rasterizes projected triangles onto a grid of terminal cells. A cell is
// filled when its centre lies inside a triangle.
type Canvas struct {
	cols, rows int
	cells      []bool
}

var _ render.TriangleSink = (*Canvas)(nil)

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Resize changes the grid and clears it.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	if cap(c.cells) < cols*rows {
		c.cells = make([]bool, cols*rows)
	} else {
		c.cells = c.cells[:cols*rows]
	}
	c.Clear()
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = false
	}
}

// Filled reports whether cell (col, row) is covered; row 0 is the top line.
func (c *Canvas) Filled(col, row int) bool {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return false
	}
	return c.cells[row*c.cols+col]
}

// toCell maps normalized device coordinates to cell space, y pointing down.
func (c *Canvas) toCell(ndc mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * float32(c.cols),
		(1 - ndc.Y()) / 2 * float32(c.rows),
	}
}

func (c *Canvas) Triangle(t render.Triangle) {
	if c.cols == 0 || c.rows == 0 {
		return
	}
	a, b, d := c.toCell(t.NDC[0]), c.toCell(t.NDC[1]), c.toCell(t.NDC[2])

	area := edge(a, b, d)
	if area == 0 {
		return
	}

	minX, maxX := bounds(a.X(), b.X(), d.X(), c.cols)
	minY, maxY := bounds(a.Y(), b.Y(), d.Y(), c.rows)

	for row := minY; row <= maxY; row++ {
		for col := minX; col <= maxX; col++ {
			p := mgl32.Vec2{float32(col) + 0.5, float32(row) + 0.5}
			w0 := edge(b, d, p)
			w1 := edge(d, a, p)
			w2 := edge(a, b, p)
			//兩種繞向都算
			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 ||
				area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				c.cells[row*c.cols+col] = true
			}
		}
	}
}

func edge(a, b, p mgl32.Vec2) float32 {
	return (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
}

// bounds returns the cell range touched by three coordinates, clipped to [0, limit).
func bounds(a, b, c float32, limit int) (int, int) {
	lo := mgl32.Clamp(minf(a, minf(b, c)), 0, float32(limit))
	hi := mgl32.Clamp(maxf(a, maxf(b, c)), 0, float32(limit))

	first, last := int(lo), int(hi)
	if last >= limit {
		last = limit - 1
	}
	return first, last
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
