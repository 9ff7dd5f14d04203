package canvas

import (
	"image/color"
	"math"
)

// DrawLine rasterizes the segment from a to b with Bresenham's integer
// algorithm: the decision variable is updated by comparing twice the
// accumulated error against dx and dy each step, giving pixel-exact
// lines with no float drift.
func DrawLine(b *Buffer, from, to Pixel, c color.NRGBA) {
	x0 := int(math.Round(from.X))
	y0 := int(math.Round(from.Y))
	x1 := int(math.Round(to.X))
	y1 := int(math.Round(to.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		b.SetPixelAt(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLineClipped rasterizes the segment with fixed-step parametric
// interpolation, exiting early once the line leaves the chart's
// circular clip region. Used for constellation-grid rendering where
// polylines routinely run off the disk edge.
func DrawLineClipped(b *Buffer, from, to Pixel, c color.NRGBA, s Settings, steps int) {
	if steps < 1 {
		steps = 1
	}

	entered := false
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := Pixel{
			X: from.X + t*(to.X-from.X),
			Y: from.Y + t*(to.Y-from.Y),
		}
		if !InsideCircle(p, s) {
			if entered {
				return
			}
			continue
		}
		entered = true
		b.SetPixelAt(int(math.Round(p.X)), int(math.Round(p.Y)), c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
