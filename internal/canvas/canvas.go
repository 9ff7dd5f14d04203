// Package canvas maps normalized projection-plane points to pixel
// coordinates and rasterizes chart primitives into an RGBA buffer.
// Plane points (sky.Point) and pixel positions (Pixel) are distinct
// types so the two spaces cannot be conflated.
package canvas

import (
	"math"

	"github.com/litescript/ls-skychart/internal/sky"
)

// Settings configures the chart's pixel mapping.
type Settings struct {
	Width            uint32
	Height           uint32
	BackgroundRadius float64 // clip-circle radius in pixels
	ZoomFactor       float64 // scales the projection radius
	DrawNorthUp      bool    // flips the vertical sign convention
	DragSpeed        float64 // radians per drag gesture
	FOV              float64 // radians, reserved for the 3D path
}

// DefaultSettings returns a square chart sized to the given edge.
func DefaultSettings(edge uint32) Settings {
	return Settings{
		Width:            edge,
		Height:           edge,
		BackgroundRadius: float64(edge) * 0.45,
		ZoomFactor:       1,
		DrawNorthUp:      true,
		DragSpeed:        0.05,
		FOV:              math.Pi / 3,
	}
}

// Pixel is a position in pixel units.
type Pixel struct {
	X float64
	Y float64
}

func (s Settings) center() (float64, float64) {
	return float64(s.Width) / 2, float64(s.Height) / 2
}

func (s Settings) dir() float64 {
	if s.DrawNorthUp {
		return 1
	}
	return -1
}

// Translate maps a normalized plane point to pixel coordinates.
func Translate(pt sky.Point, s Settings) Pixel {
	cx, cy := s.center()
	d := s.dir()
	return Pixel{
		X: cx + d*s.BackgroundRadius*s.ZoomFactor*pt.X,
		Y: cy - d*s.BackgroundRadius*s.ZoomFactor*pt.Y,
	}
}

// Untranslate is the exact algebraic inverse of Translate.
func Untranslate(px Pixel, s Settings) sky.Point {
	cx, cy := s.center()
	d := s.dir()
	k := d * s.BackgroundRadius * s.ZoomFactor
	return sky.Point{
		X: (px.X - cx) / k,
		Y: (cy - px.Y) / k,
	}
}

// InsideCircle reports whether the pixel lies within the chart's
// circular clip region.
func InsideCircle(px Pixel, s Settings) bool {
	cx, cy := s.center()
	return math.Hypot(px.X-cx, px.Y-cy) <= s.BackgroundRadius
}

// InsidePolygon reports whether pt lies inside the polygon by casting
// a horizontal ray toward +x and counting edge crossings. The closing
// edge (last vertex back to first) is handled by the index wrap.
func InsidePolygon(poly []sky.Point, pt sky.Point) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			t := (pt.Y - pi.Y) / (pj.Y - pi.Y)
			if pt.X < pi.X+t*(pj.X-pi.X) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
