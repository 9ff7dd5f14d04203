package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/litescript/ls-skychart/internal/sky"
)

func testSettings() Settings {
	return Settings{
		Width:            800,
		Height:           600,
		BackgroundRadius: 250,
		ZoomFactor:       1.5,
		DrawNorthUp:      true,
	}
}

func TestTranslateCenter(t *testing.T) {
	s := testSettings()
	px := Translate(sky.Point{}, s)
	if px.X != 400 || px.Y != 300 {
		t.Errorf("origin maps to %+v, want canvas center (400,300)", px)
	}
}

func TestTranslateNorthUpFlip(t *testing.T) {
	s := testSettings()
	pt := sky.Point{X: 0.5, Y: 0.5}

	up := Translate(pt, s)
	s.DrawNorthUp = false
	down := Translate(pt, s)

	// Flipping the convention mirrors both axes about the center.
	if math.Abs((up.X-400)+(down.X-400)) > 1e-9 {
		t.Errorf("x not mirrored: up=%v down=%v", up.X, down.X)
	}
	if math.Abs((up.Y-300)+(down.Y-300)) > 1e-9 {
		t.Errorf("y not mirrored: up=%v down=%v", up.Y, down.Y)
	}

	// North-up: +y in the plane goes up the screen (smaller pixel y).
	if up.Y >= 300 {
		t.Errorf("north-up +y pixel = %v, want above center", up.Y)
	}
}

func TestTranslateUntranslateRoundTrip(t *testing.T) {
	for _, northUp := range []bool{true, false} {
		s := testSettings()
		s.DrawNorthUp = northUp

		for _, pt := range []sky.Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: -0.3, Y: 0.7},
			{X: 0.123, Y: -0.987},
		} {
			back := Untranslate(Translate(pt, s), s)
			if math.Abs(back.X-pt.X) > 1e-9 || math.Abs(back.Y-pt.Y) > 1e-9 {
				t.Errorf("northUp=%v: round trip %+v -> %+v", northUp, pt, back)
			}
		}
	}
}

func TestZoomScalesRadius(t *testing.T) {
	s := testSettings()
	s.ZoomFactor = 1
	base := Translate(sky.Point{X: 1, Y: 0}, s)
	s.ZoomFactor = 2
	zoomed := Translate(sky.Point{X: 1, Y: 0}, s)

	if math.Abs((zoomed.X-400)-2*(base.X-400)) > 1e-9 {
		t.Errorf("zoom 2 offset = %v, want double %v", zoomed.X-400, base.X-400)
	}
}

func TestInsideCircle(t *testing.T) {
	s := testSettings()
	tests := []struct {
		px   Pixel
		want bool
	}{
		{Pixel{400, 300}, true},
		{Pixel{400 + 249, 300}, true},
		{Pixel{400 + 250, 300}, true}, // boundary counts as inside
		{Pixel{400 + 251, 300}, false},
		{Pixel{400 + 200, 300 + 200}, false}, // hypot ≈ 283
		{Pixel{0, 0}, false},
	}

	for _, tt := range tests {
		if got := InsideCircle(tt.px, s); got != tt.want {
			t.Errorf("InsideCircle(%+v) = %v, want %v", tt.px, got, tt.want)
		}
	}
}

func TestInsidePolygon(t *testing.T) {
	square := []sky.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}

	tests := []struct {
		name string
		pt   sky.Point
		want bool
	}{
		{"center", sky.Point{X: 0.5, Y: 0.5}, true},
		{"outside right", sky.Point{X: 1.5, Y: 0.5}, false},
		{"outside left", sky.Point{X: -0.5, Y: 0.5}, false},
		{"above", sky.Point{X: 0.5, Y: 1.5}, false},
		{"near closing edge, inside", sky.Point{X: 0.01, Y: 0.5}, true},
		{"left of closing edge", sky.Point{X: -0.01, Y: 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsidePolygon(square, tt.pt); got != tt.want {
				t.Errorf("InsidePolygon = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsidePolygonConcave(t *testing.T) {
	// A "U" shape: the notch between the arms is outside.
	u := []sky.Point{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3},
		{X: 2, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 3}, {X: 0, Y: 3},
	}

	if !InsidePolygon(u, sky.Point{X: 0.5, Y: 2}) {
		t.Error("left arm interior reported outside")
	}
	if InsidePolygon(u, sky.Point{X: 1.5, Y: 2}) {
		t.Error("notch reported inside")
	}
	if !InsidePolygon(u, sky.Point{X: 1.5, Y: 0.5}) {
		t.Error("base interior reported outside")
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	b := NewBuffer(10, 10)
	white := color.NRGBA{255, 255, 255, 255}
	DrawLine(b, Pixel{2, 5}, Pixel{7, 5}, white)

	for x := 2; x <= 7; x++ {
		if b.PixelAt(x, 5).A == 0 {
			t.Errorf("pixel (%d,5) not set", x)
		}
	}
	if b.PixelAt(1, 5).A != 0 || b.PixelAt(8, 5).A != 0 {
		t.Error("line overran its endpoints")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	b := NewBuffer(10, 10)
	white := color.NRGBA{255, 255, 255, 255}
	DrawLine(b, Pixel{0, 0}, Pixel{5, 5}, white)

	for i := 0; i <= 5; i++ {
		if b.PixelAt(i, i).A == 0 {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}
}

func TestDrawLineSteepAndReversed(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}

	// Steep line: one pixel per row.
	b := NewBuffer(10, 10)
	DrawLine(b, Pixel{4, 1}, Pixel{5, 8}, white)
	for y := 1; y <= 8; y++ {
		found := false
		for x := 0; x < 10; x++ {
			if b.PixelAt(x, y).A != 0 {
				found = true
			}
		}
		if !found {
			t.Errorf("steep line missing row %d", y)
		}
	}

	// Direction must not matter for coverage of the endpoints.
	b2 := NewBuffer(10, 10)
	DrawLine(b2, Pixel{8, 3}, Pixel{1, 6}, white)
	if b2.PixelAt(8, 3).A == 0 || b2.PixelAt(1, 6).A == 0 {
		t.Error("reversed line missed an endpoint")
	}
}

func TestDrawLineClippedStopsAtCircle(t *testing.T) {
	s := Settings{
		Width: 100, Height: 100,
		BackgroundRadius: 20,
		ZoomFactor:       1,
		DrawNorthUp:      true,
	}
	b := NewBuffer(100, 100)
	white := color.NRGBA{255, 255, 255, 255}

	// From the center straight out past the clip edge.
	DrawLineClipped(b, Pixel{50, 50}, Pixel{99, 50}, white, s, 98)

	if b.PixelAt(50, 50).A == 0 {
		t.Error("clipped line missing its start")
	}
	if b.PixelAt(69, 50).A == 0 {
		t.Error("clipped line stopped short of the circle edge")
	}
	for x := 72; x < 100; x++ {
		if b.PixelAt(x, 50).A != 0 {
			t.Errorf("pixel (%d,50) drawn outside the clip circle", x)
		}
	}
}

func TestBufferSetPixelBounds(t *testing.T) {
	b := NewBuffer(4, 4)
	// Out-of-bounds writes are dropped, not panics.
	b.SetPixelAt(-1, 0, color.NRGBA{1, 2, 3, 4})
	b.SetPixelAt(0, 4, color.NRGBA{1, 2, 3, 4})
	b.SetPixelAt(2, 2, color.NRGBA{9, 8, 7, 6})

	got := b.PixelAt(2, 2)
	if got != (color.NRGBA{9, 8, 7, 6}) {
		t.Errorf("PixelAt(2,2) = %+v", got)
	}
}

func TestBufferImage(t *testing.T) {
	b := NewBuffer(3, 2)
	b.SetPixelAt(1, 1, color.NRGBA{10, 20, 30, 255})
	img := b.Image()

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	r, g, bb, a := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || bb>>8 != 30 || a>>8 != 255 {
		t.Errorf("image pixel = %v %v %v %v", r>>8, g>>8, bb>>8, a>>8)
	}
}
