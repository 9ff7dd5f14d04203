package chart

import (
	"math"
	"testing"

	"github.com/litescript/ls-skychart/internal/angles"
	"github.com/litescript/ls-skychart/internal/canvas"
	"github.com/litescript/ls-skychart/internal/catalog"
	"github.com/litescript/ls-skychart/internal/sky"
)

var (
	testObserver = sky.Observer{
		Lat: angles.DegToRad(56.5),
		Lon: angles.DegToRad(-127.23),
	}
	testTimestampMs = int64(1635524865511)
)

func TestRenderProducesChart(t *testing.T) {
	c := New(canvas.DefaultSettings(200))
	buf := canvas.NewBuffer(200, 200)
	c.Render(buf, testObserver, testTimestampMs)

	// Horizon ring sits on the clip circle's right edge.
	edge := buf.PixelAt(100+int(c.Settings.BackgroundRadius), 100)
	if edge != colorHorizon {
		t.Errorf("horizon ring pixel = %+v, want %+v", edge, colorHorizon)
	}

	// Roughly half the catalog is above the horizon at any instant;
	// the disk interior must contain star pixels.
	stars := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			px := buf.PixelAt(x, y)
			if px != colorBackground && px != colorHorizon && px != colorConstLine {
				stars++
			}
		}
	}
	if stars < 20 {
		t.Errorf("rendered %d non-background pixels, want a populated chart", stars)
	}
}

func TestProjectStarsWorkerCountInvariant(t *testing.T) {
	base := New(canvas.DefaultSettings(400))

	one := base
	one.Workers = 1
	many := base
	many.Workers = 8

	got1 := one.projectStars(testObserver, testTimestampMs)
	got8 := many.projectStars(testObserver, testTimestampMs)

	if len(got1) != len(got8) {
		t.Errorf("worker pool changed visible star count: 1 worker -> %d, 8 workers -> %d",
			len(got1), len(got8))
	}
}

func TestProjectStarsInsideDisk(t *testing.T) {
	c := New(canvas.DefaultSettings(300))
	for _, p := range c.projectStars(testObserver, testTimestampMs) {
		if !canvas.InsideCircle(p.px, c.Settings) {
			t.Errorf("star plotted at %+v outside the clip circle", p.px)
		}
	}
}

func TestHitTest(t *testing.T) {
	// A synthetic constellation ringing the north celestial pole: above
	// the horizon for any northern observer, so the test is independent
	// of the render instant.
	polar := catalog.Constellation{
		Name: "Polar Test",
		Abbr: "Pol",
		Boundary: []catalog.SkyPoint{
			{RADeg: 0, DecDeg: 80},
			{RADeg: 90, DecDeg: 80},
			{RADeg: 180, DecDeg: 80},
			{RADeg: 270, DecDeg: 80},
		},
	}

	c := New(canvas.DefaultSettings(400))
	c.Constellations = []catalog.Constellation{polar}

	// Project a point essentially at the pole; it lies inside the ring.
	pole := sky.SkyCoord{RA: 0, Dec: angles.DegToRad(89.9)}
	pt, ok, err := sky.ProjectSky(pole, testObserver, testTimestampMs, true)
	if err != nil || !ok {
		t.Fatalf("pole projection failed: ok=%v err=%v", ok, err)
	}
	px := canvas.Translate(pt, c.Settings)

	name, hit := c.HitTest(px, testObserver, testTimestampMs)
	if !hit || name != "Polar Test" {
		t.Errorf("HitTest at pole = (%q, %v), want (Polar Test, true)", name, hit)
	}

	// Pixels outside the clip circle never hit.
	if _, hit := c.HitTest(canvas.Pixel{X: 1, Y: 1}, testObserver, testTimestampMs); hit {
		t.Error("HitTest outside the disk reported a hit")
	}
}

func TestStarColorByMagnitude(t *testing.T) {
	if starColor(-1.46) != starShades[0].c {
		t.Error("Sirius-class magnitude should use the brightest shade")
	}
	if starColor(4.5) != starShades[len(starShades)-1].c {
		t.Error("dim stars should use the faintest shade")
	}
	bright := starColor(0.5)
	dim := starColor(3.5)
	if bright.R <= dim.R {
		t.Errorf("brighter star darker than dim one: %+v vs %+v", bright, dim)
	}
}

func TestRenderSunMatchesAltitude(t *testing.T) {
	// The Sun glyph must appear exactly when the Sun is above the
	// horizon. Derive the expected state from the same ephemeris so the
	// test holds at any instant.
	c := New(canvas.DefaultSettings(200))
	c.Stars = catalog.Catalog{}
	c.Constellations = nil

	h, err := sky.ToHorizontal(sky.SunPosition(testTimestampMs), testObserver, testTimestampMs)
	if err != nil {
		t.Skip("sun geometry degenerate at test instant")
	}
	buf := canvas.NewBuffer(200, 200)
	c.Render(buf, testObserver, testTimestampMs)

	found := false
	for y := 0; y < 200 && !found; y++ {
		for x := 0; x < 200; x++ {
			if buf.PixelAt(x, y) == colorSun {
				found = true
				break
			}
		}
	}
	if h.Alt < 0 && found {
		t.Error("Sun drawn while below the horizon")
	}
	if h.Alt > 0 && !found {
		t.Error("Sun above the horizon but not drawn")
	}
}

func TestDrawPolylineAboveHorizonOnly(t *testing.T) {
	c := New(canvas.DefaultSettings(200))
	buf := canvas.NewBuffer(200, 200)

	// A segment pinned deep in the southern sky is invisible from 56°N.
	southern := []catalog.SkyPoint{
		{RADeg: 10, DecDeg: -80},
		{RADeg: 40, DecDeg: -80},
	}
	c.drawPolyline(buf, southern, testObserver, testTimestampMs)

	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if buf.PixelAt(x, y) == colorConstLine {
				t.Fatalf("southern segment drew pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestHorizonRingRadius(t *testing.T) {
	c := New(canvas.DefaultSettings(200))
	buf := canvas.NewBuffer(200, 200)
	c.drawHorizon(buf)

	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if buf.PixelAt(x, y) != colorHorizon {
				continue
			}
			r := math.Hypot(float64(x)-100, float64(y)-100)
			if math.Abs(r-c.Settings.BackgroundRadius) > 1.5 {
				t.Errorf("ring pixel (%d,%d) at radius %.2f, want %.2f", x, y, r, c.Settings.BackgroundRadius)
			}
		}
	}
}
