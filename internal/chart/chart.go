// Package chart orchestrates star-chart rendering: it projects catalog
// objects for an observer and instant, rasterizes them into a pixel
// buffer, and answers hit-test queries. All chart state travels in the
// Chart value; there is no package-level mutable state.
package chart

import (
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/litescript/ls-skychart/internal/angles"
	"github.com/litescript/ls-skychart/internal/canvas"
	"github.com/litescript/ls-skychart/internal/catalog"
	"github.com/litescript/ls-skychart/internal/sky"
)

// Chart bundles everything a render pass needs. Construct once, pass
// explicitly; the zero value is not usable, use New.
type Chart struct {
	Settings       canvas.Settings
	Stars          catalog.Catalog
	Constellations []catalog.Constellation

	// Workers bounds the projection worker pool. Zero means one
	// worker per CPU.
	Workers int
}

// New returns a chart with the bundled catalogs.
func New(s canvas.Settings) Chart {
	return Chart{
		Settings:       s,
		Stars:          catalog.DefaultCatalog(),
		Constellations: catalog.DefaultConstellations(),
	}
}

// Palette. Star shades step down with apparent magnitude.
var (
	colorBackground = color.NRGBA{R: 6, G: 8, B: 20, A: 255}
	colorHorizon    = color.NRGBA{R: 90, G: 80, B: 140, A: 255}
	colorConstLine  = color.NRGBA{R: 70, G: 90, B: 140, A: 255}
	colorSun        = color.NRGBA{R: 255, G: 220, B: 120, A: 255}

	starShades = []struct {
		maxMag float64
		c      color.NRGBA
	}{
		{1.0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{2.0, color.NRGBA{R: 216, G: 216, B: 224, A: 255}},
		{3.0, color.NRGBA{R: 168, G: 168, B: 184, A: 255}},
		{math.Inf(1), color.NRGBA{R: 120, G: 120, B: 140, A: 255}},
	}
)

func starColor(mag float64) color.NRGBA {
	for _, s := range starShades {
		if mag < s.maxMag {
			return s.c
		}
	}
	return starShades[len(starShades)-1].c
}

// starPlot is one projected star ready for rasterization.
type starPlot struct {
	px     canvas.Pixel
	color  color.NRGBA
	bright bool // brighter stars get a wider glyph
}

// Render draws the full chart for the observer and instant: background
// disk, constellation figures, stars, the Sun, and the horizon ring.
// Stars whose projection has no solution at this instant are skipped;
// that is the documented outcome for degenerate geometry, not a render
// failure.
func (c Chart) Render(buf *canvas.Buffer, obs sky.Observer, timestampMs int64) {
	buf.Fill(colorBackground)

	c.drawConstellations(buf, obs, timestampMs)

	for _, p := range c.projectStars(obs, timestampMs) {
		c.plotStar(buf, p)
	}
	c.drawSun(buf, obs, timestampMs)
	c.drawHorizon(buf)
}

// projectStars maps the catalog through the projection pipeline on a
// bounded worker pool. Projection dominates render time for large
// catalogs; rasterization stays on the caller's goroutine so buffer
// writes never race.
func (c Chart) projectStars(obs sky.Observer, timestampMs int64) []starPlot {
	workers := c.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan catalog.Star)
	results := make(chan starPlot, len(c.Stars.Stars))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for st := range jobs {
				eq := sky.SkyCoord{
					RA:  angles.DegToRad(st.RADeg),
					Dec: angles.DegToRad(st.DecDeg),
				}
				pt, ok, err := sky.ProjectSky(eq, obs, timestampMs, true)
				if err != nil || !ok {
					continue
				}
				px := canvas.Translate(pt, c.Settings)
				if !canvas.InsideCircle(px, c.Settings) {
					continue
				}
				results <- starPlot{
					px:     px,
					color:  starColor(st.Mag),
					bright: st.Mag < 1.0,
				}
			}
		}()
	}

	go func() {
		for _, st := range c.Stars.Stars {
			jobs <- st
		}
		close(jobs)
	}()

	wg.Wait()
	close(results)

	plots := make([]starPlot, 0, len(c.Stars.Stars))
	for p := range results {
		plots = append(plots, p)
	}
	return plots
}

func (c Chart) plotStar(buf *canvas.Buffer, p starPlot) {
	x := int(math.Round(p.px.X))
	y := int(math.Round(p.px.Y))
	buf.SetPixelAt(x, y, p.color)
	if p.bright {
		buf.SetPixelAt(x-1, y, p.color)
		buf.SetPixelAt(x+1, y, p.color)
		buf.SetPixelAt(x, y-1, p.color)
		buf.SetPixelAt(x, y+1, p.color)
	}
}

func (c Chart) drawConstellations(buf *canvas.Buffer, obs sky.Observer, timestampMs int64) {
	for _, con := range c.Constellations {
		for _, line := range con.Lines {
			c.drawPolyline(buf, line, obs, timestampMs)
		}
	}
}

// drawPolyline draws each segment whose endpoints both project above
// the horizon. Segments with one endpoint below are dropped whole;
// the clipped rasterizer handles the disk edge.
func (c Chart) drawPolyline(buf *canvas.Buffer, line []catalog.SkyPoint, obs sky.Observer, timestampMs int64) {
	var prev canvas.Pixel
	havePrev := false

	for _, sp := range line {
		eq := sky.SkyCoord{
			RA:  angles.DegToRad(sp.RADeg),
			Dec: angles.DegToRad(sp.DecDeg),
		}
		pt, ok, err := sky.ProjectSky(eq, obs, timestampMs, true)
		if err != nil || !ok {
			havePrev = false
			continue
		}
		px := canvas.Translate(pt, c.Settings)
		if havePrev {
			steps := int(math.Hypot(px.X-prev.X, px.Y-prev.Y)) + 1
			canvas.DrawLineClipped(buf, prev, px, colorConstLine, c.Settings, steps)
		}
		prev = px
		havePrev = true
	}
}

func (c Chart) drawSun(buf *canvas.Buffer, obs sky.Observer, timestampMs int64) {
	pt, ok, err := sky.ProjectSky(sky.SunPosition(timestampMs), obs, timestampMs, true)
	if err != nil || !ok {
		return
	}
	px := canvas.Translate(pt, c.Settings)
	if !canvas.InsideCircle(px, c.Settings) {
		return
	}
	x := int(math.Round(px.X))
	y := int(math.Round(px.Y))
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx*dx+dy*dy <= 4 {
				buf.SetPixelAt(x+dx, y+dy, colorSun)
			}
		}
	}
}

// drawHorizon plots the clip-circle outline. Step count scales with
// circumference so the ring stays gap-free at any radius.
func (c Chart) drawHorizon(buf *canvas.Buffer) {
	cx := float64(c.Settings.Width) / 2
	cy := float64(c.Settings.Height) / 2
	r := c.Settings.BackgroundRadius

	steps := int(2*math.Pi*r) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + r*math.Cos(a)))
		y := int(math.Round(cy + r*math.Sin(a)))
		buf.SetPixelAt(x, y, colorHorizon)
	}
}

// HitTest reports which constellation, if any, contains the pixel. The
// pixel is mapped back to the projection plane and tested against each
// constellation's boundary polygon projected for the same observer and
// instant. Boundaries that fail to project in full are skipped.
func (c Chart) HitTest(px canvas.Pixel, obs sky.Observer, timestampMs int64) (string, bool) {
	if !canvas.InsideCircle(px, c.Settings) {
		return "", false
	}
	pt := canvas.Untranslate(px, c.Settings)

	for _, con := range c.Constellations {
		poly, ok := c.projectBoundary(con.Boundary, obs, timestampMs)
		if !ok {
			continue
		}
		if canvas.InsidePolygon(poly, pt) {
			return con.Name, true
		}
	}
	return "", false
}

func (c Chart) projectBoundary(boundary []catalog.SkyPoint, obs sky.Observer, timestampMs int64) ([]sky.Point, bool) {
	if len(boundary) == 0 {
		return nil, false
	}
	poly := make([]sky.Point, 0, len(boundary))
	for _, sp := range boundary {
		eq := sky.SkyCoord{
			RA:  angles.DegToRad(sp.RADeg),
			Dec: angles.DegToRad(sp.DecDeg),
		}
		pt, ok, err := sky.ProjectSky(eq, obs, timestampMs, false)
		if err != nil || !ok {
			return nil, false
		}
		poly = append(poly, pt)
	}
	return poly, true
}
