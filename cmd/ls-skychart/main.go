// Command ls-skychart renders an interactive terminal star chart, or
// exports one headlessly to a WebP/PNG file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-skychart/internal/angles"
	"github.com/litescript/ls-skychart/internal/canvas"
	"github.com/litescript/ls-skychart/internal/chart"
	"github.com/litescript/ls-skychart/internal/geo"
	"github.com/litescript/ls-skychart/internal/logging"
	"github.com/litescript/ls-skychart/internal/render"
	"github.com/litescript/ls-skychart/internal/sky"
	"github.com/litescript/ls-skychart/internal/ui"
)

const (
	minSize = 64
	maxSize = 8192
)

func main() {
	var (
		latDeg      = flag.Float64("lat", 51.4779, "Observer latitude in degrees")
		lonDeg      = flag.Float64("lon", -0.0015, "Observer longitude in degrees")
		when        = flag.String("time", "", "Chart instant, RFC 3339 (default: now)")
		size        = flag.Uint("size", 1024, "Chart edge length in pixels (headless)")
		zoom        = flag.Float64("zoom", 1.0, "Zoom factor")
		northUp     = flag.Bool("north-up", true, "Draw with north at the top")
		output      = flag.String("output", "", "Render to file (.webp or .png) instead of the TUI")
		workers     = flag.Int("workers", 0, "Projection workers (0 = one per CPU)")
		supersample = flag.Int("supersample", 2, "Supersampling factor for file output")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	timestampMs := time.Now().UnixMilli()
	if *when != "" {
		t, err := time.Parse(time.RFC3339, *when)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -time %q: %v\n", *when, err)
			os.Exit(1)
		}
		timestampMs = t.UnixMilli()
	}

	if *size < minSize {
		*size = minSize
	} else if *size > maxSize {
		*size = maxSize
	}

	position := geo.GeoCoord{
		Lat: angles.DegToRad(*latDeg),
		Lon: angles.DegToRad(*lonDeg),
	}

	settings := canvas.DefaultSettings(uint32(*size))
	settings.ZoomFactor = *zoom
	settings.DrawNorthUp = *northUp

	if *output != "" {
		runHeadless(position, timestampMs, settings, *output, *workers, *supersample, logger)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal; use -output to render to a file")
		os.Exit(1)
	}

	session := chart.NewSession(chart.SessionConfig{
		Position:    position,
		TimestampMs: timestampMs,
		Settings:    settings,
	})
	c := chart.New(settings)
	c.Workers = *workers

	p := tea.NewProgram(ui.New(session, c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(position geo.GeoCoord, timestampMs int64, settings canvas.Settings, output string, workers, supersample int, logger *logging.Logger) {
	c := chart.New(settings)
	c.Workers = workers

	obs := sky.Observer{Lat: position.Lat, Lon: position.Lon}

	start := time.Now()
	img := render.Chart(c, obs, timestampMs, supersample)
	logger.Debug("Rendered %dx%d chart (supersample %d) in %v",
		settings.Width, settings.Height, supersample, time.Since(start).Round(time.Millisecond))

	if err := render.WriteFile(output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Wrote %s", output)
}
