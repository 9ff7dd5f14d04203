// Package ui provides the terminal star chart using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skychart/internal/angles"
	"github.com/litescript/ls-skychart/internal/canvas"
	"github.com/litescript/ls-skychart/internal/chart"
	"github.com/litescript/ls-skychart/internal/sky"
	"github.com/litescript/ls-skychart/internal/version"
)

const (
	clockTickRate  = 1 * time.Second
	travelTickRate = 50 * time.Millisecond
	travelSteps    = 60

	// Pan gesture length in virtual drag units; direction is what
	// matters, the session's DragSpeed sets the arc length.
	panStroke = 10

	glyphStarBright = '✶' // mag < 1.0
	glyphStarMedium = '✸' // mag 1.0-2.5
	glyphStarDim    = '·' // mag >= 2.5
	glyphSun        = '☀'
	glyphHorizon    = '·'

	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
	colorSun        = "220"
	colorHorizon    = "60"
	colorBackdrop   = "236"
)

// Msg types for Bubble Tea.
type (
	// ClockTickMsg advances the displayed time once per second when the
	// clock is running.
	ClockTickMsg time.Time

	// TravelTickMsg steps the travel animation.
	TravelTickMsg time.Time
)

// Model is the root Bubble Tea model: a session for the mutable
// viewing state and a chart for projection.
type Model struct {
	session *chart.Session
	chart   chart.Chart

	width  int
	height int
	ready  bool

	cities    []City
	cityIdx   int
	clockLive bool
	statusMsg string
}

// New creates the root model around an existing session.
func New(session *chart.Session, c chart.Chart) Model {
	return Model{
		session:   session,
		chart:     c,
		cities:    Cities(),
		clockLive: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return clockTick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case ClockTickMsg:
		if m.clockLive {
			m.session.AdvanceTime(clockTickRate)
		}
		return m, clockTick()

	case TravelTickMsg:
		if m.session.StepTravel() {
			return m, travelTick()
		}
		m.statusMsg = fmt.Sprintf("Arrived at %s", m.cities[m.cityIdx].Name)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up":
		m.session.Drag(0, 0, 0, panStroke)
	case "down":
		m.session.Drag(0, 0, 0, -panStroke)
	case "left":
		m.session.Drag(0, 0, -panStroke, 0)
	case "right":
		m.session.Drag(0, 0, panStroke, 0)

	case "+", "=":
		m.session.Zoom(1.25)
	case "-", "_":
		m.session.Zoom(0.8)

	case "n":
		m.session.ToggleNorthUp()

	case "p":
		m.clockLive = !m.clockLive

	case "[":
		m.session.AdvanceTime(-time.Hour)
	case "]":
		m.session.AdvanceTime(time.Hour)

	case "t":
		m.cityIdx = (m.cityIdx + 1) % len(m.cities)
		dest := m.cities[m.cityIdx]
		m.session.StartTravel(dest.Pos, travelSteps)
		m.statusMsg = fmt.Sprintf("Travelling to %s", dest.Name)
		return m, travelTick()

	case "c":
		m.statusMsg = m.constellationAtCenter()
	}

	return m, nil
}

// constellationAtCenter hit-tests the chart center.
func (m Model) constellationAtCenter() string {
	snap := m.session.Snapshot()
	c := m.chart
	c.Settings = snap.Settings
	center := canvas.Pixel{
		X: float64(snap.Settings.Width) / 2,
		Y: float64(snap.Settings.Height) / 2,
	}
	obs := sky.Observer{Lat: snap.Position.Lat, Lon: snap.Position.Lon}
	if name, ok := c.HitTest(center, obs, snap.TimestampMs); ok {
		return "Center: " + name
	}
	return "Center: no constellation"
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 24 || m.height < 12 {
		return "Chart requires a larger terminal"
	}

	gridHeight := m.height - 5
	grid := m.renderChartGrid(m.width, gridHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(grid)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	snap := m.session.Snapshot()
	pos := fmt.Sprintf("%.2f° %.2f°",
		angles.RadToDeg(snap.Position.Lat),
		angles.RadToDegLong(snap.Position.Lon))
	when := time.UnixMilli(snap.TimestampMs).UTC().Format("2006-01-02 15:04:05 UTC")

	orient := "north-up"
	if !snap.Settings.DrawNorthUp {
		orient = "south-up"
	}

	return fmt.Sprintf("%s %s | %s | %s | %s",
		titleStyle.Render("ls-skychart"),
		dimStyle.Render("v"+version.Version),
		dimStyle.Render(pos),
		dimStyle.Render(when),
		dimStyle.Render(fmt.Sprintf("zoom %.2gx %s", snap.Settings.ZoomFactor, orient)))
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	help := dimStyle.Render("arrows: pan | +/-: zoom | t: travel | n: flip | c: constellation | [/]: time | p: pause | q: quit")
	if m.statusMsg == "" {
		return "  " + help
	}
	return "  " + accentStyle.Render(m.statusMsg) + "  " + dimStyle.Render("|") + "  " + help
}

// renderChartGrid rasterizes the chart into a rows×cols cell grid.
// Terminal cells are roughly twice as tall as wide, so the projection
// runs in a virtual pixel space with doubled height; the circle stays
// round on screen.
func (m Model) renderChartGrid(cols, rows int) string {
	grid := make([][]rune, rows)
	colors := make([][]lipgloss.Color, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		colors[y] = make([]lipgloss.Color, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
			colors[y][x] = colorBackdrop
		}
	}

	snap := m.session.Snapshot()
	obs := sky.Observer{Lat: snap.Position.Lat, Lon: snap.Position.Lon}

	virtual := canvas.Settings{
		Width:            uint32(cols),
		Height:           uint32(2 * rows),
		BackgroundRadius: 0.45 * math.Min(float64(cols), float64(2*rows)),
		ZoomFactor:       snap.Settings.ZoomFactor,
		DrawNorthUp:      snap.Settings.DrawNorthUp,
	}

	place := func(pt sky.Point) (int, int, bool) {
		px := canvas.Translate(pt, virtual)
		if !canvas.InsideCircle(px, virtual) {
			return 0, 0, false
		}
		x := int(math.Round(px.X))
		y := int(math.Round(px.Y / 2))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return 0, 0, false
		}
		return x, y, true
	}

	m.drawHorizonRing(grid, colors, virtual, cols, rows)

	for _, st := range m.chart.Stars.Stars {
		eq := sky.SkyCoord{
			RA:  angles.DegToRad(st.RADeg),
			Dec: angles.DegToRad(st.DecDeg),
		}
		pt, ok, err := sky.ProjectSky(eq, obs, snap.TimestampMs, true)
		if err != nil || !ok {
			continue
		}
		if x, y, ok := place(pt); ok {
			g, c := starGlyph(st.Mag)
			grid[y][x] = g
			colors[y][x] = c
		}
	}

	if pt, ok, err := sky.ProjectSky(sky.SunPosition(snap.TimestampMs), obs, snap.TimestampMs, true); err == nil && ok {
		if x, y, ok := place(pt); ok {
			grid[y][x] = glyphSun
			colors[y][x] = colorSun
		}
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(grid[y][x])))
		}
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) drawHorizonRing(grid [][]rune, colors [][]lipgloss.Color, virtual canvas.Settings, cols, rows int) {
	cx := float64(cols) / 2
	cy := float64(rows) // virtual-space center, rows*2/2
	r := virtual.BackgroundRadius

	steps := 4 * (cols + rows)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + r*math.Cos(a)))
		y := int(math.Round((cy + r*math.Sin(a)) / 2))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			continue
		}
		grid[y][x] = glyphHorizon
		colors[y][x] = colorHorizon
	}
}

// starGlyph maps apparent magnitude to a glyph and color; brighter
// stars get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.0:
		return glyphStarBright, colorStarBright
	case mag < 2.5:
		return glyphStarMedium, colorStarMedium
	case mag < 4.0:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarDim, lipgloss.Color("240")
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(clockTickRate, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

func travelTick() tea.Cmd {
	return tea.Tick(travelTickRate, func(t time.Time) tea.Msg {
		return TravelTickMsg(t)
	})
}
