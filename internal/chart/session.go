package chart

import (
	"sync"
	"time"

	"github.com/litescript/ls-skychart/internal/canvas"
	"github.com/litescript/ls-skychart/internal/geo"
	"github.com/litescript/ls-skychart/internal/sky"
)

// Session holds the mutable viewing state behind a chart: where the
// observer stands, which instant is displayed, and the view settings.
// All access is mutex-guarded; readers take an immutable Snapshot.
type Session struct {
	mu sync.RWMutex

	position    geo.GeoCoord
	timestampMs int64
	settings    canvas.Settings

	// Pending travel itinerary, consumed front to back.
	travel []geo.GeoCoord
	origin geo.GeoCoord
	dest   geo.GeoCoord
}

// SessionConfig seeds a new session.
type SessionConfig struct {
	Position    geo.GeoCoord
	TimestampMs int64 // zero means "now"
	Settings    canvas.Settings
}

// NewSession creates a session at the given position and instant.
func NewSession(cfg SessionConfig) *Session {
	ts := cfg.TimestampMs
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	return &Session{
		position:    cfg.Position,
		timestampMs: ts,
		settings:    cfg.Settings,
	}
}

// Snapshot is an immutable view of session state.
type Snapshot struct {
	Position     geo.GeoCoord
	TimestampMs  int64
	Settings     canvas.Settings
	Travelling   bool
	TravelRemain int
	TravelDest   geo.GeoCoord
}

// Snapshot returns a consistent copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Position:     s.position,
		TimestampMs:  s.timestampMs,
		Settings:     s.settings,
		Travelling:   len(s.travel) > 0,
		TravelRemain: len(s.travel),
		TravelDest:   s.dest,
	}
}

// Observer returns the current position as a projection observer.
func (s *Session) Observer() sky.Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sky.Observer{Lat: s.position.Lat, Lon: s.position.Lon}
}

// SetTime pins the displayed instant.
func (s *Session) SetTime(timestampMs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timestampMs = timestampMs
}

// AdvanceTime shifts the displayed instant by delta.
func (s *Session) AdvanceTime(delta time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timestampMs += delta.Milliseconds()
}

// Zoom multiplies the zoom factor, clamped to a sane range.
func (s *Session) Zoom(factor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	z := s.settings.ZoomFactor * factor
	if z < 0.25 {
		z = 0.25
	}
	if z > 16 {
		z = 16
	}
	s.settings.ZoomFactor = z
}

// ToggleNorthUp flips the vertical orientation convention.
func (s *Session) ToggleNorthUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DrawNorthUp = !s.settings.DrawNorthUp
}

// UpdateSettings replaces the view settings wholesale.
func (s *Session) UpdateSettings(settings canvas.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Drag applies a drag gesture: the observer walks a short great-circle
// arc in the gesture's direction. Starting a drag cancels any travel
// in progress.
func (s *Session) Drag(startX, startY, endX, endY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.travel = nil
	s.position = sky.DragAndMove(startX, startY, endX, endY, s.settings.DragSpeed, s.position)
}

// StartTravel plans an n-step great-circle itinerary from the current
// position to dest. Waypoints that degrade to the zero coordinate are
// dropped from the itinerary so the animation never jumps to lat 0,
// lon 0; the step count may shrink but the arrival point does not.
func (s *Session) StartTravel(dest geo.GeoCoord, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wps := geo.Waypoints(s.position, dest, n)
	itinerary := make([]geo.GeoCoord, 0, len(wps))
	for _, wp := range wps {
		if wp == (geo.GeoCoord{}) {
			continue
		}
		itinerary = append(itinerary, wp)
	}

	s.origin = s.position
	s.dest = dest
	s.travel = itinerary
}

// StepTravel advances one waypoint. It reports whether a step was
// taken; false means no travel is in progress.
func (s *Session) StepTravel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.travel) == 0 {
		return false
	}
	s.position = s.travel[0]
	s.travel = s.travel[1:]
	return true
}
