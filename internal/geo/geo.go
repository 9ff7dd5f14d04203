// Package geo provides great-circle navigation between points on
// Earth's surface: angular distance, course angle, and waypoint
// interpolation for animated travel.
package geo

import (
	"math"

	"github.com/litescript/ls-skychart/internal/angles"
)

// GeoCoord is a point on Earth's surface. Both fields are radians;
// latitude in [-π/2, π/2], longitude normalized to [-π, π]. Value
// semantics: computations return fresh values, never mutate in place.
type GeoCoord struct {
	Lat float64
	Lon float64
}

// AngularDistance returns the central angle of the great-circle arc
// between a and b, in radians.
func AngularDistance(a, b GeoCoord) (float64, error) {
	cosD := math.Sin(a.Lat)*math.Sin(b.Lat) +
		math.Cos(a.Lat)*math.Cos(b.Lat)*math.Cos(b.Lon-a.Lon)
	return angles.BoundedACos(cosD)
}

// CourseAngle returns the initial bearing of the great circle from a
// toward b, in radians measured from north. Coincident and antipodal
// endpoints have no defined course and surface ErrDomain (the sine of
// the angular distance vanishes).
func CourseAngle(a, b GeoCoord) (float64, error) {
	dist, err := AngularDistance(a, b)
	if err != nil {
		return 0, err
	}
	denom := math.Cos(a.Lat) * math.Sin(dist)
	cosC := (math.Sin(b.Lat) - math.Sin(a.Lat)*math.Cos(dist)) / denom
	return angles.BoundedACos(cosC)
}

// Advance returns the point reached by travelling dist radians from
// `from` along the given course angle. The longitude moves east when
// sin(course) is non-negative, west otherwise.
func Advance(from GeoCoord, dist, course float64) (GeoCoord, error) {
	sinLat := math.Sin(from.Lat)*math.Cos(dist) +
		math.Cos(from.Lat)*math.Sin(dist)*math.Cos(course)
	lat, err := angles.BoundedASin(sinLat)
	if err != nil {
		return GeoCoord{}, err
	}

	relLon, err := relativeLongitude(from.Lat, lat, dist)
	if err != nil {
		return GeoCoord{}, err
	}

	lon := from.Lon + relLon
	if math.Sin(course) < 0 {
		lon = from.Lon - relLon
	}
	return GeoCoord{Lat: lat, Lon: lon}, nil
}

// relativeLongitude is the unsigned longitude offset after travelling
// dist radians from latitude lat1 and arriving at latitude lat2.
func relativeLongitude(lat1, lat2, dist float64) (float64, error) {
	cosRel := (math.Cos(dist) - math.Sin(lat1)*math.Sin(lat2)) /
		(math.Cos(lat1) * math.Cos(lat2))
	return angles.BoundedACos(cosRel)
}

// Waypoints subdivides the great-circle arc from start to end into n
// equally spaced points, ordered from just past start to approximately
// end. The last waypoint lands near, not exactly on, end: fixed-step
// subdivision does not guarantee an exact endpoint hit.
//
// Degraded geometry never shortens the sequence. If the overall
// distance or course has no solution (coincident or antipodal
// endpoints), or an individual waypoint's trig leaves the inverse-trig
// domain, the affected waypoints are the documented zero-valued
// fallback coordinate, keeping the animation's step count stable.
func Waypoints(start, end GeoCoord, n int) []GeoCoord {
	out := make([]GeoCoord, n)
	if n <= 0 {
		return out
	}

	dist, err := AngularDistance(start, end)
	if err != nil {
		return out
	}

	// Coincident endpoints: every subdivision point is the start
	// itself. The course angle is undefined here, so handle it before
	// attempting the bearing.
	if dist < 1e-9 {
		for i := range out {
			out[i] = start
		}
		return out
	}

	course, err := CourseAngle(start, end)
	if err != nil {
		return out
	}

	// The shorter path runs westward when the destination sits less
	// than half a turn to the west of the start.
	westward := end.Lon < start.Lon && end.Lon > start.Lon-math.Pi

	step := dist / float64(n)
	for i := 1; i <= n; i++ {
		d := float64(i) * step

		sinLat := math.Sin(start.Lat)*math.Cos(d) +
			math.Cos(start.Lat)*math.Sin(d)*math.Cos(course)
		lat, err := angles.BoundedASin(sinLat)
		if err != nil {
			continue
		}

		relLon, err := relativeLongitude(start.Lat, lat, d)
		if err != nil {
			continue
		}

		lon := start.Lon + relLon
		if westward {
			lon = start.Lon - relLon
		}
		out[i-1] = GeoCoord{Lat: lat, Lon: lon}
	}
	return out
}
