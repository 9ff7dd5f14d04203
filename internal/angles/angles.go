// Package angles provides degree/radian conversion, longitude-aware
// normalization, and inverse trig guarded against floating round-off.
//
// Radians are the canonical unit throughout the repository; degrees
// appear only at external boundaries (CLI flags, catalog data, display).
package angles

import (
	"errors"
	"math"
)

// ErrDomain indicates an inverse-trig argument outside [-1,1].
// Round-off routinely pushes mathematically-valid arguments slightly
// out of range; callers decide whether to clamp upstream or treat the
// error as "no geometric solution here" and skip the point.
var ErrDomain = errors.New("angles: inverse trig argument outside [-1, 1]")

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RadToDegLong converts a longitude in radians to degrees in (-180, 180].
func RadToDegLong(rad float64) float64 {
	deg := RadToDeg(rad)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// DegToRadLong converts a longitude in degrees to radians in [0, 2π).
// Negative longitudes are normalized by adding 360 before converting.
func DegToRadLong(deg float64) float64 {
	if deg < 0 {
		deg += 360
	}
	return DegToRad(deg)
}

// FloatMod is a modulus whose result keeps the sign of a and always has
// magnitude < |b|, regardless of operand signs.
func FloatMod(a, b float64) float64 {
	r := math.Abs(a) - math.Abs(b)*math.Floor(math.Abs(a/b))
	if a < 0 {
		return -r
	}
	return r
}

// BoundedASin computes asin(x), returning ErrDomain when x lies outside
// [-1,1]. It never clamps: some callers want to detect and skip
// degenerate geometry rather than force a solution.
func BoundedASin(x float64) (float64, error) {
	v := math.Asin(x)
	if math.IsNaN(v) {
		return 0, ErrDomain
	}
	return v, nil
}

// BoundedACos computes acos(x), returning ErrDomain when x lies outside
// [-1,1]. See BoundedASin for the no-clamp rationale.
func BoundedACos(x float64) (float64, error) {
	v := math.Acos(x)
	if math.IsNaN(v) {
		return 0, ErrDomain
	}
	return v, nil
}
