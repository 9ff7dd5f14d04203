package sky

import (
	"math"

	"github.com/litescript/ls-skychart/internal/angles"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun
// at a Unix-millisecond timestamp, so the chart can plot it alongside
// the star catalog. Simplified solar ephemeris based on the
// Astronomical Almanac; accuracy ~0.01° in RA.
func SunPosition(timestampMs int64) SkyCoord {
	// Julian centuries from the standard J2000.0 instant. The Julian
	// Date of the Unix epoch is 2440587.5.
	jd := float64(timestampMs)/86400000 + 2440587.5
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly of the Sun (degrees).
	L0 := norm360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := norm360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := angles.DegToRad(M)

	// Equation of center (degrees).
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	// Apparent longitude, corrected for aberration and nutation.
	omega := 125.04 - 1934.136*T
	lonApp := L0 + C - 0.00569 - 0.00478*math.Sin(angles.DegToRad(omega))

	// Obliquity of the ecliptic with the nutation correction.
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(angles.DegToRad(omega))

	lonRad := angles.DegToRad(lonApp)
	epsRad := angles.DegToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad))
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(math.Sin(epsRad) * math.Sin(lonRad))

	return SkyCoord{RA: ra, Dec: dec}
}

// AngularSeparation returns the central angle between two sky
// coordinates in radians, via the haversine form which is stable for
// small separations.
func AngularSeparation(a, b SkyCoord) float64 {
	dRA := b.RA - a.RA
	dDec := b.Dec - a.Dec

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(a.Dec)*math.Cos(b.Dec)*math.Sin(dRA/2)*math.Sin(dRA/2)
	if h > 1 {
		h = 1
	}
	return 2 * math.Asin(math.Sqrt(h))
}

func norm360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
