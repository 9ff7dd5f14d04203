package ui

import (
	"github.com/litescript/ls-skychart/internal/angles"
	"github.com/litescript/ls-skychart/internal/geo"
)

// City is a named observing site for the travel animation.
type City struct {
	Name string
	Pos  geo.GeoCoord
}

func city(name string, latDeg, lonDeg float64) City {
	return City{
		Name: name,
		Pos: geo.GeoCoord{
			Lat: angles.DegToRad(latDeg),
			Lon: angles.DegToRad(lonDeg),
		},
	}
}

// Cities returns the bundled travel destinations, ordered roughly
// eastward so repeated travel circles the globe.
func Cities() []City {
	return []City{
		city("Honolulu", 21.3069, -157.8583),
		city("San Francisco", 37.7749, -122.4194),
		city("Mexico City", 19.4326, -99.1332),
		city("New York", 40.7128, -74.0060),
		city("Reykjavik", 64.1466, -21.9426),
		city("London", 51.5074, -0.1278),
		city("Cape Town", -33.9249, 18.4241),
		city("Istanbul", 41.0082, 28.9784),
		city("Mumbai", 19.0760, 72.8777),
		city("Singapore", 1.3521, 103.8198),
		city("Tokyo", 35.6762, 139.6503),
		city("Sydney", -33.8688, 151.2093),
	}
}
