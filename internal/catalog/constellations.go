package catalog

// SkyPoint is an equatorial position in degrees, J2000. Kept as a
// plain pair so tables serialize as flat (ra, dec) arrays.
type SkyPoint struct {
	RADeg  float64
	DecDeg float64
}

// Constellation groups an asterism's polylines with a boundary polygon
// used for hit-testing. Lines connect cataloged star positions;
// Boundary is a coarse polygon around the figure, not the official
// IAU border.
type Constellation struct {
	Name     string
	Abbr     string
	Lines    [][]SkyPoint
	Boundary []SkyPoint
}

// DefaultConstellations returns the bundled constellation set.
func DefaultConstellations() []Constellation {
	return defaultConstellations
}

var defaultConstellations = []Constellation{
	{
		Name: "Orion",
		Abbr: "Ori",
		Lines: [][]SkyPoint{
			// Shoulders, belt, and knees.
			{{88.793, 7.407}, {81.283, 6.350}, {83.002, -0.299}, {78.634, -8.202}},
			{{83.002, -0.299}, {84.053, -1.202}, {85.190, -1.943}},
			{{85.190, -1.943}, {86.939, -9.670}, {78.634, -8.202}},
			{{88.793, 7.407}, {85.190, -1.943}},
		},
		Boundary: []SkyPoint{
			{76, 10}, {91, 10}, {91, -12}, {76, -12},
		},
	},
	{
		Name: "Ursa Major",
		Abbr: "UMa",
		Lines: [][]SkyPoint{
			// Bowl and handle of the Dipper.
			{{165.932, 61.751}, {165.460, 56.382}, {178.458, 53.695}, {183.857, 57.033}, {165.932, 61.751}},
			{{183.857, 57.033}, {193.507, 55.960}, {200.981, 54.925}, {206.885, 49.313}},
		},
		Boundary: []SkyPoint{
			{162, 64}, {210, 64}, {210, 47}, {162, 47},
		},
	},
	{
		Name: "Cassiopeia",
		Abbr: "Cas",
		Lines: [][]SkyPoint{
			{{2.295, 59.150}, {10.127, 56.537}, {14.177, 60.717}, {21.454, 60.235}, {28.599, 63.670}},
		},
		Boundary: []SkyPoint{
			{0, 66}, {31, 66}, {31, 54}, {0, 54},
		},
	},
	{
		Name: "Cygnus",
		Abbr: "Cyg",
		Lines: [][]SkyPoint{
			// Spine of the swan.
			{{310.358, 45.280}, {305.557, 40.257}, {292.680, 27.960}},
			// Wings.
			{{296.244, 45.131}, {305.557, 40.257}, {311.553, 33.970}},
		},
		Boundary: []SkyPoint{
			{289, 48}, {314, 48}, {314, 25}, {289, 25},
		},
	},
	{
		Name: "Crux",
		Abbr: "Cru",
		Lines: [][]SkyPoint{
			{{186.650, -63.099}, {187.791, -57.113}},
			{{183.786, -58.749}, {191.930, -59.689}},
		},
		Boundary: []SkyPoint{
			{181, -55}, {194, -55}, {194, -65}, {181, -65},
		},
	},
}
