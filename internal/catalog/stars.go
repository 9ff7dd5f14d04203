// Package catalog bundles the star and constellation tables the chart
// renders, plus a binary table codec for shipping constellation data
// across serialization boundaries.
package catalog

// Star is a cataloged star, J2000 epoch. RA and Dec are degrees here —
// catalog data is an external boundary; the projection pipeline
// converts to radians on entry.
type Star struct {
	Name   string
	RADeg  float64
	DecDeg float64
	Mag    float64 // apparent visual magnitude, lower = brighter
	Con    string  // constellation tag, empty for unaffiliated stars
}

// Catalog holds the stars available for rendering.
type Catalog struct {
	Stars []Star
}

// DefaultCatalog returns the bundled bright-star table (Yale Bright
// Star Catalog positions, IAU names).
func DefaultCatalog() Catalog {
	return Catalog{Stars: brightStars}
}

var brightStars = []Star{
	// Orion
	{"Betelgeuse", 88.793, 7.407, 0.50, "Ori"},
	{"Rigel", 78.634, -8.202, 0.13, "Ori"},
	{"Bellatrix", 81.283, 6.350, 1.64, "Ori"},
	{"Mintaka", 83.002, -0.299, 2.23, "Ori"},
	{"Alnilam", 84.053, -1.202, 1.69, "Ori"},
	{"Alnitak", 85.190, -1.943, 1.77, "Ori"},
	{"Saiph", 86.939, -9.670, 2.09, "Ori"},

	// Ursa Major (the Dipper)
	{"Dubhe", 165.932, 61.751, 1.79, "UMa"},
	{"Merak", 165.460, 56.382, 2.37, "UMa"},
	{"Phecda", 178.458, 53.695, 2.44, "UMa"},
	{"Megrez", 183.857, 57.033, 3.31, "UMa"},
	{"Alioth", 193.507, 55.960, 1.77, "UMa"},
	{"Mizar", 200.981, 54.925, 2.04, "UMa"},
	{"Alkaid", 206.885, 49.313, 1.86, "UMa"},

	// Cassiopeia
	{"Caph", 2.295, 59.150, 2.27, "Cas"},
	{"Schedar", 10.127, 56.537, 2.23, "Cas"},
	{"Navi", 14.177, 60.717, 2.47, "Cas"},
	{"Ruchbah", 21.454, 60.235, 2.68, "Cas"},
	{"Segin", 28.599, 63.670, 3.37, "Cas"},

	// Cygnus
	{"Deneb", 310.358, 45.280, 1.25, "Cyg"},
	{"Sadr", 305.557, 40.257, 2.23, "Cyg"},
	{"Aljanah", 311.553, 33.970, 2.48, "Cyg"},
	{"Fawaris", 296.244, 45.131, 2.89, "Cyg"},
	{"Albireo", 292.680, 27.960, 3.18, "Cyg"},

	// Crux
	{"Acrux", 186.650, -63.099, 0.76, "Cru"},
	{"Mimosa", 191.930, -59.689, 1.25, "Cru"},
	{"Gacrux", 187.791, -57.113, 1.63, "Cru"},
	{"Imai", 183.786, -58.749, 2.79, "Cru"},

	// Bright stars without asterism lines, ordered by magnitude.
	{"Sirius", 101.287, -16.716, -1.46, ""},
	{"Canopus", 95.988, -52.696, -0.74, ""},
	{"Arcturus", 213.915, 19.182, -0.05, ""},
	{"Vega", 279.235, 38.784, 0.03, ""},
	{"Capella", 79.172, 45.998, 0.08, ""},
	{"Procyon", 114.826, 5.225, 0.34, ""},
	{"Achernar", 24.429, -57.237, 0.46, ""},
	{"Hadar", 210.956, -60.373, 0.61, ""},
	{"Altair", 297.696, 8.868, 0.76, ""},
	{"Aldebaran", 68.980, 16.509, 0.85, ""},
	{"Antares", 247.352, -26.432, 0.96, ""},
	{"Spica", 201.298, -11.161, 0.97, ""},
	{"Pollux", 116.329, 28.026, 1.14, ""},
	{"Fomalhaut", 344.413, -29.622, 1.16, ""},
	{"Regulus", 152.093, 11.967, 1.35, ""},
	{"Adhara", 104.656, -28.972, 1.50, ""},
	{"Castor", 113.650, 31.889, 1.58, ""},
	{"Shaula", 263.402, -37.104, 1.63, ""},
	{"Elnath", 81.573, 28.608, 1.65, ""},
	{"Miaplacidus", 138.300, -69.717, 1.68, ""},
	{"Alnair", 332.058, -46.961, 1.74, ""},
	{"Mirfak", 51.081, 49.861, 1.79, ""},
	{"Wezen", 107.098, -26.393, 1.84, ""},
	{"Kaus Australis", 276.043, -34.384, 1.85, ""},
	{"Avior", 125.629, -59.509, 1.86, ""},
	{"Sargas", 264.330, -42.998, 1.87, ""},
	{"Menkalinan", 89.882, 44.948, 1.90, ""},
	{"Atria", 252.166, -69.028, 1.92, ""},
	{"Alhena", 99.428, 16.399, 1.93, ""},
	{"Peacock", 306.412, -56.735, 1.94, ""},
	{"Alsephina", 131.176, -54.709, 1.96, ""},
	{"Mirzam", 95.675, -17.956, 1.98, ""},
	{"Alphard", 141.897, -8.659, 2.00, ""},
	{"Hamal", 31.793, 23.463, 2.00, ""},
	{"Polaris", 37.954, 89.264, 2.02, ""},
	{"Diphda", 10.897, -17.987, 2.02, ""},
	{"Nunki", 283.816, -26.297, 2.02, ""},
	{"Menkent", 211.671, -36.370, 2.06, ""},
	{"Alpheratz", 2.097, 29.091, 2.06, ""},
	{"Mirach", 17.433, 35.621, 2.05, ""},
	{"Kochab", 222.676, 74.156, 2.08, ""},
	{"Rasalhague", 263.734, 12.560, 2.08, ""},
	{"Algieba", 146.463, 19.842, 2.08, ""},
	{"Algol", 47.042, 40.957, 2.12, ""},
	{"Denebola", 177.265, 14.572, 2.13, ""},
	{"Muhlifain", 190.379, -48.960, 2.17, ""},
	{"Suhail", 136.999, -43.433, 2.21, ""},
	{"Alphecca", 233.672, 26.715, 2.23, ""},
	{"Eltanin", 269.152, 51.489, 2.23, ""},
	{"Naos", 120.896, -40.003, 2.25, ""},
	{"Aspidiske", 139.273, -59.275, 2.25, ""},
	{"Larawag", 254.655, -34.293, 2.29, ""},
	{"Dschubba", 240.083, -22.622, 2.32, ""},
	{"Izar", 221.247, 27.074, 2.37, ""},
	{"Enif", 326.046, 9.875, 2.39, ""},
	{"Ankaa", 6.571, -42.306, 2.38, ""},
	{"Girtab", 265.622, -39.030, 2.41, ""},
	{"Scheat", 345.944, 28.083, 2.42, ""},
	{"Sabik", 257.595, -15.725, 2.43, ""},
	{"Aludra", 111.024, -29.303, 2.45, ""},
	{"Markeb", 140.528, -55.011, 2.47, ""},
	{"Markab", 346.190, 15.205, 2.49, ""},
	{"Alderamin", 319.645, 62.586, 2.51, ""},
	{"Zosma", 168.527, 20.524, 2.56, ""},
	{"Arneb", 83.183, -17.822, 2.58, ""},
	{"Gienah", 183.952, -17.542, 2.59, ""},
	{"Zubeneschamali", 229.252, -9.383, 2.61, ""},
	{"Acrab", 241.359, -19.805, 2.62, ""},
	{"Unukalhai", 236.067, 6.426, 2.65, ""},
	{"Kraz", 188.597, -23.397, 2.65, ""},
	{"Sheratan", 28.660, 20.808, 2.64, ""},
	{"Phact", 84.912, -34.074, 2.64, ""},
	{"Tarazed", 296.565, 10.613, 2.72, ""},
	{"Porrima", 190.415, -1.449, 2.74, ""},
	{"Zubenelgenubi", 222.720, -16.042, 2.75, ""},
	{"Yed Prior", 243.586, -3.694, 2.75, ""},
	{"Cursa", 76.963, -5.086, 2.79, ""},
	{"Rastaban", 262.608, 52.301, 2.79, ""},
	{"Nihal", 82.061, -20.759, 2.84, ""},
	{"Alcyone", 56.871, 24.105, 2.87, ""},
	{"Tejat", 95.740, 22.513, 2.88, ""},
	{"Gomeisa", 111.788, 8.289, 2.90, ""},
	{"Sadalsuud", 322.890, -5.571, 2.91, ""},
	{"Algorab", 187.466, -16.515, 2.95, ""},
	{"Sadalmelik", 331.446, -0.320, 2.96, ""},
	{"Pherkad", 230.182, 71.834, 3.00, ""},
	{"Minkar", 182.531, -22.620, 3.02, ""},
	{"Hoedus I", 75.620, 41.234, 3.04, ""},
	{"Tania Australis", 155.582, 41.499, 3.05, ""},
	{"Mebsuta", 100.983, 25.131, 3.06, ""},
	{"Talitha", 134.802, 48.042, 3.14, ""},
	{"Aldhibah", 256.343, 65.715, 3.17, ""},
	{"Chertan", 168.560, 15.430, 3.33, ""},
	{"Muscida", 127.566, 60.718, 3.35, ""},
	{"Auva", 192.855, 3.397, 3.38, ""},
	{"Adhafera", 154.173, 23.417, 3.43, ""},
	{"Wasat", 110.031, 21.982, 3.53, ""},
	{"Zavijava", 177.674, 1.765, 3.61, ""},
	{"Thuban", 211.097, 64.376, 3.65, ""},
	{"Alshain", 298.828, 6.407, 3.71, ""},
	{"Alula Australis", 169.545, 31.529, 3.78, ""},
	{"Giausar", 175.942, 69.331, 3.85, ""},
	{"Wazn", 90.399, -35.768, 3.85, ""},
	{"Rasalas", 146.463, 26.007, 3.88, ""},
	{"Zaniah", 184.976, -0.667, 3.89, ""},
	{"Furud", 95.078, -30.063, 3.96, ""},
	{"Alcor", 201.306, 54.988, 3.99, ""},
	{"Tyl", 288.439, 67.661, 4.01, ""},
	{"Alkes", 164.944, -18.299, 4.08, ""},
	{"Muliphein", 105.940, -15.633, 4.11, ""},
	{"Acubens", 134.622, 11.858, 4.25, ""},
	{"Chara", 188.436, 41.357, 4.26, ""},
	{"Alterf", 139.711, 22.968, 4.31, ""},
	{"Diadem", 197.497, 17.529, 4.32, ""},
	{"Yildun", 263.054, 86.586, 4.36, ""},
	{"Sceptrum", 62.966, -8.898, 4.45, ""},
	{"Dziban", 270.162, 72.149, 4.54, ""},
	{"Khambalia", 218.877, -13.371, 4.66, ""},
	{"Alrakis", 245.998, 61.514, 4.67, ""},
}
