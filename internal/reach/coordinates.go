package reach

// DefaultCoordinates is the static centroid table for the DC-metro
// service area. Zips outside this table fail reachability closed.
func DefaultCoordinates() map[string]Coordinate {
	return map[string]Coordinate{
		// Downtown DC
		"20001": {Lat: 38.912, Lon: -77.017},
		"20004": {Lat: 38.895, Lon: -77.026},
		"20005": {Lat: 38.904, Lon: -77.031},
		"20006": {Lat: 38.898, Lon: -77.041},
		"20036": {Lat: 38.907, Lon: -77.041},
		// Capitol Hill / Navy Yard
		"20002": {Lat: 38.905, Lon: -76.983},
		"20003": {Lat: 38.881, Lon: -76.995},
		"20024": {Lat: 38.876, Lon: -77.016},
		// Upper Northwest DC
		"20007": {Lat: 38.914, Lon: -77.079},
		"20008": {Lat: 38.936, Lon: -77.060},
		"20009": {Lat: 38.920, Lon: -77.037},
		"20010": {Lat: 38.932, Lon: -77.030},
		"20015": {Lat: 38.966, Lon: -77.068},
		"20016": {Lat: 38.938, Lon: -77.086},
		// Arlington
		"22201": {Lat: 38.887, Lon: -77.095},
		"22202": {Lat: 38.856, Lon: -77.051},
		"22203": {Lat: 38.873, Lon: -77.117},
		"22204": {Lat: 38.860, Lon: -77.099},
		"22205": {Lat: 38.883, Lon: -77.139},
		"22209": {Lat: 38.895, Lon: -77.075},
		// Alexandria
		"22301": {Lat: 38.820, Lon: -77.058},
		"22302": {Lat: 38.827, Lon: -77.088},
		"22304": {Lat: 38.813, Lon: -77.111},
		"22305": {Lat: 38.836, Lon: -77.063},
		"22314": {Lat: 38.807, Lon: -77.047},
		// Tysons / McLean
		"22101": {Lat: 38.934, Lon: -77.160},
		"22102": {Lat: 38.951, Lon: -77.229},
		"22182": {Lat: 38.925, Lon: -77.274},
		// Bethesda / Chevy Chase
		"20814": {Lat: 38.999, Lon: -77.102},
		"20815": {Lat: 38.979, Lon: -77.077},
		"20816": {Lat: 38.958, Lon: -77.115},
		"20817": {Lat: 39.000, Lon: -77.149},
		// Silver Spring / Takoma
		"20901": {Lat: 39.020, Lon: -77.008},
		"20902": {Lat: 39.040, Lon: -77.040},
		"20910": {Lat: 38.999, Lon: -77.036},
		"20912": {Lat: 38.981, Lon: -77.000},
		// College Park / Hyattsville
		"20740": {Lat: 38.996, Lon: -76.931},
		"20742": {Lat: 38.989, Lon: -76.946},
		"20782": {Lat: 38.965, Lon: -76.955},
		"20783": {Lat: 38.998, Lon: -76.970},
		// Fredericksburg
		"22401": {Lat: 38.299, Lon: -77.490},
		"22405": {Lat: 38.320, Lon: -77.450},
		"22407": {Lat: 38.280, Lon: -77.550},
		// Leesburg
		"20175": {Lat: 39.090, Lon: -77.560},
		"20176": {Lat: 39.146, Lon: -77.561},
		// Frederick
		"21701": {Lat: 39.420, Lon: -77.390},
		"21702": {Lat: 39.440, Lon: -77.450},
		"21703": {Lat: 39.380, Lon: -77.450},
	}
}
