package station

import "sort"

// AllCities is the filter value that selects every station
const AllCities = "all"

// Cities returns the city names of stations sorted ascending with exact
// duplicates removed. The input is not modified.
func Cities(stations []Station) []string {
	seen := make(map[string]struct{}, len(stations))
	cities := make([]string, 0, len(stations))

	for _, s := range stations {
		if _, ok := seen[s.City]; ok {
			continue
		}
		seen[s.City] = struct{}{}
		cities = append(cities, s.City)
	}

	sort.Strings(cities)
	return cities
}

// Filter returns the stations located in city, in their original order.
// For AllCities the input slice itself is returned.
func Filter(stations []Station, city string) []Station {
	if city == AllCities {
		return stations
	}

	filtered := make([]Station, 0)
	for _, s := range stations {
		if s.City == city {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FirstInCity returns the first station of city in fetch order
func FirstInCity(stations []Station, city string) (Station, bool) {
	for _, s := range stations {
		if s.City == city {
			return s, true
		}
	}
	return Station{}, false
}
