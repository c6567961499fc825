package geo

import "github.com/umahmood/haversine"

// Distance returns the great-circle distance between two points in kilometres
func Distance(a, b LatLng) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lng},
		haversine.Coord{Lat: b.Lat, Lon: b.Lng},
	)
	return km
}
