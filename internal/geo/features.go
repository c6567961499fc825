package geo

import "fmt"

// FeatureType represents the type of basemap feature
type FeatureType int

const (
	FeatureCoastline FeatureType = iota
	FeatureBorder
)

// String returns a string representation of the feature type
func (f FeatureType) String() string {
	switch f {
	case FeatureCoastline:
		return "Coastline"
	case FeatureBorder:
		return "Border"
	default:
		return "Unknown"
	}
}

// LatLng represents a geographic coordinate
type LatLng struct {
	Lat float64
	Lng float64
}

// String formats the coordinate with hemisphere suffixes
func (l LatLng) String() string {
	lat, lng := l.Lat, l.Lng

	latDir := "N"
	if lat < 0 {
		latDir = "S"
		lat = -lat
	}

	lngDir := "E"
	if lng < 0 {
		lngDir = "W"
		lng = -lng
	}

	return fmt.Sprintf("%.4f°%s, %.4f°%s", lat, latDir, lng, lngDir)
}

// Feature is a basemap polyline
type Feature struct {
	Type   FeatureType
	Points []LatLng
}

// NewLineFeature creates a new polyline feature
func NewLineFeature(ftype FeatureType, points []LatLng) *Feature {
	return &Feature{
		Type:   ftype,
		Points: points,
	}
}
