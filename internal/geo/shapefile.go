package geo

import (
	"path/filepath"

	"github.com/jonas-p/go-shp"

	"stationmap/internal/debug"
)

// Basemap layers and the Natural Earth file each is read from
var BasemapLayers = []struct {
	Type FeatureType
	Base string
}{
	{FeatureCoastline, "ne_50m_coastline"},
	{FeatureBorder, "ne_50m_admin_0_boundary_lines_land"},
}

// ShapefileLoader loads and parses ESRI shapefiles
type ShapefileLoader struct {
	dataDir string
}

// NewShapefileLoader creates a new shapefile loader
func NewShapefileLoader(dataDir string) *ShapefileLoader {
	return &ShapefileLoader{
		dataDir: dataDir,
	}
}

// LoadAll loads every basemap layer that is present in the data directory.
// Missing layers are logged and left empty; the map works without them.
func (s *ShapefileLoader) LoadAll() map[FeatureType][]*Feature {
	features := make(map[FeatureType][]*Feature)

	for _, layer := range BasemapLayers {
		loaded, err := s.LoadShapefile(filepath.Join(s.dataDir, layer.Base+".shp"), layer.Type)
		if err != nil {
			debug.Log("basemap layer %s unavailable: %v", layer.Type, err)
			features[layer.Type] = []*Feature{}
			continue
		}
		features[layer.Type] = loaded
	}

	return features
}

// LoadShapefile loads a shapefile and converts every polyline part to a Feature
func (s *ShapefileLoader) LoadShapefile(path string, ftype FeatureType) ([]*Feature, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	features := make([]*Feature, 0)

	for shape.Next() {
		_, p := shape.Shape()

		switch geom := p.(type) {
		case *shp.PolyLine:
			features = append(features, splitParts(ftype, geom.Parts, geom.Points)...)
		case *shp.Polygon:
			features = append(features, splitParts(ftype, geom.Parts, geom.Points)...)
		}
	}

	return features, nil
}

// splitParts turns each part of a multi-part shape into its own line so
// separate rings are never joined by a stray segment
func splitParts(ftype FeatureType, parts []int32, points []shp.Point) []*Feature {
	if len(parts) == 0 {
		parts = []int32{0}
	}

	features := make([]*Feature, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || end > int32(len(points)) || end-start < 2 {
			continue
		}

		line := make([]LatLng, 0, end-start)
		for _, pt := range points[start:end] {
			line = append(line, LatLng{Lat: pt.Y, Lng: pt.X})
		}
		features = append(features, NewLineFeature(ftype, line))
	}
	return features
}
