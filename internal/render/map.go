package render

import (
	"github.com/gdamore/tcell/v2"

	"stationmap/internal/debug"
	"stationmap/internal/geo"
	"stationmap/internal/station"
)

// Marker is a station drawn on the canvas
type Marker struct {
	geo.Point
	Station station.Station
}

// MapRenderer renders basemap features and station markers to a canvas
type MapRenderer struct {
	projection *geo.Projection
	features   map[geo.FeatureType][]*geo.Feature
	canvas     *Canvas
}

// NewMapRenderer creates a new map renderer
func NewMapRenderer(projection *geo.Projection, features map[geo.FeatureType][]*geo.Feature, canvas *Canvas) *MapRenderer {
	return &MapRenderer{
		projection: projection,
		features:   features,
		canvas:     canvas,
	}
}

// RenderBasemap draws the basemap layers, borders above coastlines
func (m *MapRenderer) RenderBasemap() {
	bounds := m.projection.Bounds()

	m.renderFeatureType(geo.FeatureCoastline, bounds)
	m.renderFeatureType(geo.FeatureBorder, bounds)
}

// renderFeatureType renders all visible features of a specific type
func (m *MapRenderer) renderFeatureType(ftype geo.FeatureType, bounds *geo.Bounds) {
	features, exists := m.features[ftype]
	if !exists {
		return
	}

	visible := geo.FilterByBounds(features, bounds)
	style := GetStyleForFeature(ftype)
	char := GetCharForFeature(ftype)

	for _, feature := range visible {
		for i := 0; i < len(feature.Points)-1; i++ {
			p1 := m.projection.Project(feature.Points[i].Lat, feature.Points[i].Lng)
			p2 := m.projection.Project(feature.Points[i+1].Lat, feature.Points[i+1].Lng)
			m.DrawLine(p1.X, p1.Y, p2.X, p2.Y, char, style)
		}
	}
}

// RenderStations draws one marker per visible station and returns the
// markers in drawing order. The focused station is drawn last so it stays on top.
func (m *MapRenderer) RenderStations(stations []station.Station, focused station.ID) []Marker {
	bounds := m.projection.Bounds()
	markers := make([]Marker, 0, len(stations))

	var top *Marker
	for _, s := range stations {
		if !bounds.Contains(s.Lat, s.Lng) {
			continue
		}

		marker := Marker{Point: m.projection.Project(s.Lat, s.Lng), Station: s}
		if s.ID == focused && focused != "" {
			top = &marker
			continue
		}

		m.canvas.Set(marker.X, marker.Y, '●', MarkerStyle(s.City))
		markers = append(markers, marker)
	}

	if top != nil {
		m.canvas.Set(top.X, top.Y, '◉', StyleMarkerFocused)
		if top.X+2+len(top.Station.Name) < m.canvas.Width() {
			m.canvas.DrawText(top.X+2, top.Y, top.Station.Name, StyleLabel)
		}
		markers = append(markers, *top)
	}

	if debug.Enabled() {
		debug.Log("Rendered %d of %d station markers", len(markers), len(stations))
	}
	return markers
}

// DrawLine implements Bresenham's line algorithm for drawing lines on the canvas
func (m *MapRenderer) DrawLine(x0, y0, x1, y1 int, char rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	// Segments that leave the canvas by a wide margin are skipped whole
	limit := 4 * (m.canvas.Width() + m.canvas.Height())
	if dx > limit || dy > limit {
		return
	}

	sx := -1
	if x0 < x1 {
		sx = 1
	}

	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy

	for {
		m.canvas.Set(x0, y0, char, style)

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err

		if e2 > -dy {
			err -= dy
			x0 += sx
		}

		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// UpdateCanvas updates the renderer's canvas
func (m *MapRenderer) UpdateCanvas(canvas *Canvas) {
	m.canvas = canvas
}
