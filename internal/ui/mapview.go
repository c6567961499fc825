package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"stationmap/internal/debug"
	"stationmap/internal/geo"
	"stationmap/internal/render"
	"stationmap/internal/station"
)

// Camera is the viewport the map should show. Rev changes every time the
// center is set, even to the same coordinate, and is what triggers a move.
type Camera struct {
	Center geo.LatLng
	Zoom   int
	Rev    uint64
}

// MapView displays the basemap and station markers
type MapView struct {
	renderer    *render.MapRenderer
	projection  *geo.Projection
	canvas      *render.Canvas
	markers     []render.Marker
	popup       Popup
	camera      Camera
	applied     bool
	cameraMoves int
	x           int
	width       int
	height      int
}

// NewMapView creates a new map view occupying columns [x, x+width)
func NewMapView(x, width, height int, features map[geo.FeatureType][]*geo.Feature, camera Camera, aspectRatio float64) *MapView {
	projection := geo.NewProjection(camera.Center, camera.Zoom, width, height, aspectRatio)
	canvas := render.NewCanvas(width, height)
	renderer := render.NewMapRenderer(projection, features, canvas)

	return &MapView{
		renderer:   renderer,
		projection: projection,
		canvas:     canvas,
		x:          x,
		width:      width,
		height:     height,
	}
}

// SetCamera moves the projection when the camera's center revision or zoom
// differ from the last applied camera, and reports whether it moved
func (m *MapView) SetCamera(c Camera) bool {
	if m.applied && c.Rev == m.camera.Rev && c.Zoom == m.camera.Zoom {
		return false
	}

	m.projection.UpdateCenter(c.Center)
	m.projection.SetZoom(c.Zoom)
	m.camera = c
	m.applied = true
	m.cameraMoves++

	debug.WithFields(logrus.Fields{
		"lat":  c.Center.Lat,
		"lng":  c.Center.Lng,
		"zoom": m.projection.Zoom(),
	}).Debug("map camera moved")
	return true
}

// CameraMoves returns how many camera moves have been issued
func (m *MapView) CameraMoves() int {
	return m.cameraMoves
}

// Projection returns the current projection
func (m *MapView) Projection() *geo.Projection {
	return m.projection
}

// Popup returns the marker popup
func (m *MapView) Popup() *Popup {
	return &m.popup
}

// Draw renders the map view to the screen
func (m *MapView) Draw(screen tcell.Screen, stations []station.Station) {
	m.canvas.Clear()
	m.renderer.RenderBasemap()

	focused := station.ID("")
	if s, ok := m.popup.Station(); ok {
		focused = s.ID
	}
	m.markers = m.renderer.RenderStations(stations, focused)
	m.followPopup()

	m.canvas.Blit(screen, m.x, 0)
	m.popup.Draw(screen, m.projection.Center(), m.x, 0, m.width, m.height)
}

// followPopup re-anchors the popup on its station's marker after the camera
// moved, and closes it once the marker is no longer drawn
func (m *MapView) followPopup() {
	s, ok := m.popup.Station()
	if !ok {
		return
	}

	for _, mk := range m.markers {
		if mk.Station.ID == s.ID {
			m.popup.Open(mk.Station, mk.Point)
			return
		}
	}
	m.popup.Close()
}

// Contains reports whether a screen cell is on the map
func (m *MapView) Contains(x, y int) bool {
	return x >= m.x && x < m.x+m.width && y >= 0 && y < m.height
}

// MarkerAt returns the topmost marker on or next to a screen cell
func (m *MapView) MarkerAt(x, y int) (render.Marker, bool) {
	cx := x - m.x
	for i := len(m.markers) - 1; i >= 0; i-- {
		mk := m.markers[i]
		if mk.X == cx && mk.Y == y {
			return mk, true
		}
	}
	for i := len(m.markers) - 1; i >= 0; i-- {
		mk := m.markers[i]
		if abs(mk.X-cx) <= 1 && abs(mk.Y-y) <= 1 {
			return mk, true
		}
	}
	return render.Marker{}, false
}

// HandleClick opens the popup of a clicked marker or closes it on empty map
func (m *MapView) HandleClick(x, y int) bool {
	if !m.Contains(x, y) {
		return false
	}

	if mk, ok := m.MarkerAt(x, y); ok {
		m.popup.Open(mk.Station, mk.Point)
		return true
	}
	m.popup.Close()
	return true
}

// UpdateDimensions updates the view dimensions when the screen is resized
func (m *MapView) UpdateDimensions(x, width, height int) {
	m.x = x
	m.width = width
	m.height = height

	m.projection.UpdateDimensions(width, height)

	m.canvas = render.NewCanvas(width, height)
	m.renderer.UpdateCanvas(m.canvas)
	m.markers = nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
