package ui

import (
	"github.com/sirupsen/logrus"

	"stationmap/internal/debug"
	"stationmap/internal/geo"
	"stationmap/internal/station"
)

// DefaultCenter is the center of Germany
var DefaultCenter = geo.LatLng{Lat: 51.1657, Lng: 10.4515}

// Phase is what the station pane shows
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// PhaseOf maps a source state to a phase. An error always wins over stale
// data, and nothing is ready before the first successful fetch.
func PhaseOf(s station.State) Phase {
	switch {
	case s.IsLoading:
		return PhaseLoading
	case s.Error != "":
		return PhaseError
	case s.Version == 0:
		return PhaseLoading
	default:
		return PhaseReady
	}
}

// ViewState holds the selected city and the map viewport, and derives the
// city options and filtered stations from the current data
type ViewState struct {
	selectedCity string
	center       geo.LatLng
	centerRev    uint64
	zoom         int

	data    []station.Station
	version uint64
	deriver *station.Deriver
}

// NewViewState creates a view state showing every city around center
func NewViewState(center geo.LatLng, zoom int) *ViewState {
	return &ViewState{
		selectedCity: station.AllCities,
		center:       center,
		zoom:         geo.ClampZoom(zoom),
		deriver:      station.NewDeriver(0),
	}
}

// SelectedCity returns "all" or a city name
func (v *ViewState) SelectedCity() string {
	return v.selectedCity
}

// Center returns the viewport center
func (v *ViewState) Center() geo.LatLng {
	return v.center
}

// Zoom returns the viewport zoom
func (v *ViewState) Zoom() int {
	return v.zoom
}

// Camera returns the viewport as a camera command
func (v *ViewState) Camera() Camera {
	return Camera{Center: v.center, Zoom: v.zoom, Rev: v.centerRev}
}

// SetData installs a fetched collection. A selected city that is no longer
// among the derived cities falls back to "all"; it reports whether that
// happened.
func (v *ViewState) SetData(data []station.Station, version uint64) bool {
	v.data = data
	v.version = version

	if v.selectedCity == station.AllCities {
		return false
	}
	for _, city := range v.CityOptions() {
		if city == v.selectedCity {
			return false
		}
	}

	debug.WithFields(logrus.Fields{
		"city":    v.selectedCity,
		"version": version,
	}).Info("selected city gone after refresh, showing all cities")
	v.selectedCity = station.AllCities
	return true
}

// SelectCity applies a city filter change. A concrete city recenters the
// viewport on its first station in fetch order; "all" or a city without
// stations leaves the viewport where it is.
func (v *ViewState) SelectCity(city string) {
	v.selectedCity = city
	if city == station.AllCities {
		return
	}

	s, ok := station.FirstInCity(v.data, city)
	if !ok {
		debug.Log("no station in %q, viewport unchanged", city)
		return
	}
	v.setCenter(s.Position())
}

// SelectStation recenters the viewport on s without touching the filter
func (v *ViewState) SelectStation(s station.Station) {
	v.setCenter(s.Position())
}

func (v *ViewState) setCenter(c geo.LatLng) {
	v.center = c
	v.centerRev++
}

// ZoomIn zooms the viewport in one level
func (v *ViewState) ZoomIn() bool {
	return v.setZoom(v.zoom + 1)
}

// ZoomOut zooms the viewport out one level
func (v *ViewState) ZoomOut() bool {
	return v.setZoom(v.zoom - 1)
}

func (v *ViewState) setZoom(zoom int) bool {
	zoom = geo.ClampZoom(zoom)
	if zoom == v.zoom {
		return false
	}
	v.zoom = zoom
	return true
}

// CityOptions returns the sorted unique cities of the current data
func (v *ViewState) CityOptions() []string {
	return v.deriver.Cities(v.version, v.data)
}

// FilteredStations returns the stations of the selected city
func (v *ViewState) FilteredStations() []station.Station {
	return v.deriver.Filter(v.version, v.data, v.selectedCity)
}
