package render

import (
	"strings"
	"testing"

	"stationmap/internal/geo"
	"stationmap/internal/station"
)

var testStations = []station.Station{
	{ID: "1", Name: "Berlin Hbf", City: "Berlin", Lat: 52.5, Lng: 13.4},
	{ID: "2", Name: "Munich Hbf", City: "Munich", Lat: 48.1, Lng: 11.6},
	{ID: "3", Name: "Sydney Central", City: "Sydney", Lat: -33.88, Lng: 151.2},
}

func newTestRenderer(center geo.LatLng) (*MapRenderer, *Canvas) {
	canvas := NewCanvas(80, 30)
	projection := geo.NewProjection(center, 6, 80, 30, 2.0)
	return NewMapRenderer(projection, nil, canvas), canvas
}

func TestRenderStationsSkipsInvisible(t *testing.T) {
	r, canvas := newTestRenderer(geo.LatLng{Lat: 51, Lng: 10.5})

	markers := r.RenderStations(testStations, "")
	if len(markers) != 2 {
		t.Fatalf("RenderStations() drew %d markers, want 2", len(markers))
	}
	for _, m := range markers {
		if canvas.Get(m.X, m.Y).Char != '●' {
			t.Errorf("no marker glyph at %+v for %s", m.Point, m.Station.Name)
		}
	}
}

func TestRenderStationsFocusedOnTop(t *testing.T) {
	r, canvas := newTestRenderer(geo.LatLng{Lat: 51, Lng: 10.5})

	markers := r.RenderStations(testStations, "2")
	last := markers[len(markers)-1]
	if last.Station.ID != "2" {
		t.Fatalf("focused station drawn at position %s, want last", last.Station.ID)
	}
	if canvas.Get(last.X, last.Y).Char != '◉' {
		t.Error("focused station should use the focused glyph")
	}
	if !strings.Contains(canvas.Row(last.Y), "Munich Hbf") {
		t.Errorf("focused station label missing from row %q", canvas.Row(last.Y))
	}
}

func TestRenderBasemap(t *testing.T) {
	features := map[geo.FeatureType][]*geo.Feature{
		geo.FeatureBorder: {
			geo.NewLineFeature(geo.FeatureBorder, []geo.LatLng{{Lat: 51, Lng: 8}, {Lat: 51, Lng: 13}}),
		},
	}
	canvas := NewCanvas(80, 30)
	projection := geo.NewProjection(geo.LatLng{Lat: 51, Lng: 10.5}, 6, 80, 30, 2.0)
	NewMapRenderer(projection, features, canvas).RenderBasemap()

	if !strings.Contains(canvas.Row(15), "···") {
		t.Errorf("border line not drawn through the center row: %q", canvas.Row(15))
	}
}

func TestDrawLine(t *testing.T) {
	canvas := NewCanvas(5, 5)
	r := NewMapRenderer(nil, nil, canvas)
	r.DrawLine(0, 0, 4, 4, '#', StyleLabel)

	for i := 0; i < 5; i++ {
		if canvas.Get(i, i).Char != '#' {
			t.Errorf("diagonal cell (%d,%d) not drawn", i, i)
		}
	}
}

func TestCityColor(t *testing.T) {
	if CityColor("Berlin") != CityColor("Berlin") {
		t.Error("CityColor should be stable for a city")
	}
	if CityColor("Berlin") == CityColor("Munich") {
		t.Error("Berlin and Munich should get different colors")
	}
}
