package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"stationmap/internal/geo"
	"stationmap/internal/station"
)

var scenario = []station.Station{berlinHbf, munichHbf}

func newLoadedState(data []station.Station) *ViewState {
	v := NewViewState(DefaultCenter, geo.DefaultZoom)
	v.SetData(data, 1)
	return v
}

func TestViewStateSelectCity(t *testing.T) {
	testCases := []struct {
		name       string
		city       string
		wantCenter geo.LatLng
		wantMoved  bool
	}{
		{"first match", "Munich", geo.LatLng{Lat: 48.1, Lng: 11.6}, true},
		{"all keeps center", station.AllCities, DefaultCenter, false},
		{"no match keeps center", "Hamburg", DefaultCenter, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := newLoadedState(scenario)
			before := v.Camera().Rev

			v.SelectCity(tc.city)

			if v.SelectedCity() != tc.city {
				t.Errorf("SelectedCity() = %q, want %q", v.SelectedCity(), tc.city)
			}
			if v.Center() != tc.wantCenter {
				t.Errorf("Center() = %v, want %v", v.Center(), tc.wantCenter)
			}
			if moved := v.Camera().Rev != before; moved != tc.wantMoved {
				t.Errorf("camera moved = %v, want %v", moved, tc.wantMoved)
			}
		})
	}
}

func TestViewStateSelectCityUsesUnfilteredOrder(t *testing.T) {
	v := newLoadedState([]station.Station{berlinHbf, munichOst, munichHbf})
	v.SelectCity("Berlin")
	v.SelectCity("Munich")

	if want := munichOst.Position(); v.Center() != want {
		t.Errorf("Center() = %v, want first Munich station in fetch order %v", v.Center(), want)
	}
}

func TestViewStateSelectStation(t *testing.T) {
	for _, city := range []string{station.AllCities, "Berlin", "Munich"} {
		t.Run(city, func(t *testing.T) {
			v := newLoadedState(scenario)
			v.SelectCity(city)

			v.SelectStation(munichHbf)

			if want := (geo.LatLng{Lat: 48.1, Lng: 11.6}); v.Center() != want {
				t.Errorf("Center() = %v, want %v", v.Center(), want)
			}
			if v.SelectedCity() != city {
				t.Errorf("SelectedCity() = %q, want %q unchanged", v.SelectedCity(), city)
			}
		})
	}
}

func TestViewStateSameCenterStillMoves(t *testing.T) {
	v := newLoadedState(scenario)
	v.SelectStation(munichHbf)
	first := v.Camera()

	v.SelectStation(munichHbf)
	second := v.Camera()

	if first.Center != second.Center {
		t.Fatalf("centers differ: %v vs %v", first.Center, second.Center)
	}
	if first.Rev == second.Rev {
		t.Error("selecting the same station twice should issue a new camera revision")
	}
}

func TestViewStateDerivations(t *testing.T) {
	v := newLoadedState(scenario)

	if diff := cmp.Diff([]string{"Berlin", "Munich"}, v.CityOptions()); diff != "" {
		t.Errorf("CityOptions() mismatch (-want +got):\n%s", diff)
	}

	v.SelectCity("Munich")
	if diff := cmp.Diff([]station.Station{munichHbf}, v.FilteredStations()); diff != "" {
		t.Errorf("FilteredStations() mismatch (-want +got):\n%s", diff)
	}

	a, b := v.FilteredStations(), v.FilteredStations()
	if &a[0] != &b[0] {
		t.Error("FilteredStations() should return the memoized slice for unchanged inputs")
	}
}

func TestViewStateEmptyData(t *testing.T) {
	v := newLoadedState([]station.Station{})

	if diff := cmp.Diff([]string{}, v.CityOptions(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("CityOptions() mismatch (-want +got):\n%s", diff)
	}
	if got := v.FilteredStations(); len(got) != 0 {
		t.Errorf("FilteredStations() = %v, want empty", got)
	}
}

func TestViewStateSetDataReconcilesCity(t *testing.T) {
	v := newLoadedState(scenario)
	v.SelectCity("Munich")

	if v.SetData([]station.Station{berlinHbf, munichOst}, 2) {
		t.Error("SetData() reset the city although Munich is still present")
	}
	if v.SelectedCity() != "Munich" {
		t.Errorf("SelectedCity() = %q, want Munich", v.SelectedCity())
	}
	if diff := cmp.Diff([]station.Station{munichOst}, v.FilteredStations()); diff != "" {
		t.Errorf("FilteredStations() mismatch (-want +got):\n%s", diff)
	}

	if !v.SetData([]station.Station{berlinHbf}, 3) {
		t.Error("SetData() should report the reset of a vanished city")
	}
	if v.SelectedCity() != station.AllCities {
		t.Errorf("SelectedCity() = %q, want %q", v.SelectedCity(), station.AllCities)
	}
}

func TestViewStateZoom(t *testing.T) {
	v := NewViewState(DefaultCenter, geo.MaxZoom)

	if v.ZoomIn() {
		t.Error("ZoomIn() past the maximum should be refused")
	}
	if !v.ZoomOut() || v.Zoom() != geo.MaxZoom-1 {
		t.Errorf("ZoomOut() zoom = %d, want %d", v.Zoom(), geo.MaxZoom-1)
	}
}

func TestPhaseOf(t *testing.T) {
	testCases := []struct {
		name  string
		state station.State
		want  Phase
	}{
		{"before first fetch", station.State{}, PhaseLoading},
		{"loading", station.State{IsLoading: true}, PhaseLoading},
		{"reloading", station.State{Version: 1, IsLoading: true, Data: scenario}, PhaseLoading},
		{"failed", station.State{Error: "An error occurred!"}, PhaseError},
		{"failed after success", station.State{Version: 1, Data: scenario, Error: "boom"}, PhaseError},
		{"ready", station.State{Version: 1, Data: scenario}, PhaseReady},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PhaseOf(tc.state); got != tc.want {
				t.Errorf("PhaseOf() = %v, want %v", got, tc.want)
			}
		})
	}
}
