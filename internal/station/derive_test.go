package station

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	berlinHbf = Station{ID: "1", Name: "Berlin Hbf", City: "Berlin", Lat: 52.5, Lng: 13.4}
	munichHbf = Station{ID: "2", Name: "Munich Hbf", City: "Munich", Lat: 48.1, Lng: 11.6}
)

func TestCities(t *testing.T) {
	testCases := []struct {
		name string
		in   []Station
		want []string
	}{
		{"empty", nil, []string{}},
		{"scenario", []Station{berlinHbf, munichHbf}, []string{"Berlin", "Munich"}},
		{
			"sorted and unique",
			[]Station{
				{ID: "a", City: "Munich"},
				{ID: "b", City: "Berlin"},
				{ID: "c", City: "Munich"},
				{ID: "d", City: "Aachen"},
				{ID: "e", City: "Berlin"},
			},
			[]string{"Aachen", "Berlin", "Munich"},
		},
		{
			"exact string equality",
			[]Station{{City: "köln"}, {City: "Köln"}, {City: "Köln "}},
			[]string{"Köln", "Köln ", "köln"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Cities(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Cities() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCitiesDoesNotMutateInput(t *testing.T) {
	in := []Station{munichHbf, berlinHbf}
	Cities(in)

	if diff := cmp.Diff([]Station{munichHbf, berlinHbf}, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	augsburg := Station{ID: "3", Name: "Augsburg Hbf", City: "Augsburg", Lat: 48.4, Lng: 10.9}
	pasing := Station{ID: "4", Name: "München-Pasing", City: "Munich", Lat: 48.15, Lng: 11.46}
	all := []Station{munichHbf, berlinHbf, augsburg, pasing}

	testCases := []struct {
		city string
		want []Station
	}{
		{"Munich", []Station{munichHbf, pasing}},
		{"Berlin", []Station{berlinHbf}},
		{"Hamburg", []Station{}},
		{AllCities, all},
	}

	for _, tc := range testCases {
		got := Filter(all, tc.city)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tc.city, diff)
		}
	}
}

func TestFilterAllReturnsInput(t *testing.T) {
	in := []Station{berlinHbf, munichHbf}
	got := Filter(in, AllCities)

	if len(got) != len(in) || &got[0] != &in[0] {
		t.Error("Filter(all) should return the input slice unchanged")
	}
}

func TestFirstInCity(t *testing.T) {
	pasing := Station{ID: "4", Name: "München-Pasing", City: "Munich", Lat: 48.15, Lng: 11.46}
	in := []Station{berlinHbf, munichHbf, pasing}

	got, ok := FirstInCity(in, "Munich")
	if !ok || got.ID != "2" {
		t.Errorf("FirstInCity(Munich) = %v, %v; want station 2", got, ok)
	}

	if _, ok := FirstInCity(in, "Hamburg"); ok {
		t.Error("FirstInCity(Hamburg) should find nothing")
	}
}

func TestDeriverReturnsStableSlices(t *testing.T) {
	d := NewDeriver(8)
	data := []Station{berlinHbf, munichHbf}

	first := d.Filter(1, data, "Munich")
	second := d.Filter(1, data, "Munich")
	if len(first) != 1 || &first[0] != &second[0] {
		t.Error("Filter with unchanged inputs should return the same slice")
	}

	cities := d.Cities(1, data)
	again := d.Cities(1, data)
	if &cities[0] != &again[0] {
		t.Error("Cities with unchanged inputs should return the same slice")
	}
}

func TestDeriverRecomputesOnNewVersion(t *testing.T) {
	d := NewDeriver(8)

	v1 := d.Cities(1, []Station{berlinHbf})
	v2 := d.Cities(2, []Station{berlinHbf, munichHbf})

	if diff := cmp.Diff([]string{"Berlin"}, v1); diff != "" {
		t.Errorf("version 1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Berlin", "Munich"}, v2); diff != "" {
		t.Errorf("version 2 mismatch (-want +got):\n%s", diff)
	}

	d.Purge()
	if got := d.Filter(1, []Station{munichHbf}, "Munich"); len(got) != 1 {
		t.Errorf("Filter after Purge = %d stations, want 1", len(got))
	}
}
