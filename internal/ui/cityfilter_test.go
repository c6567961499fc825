package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCityOptions(t *testing.T) {
	testCases := []struct {
		name   string
		cities []string
		want   []Option
	}{
		{"no cities", nil, []Option{{Label: "All Cities", Value: "all"}}},
		{"scenario", []string{"Berlin", "Munich"}, cityOptions},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, CityOptions(tc.cities)); diff != "" {
				t.Errorf("CityOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCityFilterReportsValue(t *testing.T) {
	var got []string
	f := NewCityFilter([]string{"Berlin", "Munich"}, func(city string) {
		got = append(got, city)
	})
	f.Layout(1, 3, 30, 10)
	f.Dropdown().Mount(NewPointerBus())

	// trigger sits below the label
	if !f.Dropdown().HandleClick(2, 4) {
		t.Fatal("click on the trigger was not handled")
	}
	// rows: All Cities, Berlin, Munich
	if !f.Dropdown().HandleClick(2, 7) {
		t.Fatal("click on an option row was not handled")
	}

	if diff := cmp.Diff([]string{"Munich"}, got); diff != "" {
		t.Errorf("onChange values mismatch (-want +got):\n%s", diff)
	}
	if f.Dropdown().Label() != "Munich" {
		t.Errorf("Label() = %q, want Munich", f.Dropdown().Label())
	}
}

func TestCityFilterSetCitiesDropsStaleChoice(t *testing.T) {
	f := NewCityFilter([]string{"Berlin", "Munich"}, func(string) {})
	f.Dropdown().Mount(NewPointerBus())
	f.Dropdown().Toggle()
	f.Dropdown().ChooseIndex(1)

	f.SetCities([]string{"Berlin", "Hamburg"})
	if o, ok := f.Dropdown().Chosen(); !ok || o.Value != "Berlin" {
		t.Errorf("Chosen() = %v, %v, want Berlin kept", o, ok)
	}

	f.SetCities([]string{"Hamburg"})
	if _, ok := f.Dropdown().Chosen(); ok {
		t.Error("a city no longer offered should not stay chosen")
	}
}
