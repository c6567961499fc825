package ui

import (
	"github.com/gdamore/tcell/v2"

	"stationmap/internal/render"
	"stationmap/internal/station"
)

const (
	cityFilterLabel = "FILTER BY CITY"
	allCitiesLabel  = "All Cities"
)

// CityOptions builds the filter options: "All Cities" followed by one
// option per city
func CityOptions(cities []string) []Option {
	options := make([]Option, 0, len(cities)+1)
	options = append(options, Option{Label: allCitiesLabel, Value: station.AllCities})
	for _, city := range cities {
		options = append(options, Option{Label: city, Value: city})
	}
	return options
}

// CityFilter is a labelled Dropdown that reports the chosen city value
type CityFilter struct {
	dropdown *Dropdown
	x, y     int
	width    int
}

// NewCityFilter creates a filter over cities that calls onChange with the
// chosen value
func NewCityFilter(cities []string, onChange func(city string)) *CityFilter {
	return &CityFilter{
		dropdown: NewDropdown(CityOptions(cities), "", func(o Option) {
			onChange(o.Value)
		}),
	}
}

// Dropdown exposes the underlying control
func (f *CityFilter) Dropdown() *Dropdown {
	return f.dropdown
}

// SetCities refreshes the offered cities
func (f *CityFilter) SetCities(cities []string) {
	f.dropdown.SetOptions(CityOptions(cities))
}

// Layout places the label at (x, y) and the trigger below it
func (f *CityFilter) Layout(x, y, width, maxRows int) {
	f.x = x
	f.y = y
	f.width = width
	f.dropdown.Layout(x, y+1, width, maxRows)
}

// Height returns the rows taken while closed
func (f *CityFilter) Height() int {
	return 2
}

// DrawLabel renders the caption row
func (f *CityFilter) DrawLabel(screen tcell.Screen) {
	render.DrawString(screen, f.x, f.y, cityFilterLabel, f.width, render.StyleDim.Bold(true))
}
