package render

import (
	"hash/fnv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"stationmap/internal/geo"
)

// Style definitions for map features and panels
var (
	StyleBorder        = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleCoastline     = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StyleMarker        = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleMarkerFocused = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	StyleLabel         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleDim           = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleTitle         = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleError         = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleListItem      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListSelected  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	StyleOptionChosen  = tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorLightBlue).Bold(true)
	StylePlaceholder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// GetStyleForFeature returns the appropriate style for a feature type
func GetStyleForFeature(ftype geo.FeatureType) tcell.Style {
	switch ftype {
	case geo.FeatureCoastline:
		return StyleCoastline
	case geo.FeatureBorder:
		return StyleBorder
	default:
		return tcell.StyleDefault
	}
}

// GetCharForFeature returns the appropriate character for drawing a feature
func GetCharForFeature(ftype geo.FeatureType) rune {
	switch ftype {
	case geo.FeatureCoastline:
		return '~'
	case geo.FeatureBorder:
		return '·'
	default:
		return '.'
	}
}

// CityColor returns a stable marker color for a city name. Hues are spread
// by hashing the name so neighbouring cities rarely share a color.
func CityColor(city string) tcell.Color {
	h := fnv.New32a()
	h.Write([]byte(city))
	hue := float64(h.Sum32() % 360)

	r, g, b := colorful.Hsv(hue, 0.65, 0.95).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// MarkerStyle returns the marker style for a station in city
func MarkerStyle(city string) tcell.Style {
	return StyleMarker.Foreground(CityColor(city))
}
