package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"stationmap/internal/geo"
	"stationmap/internal/render"
	"stationmap/internal/station"
)

// Popup shows the name and city of one station next to its marker
type Popup struct {
	station *station.Station
	anchor  geo.Point
}

// Open shows the popup for s anchored at a marker cell
func (p *Popup) Open(s station.Station, anchor geo.Point) {
	p.station = &s
	p.anchor = anchor
}

// Anchor returns the marker cell the popup points at
func (p *Popup) Anchor() geo.Point {
	return p.anchor
}

// Close hides the popup
func (p *Popup) Close() {
	p.station = nil
}

// Station returns the station shown, if any
func (p *Popup) Station() (station.Station, bool) {
	if p.station == nil {
		return station.Station{}, false
	}
	return *p.station, true
}

// Lines returns the popup text: label, sub-label and distance from center
func (p *Popup) Lines(center geo.LatLng) []string {
	if p.station == nil {
		return nil
	}

	s := p.station
	lines := make([]string, 0, 3)
	if s.Name != "" {
		lines = append(lines, s.Name)
	}
	if s.City != "" {
		lines = append(lines, s.City)
	}
	lines = append(lines, fmt.Sprintf("%.1f km from center", geo.Distance(center, s.Position())))
	return lines
}

// Draw renders the popup inside the region (x, y, width, height), above the
// anchor when there is room and below it otherwise
func (p *Popup) Draw(screen tcell.Screen, center geo.LatLng, x, y, width, height int) {
	lines := p.Lines(center)
	if lines == nil {
		return
	}

	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, len([]rune(line)))
	}
	boxWidth = min(boxWidth+4, width)
	boxHeight := len(lines) + 2

	left := x + p.anchor.X - boxWidth/2
	left = max(x, min(left, x+width-boxWidth))

	top := y + p.anchor.Y - boxHeight
	if top < y {
		top = y + p.anchor.Y + 1
	}
	top = max(y, min(top, y+height-boxHeight))

	render.FillRect(screen, left, top, boxWidth, boxHeight, tcell.StyleDefault)
	render.DrawBox(screen, left, top, boxWidth, boxHeight, render.StyleLabel)

	for i, line := range lines {
		style := render.StyleLabel
		switch i {
		case 0:
			style = render.StyleTitle
		case len(lines) - 1:
			style = render.StyleDim
		}
		render.DrawString(screen, left+2, top+1+i, line, boxWidth-4, style)
	}
}
