package ui

import (
	"github.com/gdamore/tcell/v2"

	"stationmap/internal/render"
	"stationmap/internal/station"
)

const (
	rowHeight     = 2
	emptyListText = "No stations found"
)

// ListView displays a scrollable list of stations, one two-line row each.
// The cursor follows a station ID, so it stays on the same station when
// the list is refreshed.
type ListView struct {
	stations      []station.Station
	onSelect      func(station.Station)
	cursorID      station.ID
	cursor        int
	scrollOffset  int
	maxVisible    int
	focused       bool
	x, y          int
	width, height int
}

// NewListView creates a new station list view. onSelect fires once per
// row activation.
func NewListView(onSelect func(station.Station)) *ListView {
	return &ListView{
		stations:   make([]station.Station, 0),
		onSelect:   onSelect,
		maxVisible: 1,
	}
}

// Update replaces the stations shown
func (l *ListView) Update(stations []station.Station) {
	l.stations = stations

	l.cursor = 0
	for i, s := range stations {
		if s.ID == l.cursorID {
			l.cursor = i
			break
		}
	}
	l.syncCursorID()
	l.adjustScroll()
}

// Stations returns the stations shown
func (l *ListView) Stations() []station.Station {
	return l.stations
}

// SetFocused marks the list as the keyboard target
func (l *ListView) SetFocused(focused bool) {
	l.focused = focused
}

// SelectNext moves the cursor down
func (l *ListView) SelectNext() {
	if l.cursor < len(l.stations)-1 {
		l.cursor++
		l.syncCursorID()
		l.adjustScroll()
	}
}

// SelectPrev moves the cursor up
func (l *ListView) SelectPrev() {
	if l.cursor > 0 {
		l.cursor--
		l.syncCursorID()
		l.adjustScroll()
	}
}

// Selected returns the station under the cursor
func (l *ListView) Selected() (station.Station, bool) {
	if l.cursor >= 0 && l.cursor < len(l.stations) {
		return l.stations[l.cursor], true
	}
	return station.Station{}, false
}

// Activate selects the station under the cursor, the keyboard path
func (l *ListView) Activate() bool {
	s, ok := l.Selected()
	if !ok {
		return false
	}
	if l.onSelect != nil {
		l.onSelect(s)
	}
	return true
}

// HandleClick activates the row under a pointer press, the pointer path
func (l *ListView) HandleClick(x, y int) bool {
	i := l.RowAt(x, y)
	if i < 0 {
		return false
	}

	l.cursor = i
	l.syncCursorID()
	l.adjustScroll()
	return l.Activate()
}

// RowAt returns the station index drawn at a screen cell, or -1
func (l *ListView) RowAt(x, y int) int {
	if x < l.x || x >= l.x+l.width || y < l.y || y >= l.y+l.maxVisible*rowHeight {
		return -1
	}

	i := l.scrollOffset + (y-l.y)/rowHeight
	if i >= len(l.stations) {
		return -1
	}
	return i
}

func (l *ListView) syncCursorID() {
	if s, ok := l.Selected(); ok {
		l.cursorID = s.ID
	}
}

// adjustScroll adjusts scroll offset to keep the cursor visible
func (l *ListView) adjustScroll() {
	if l.cursor >= l.scrollOffset+l.maxVisible {
		l.scrollOffset = l.cursor - l.maxVisible + 1
	}

	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	}

	if last := len(l.stations) - l.maxVisible; l.scrollOffset > last {
		l.scrollOffset = last
	}

	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// Draw renders the list view to the screen
func (l *ListView) Draw(screen tcell.Screen) {
	render.FillRect(screen, l.x, l.y, l.width, l.height, tcell.StyleDefault)

	if len(l.stations) == 0 {
		render.DrawString(screen, l.x+1, l.y, emptyListText, l.width-1, render.StyleDim)
		return
	}

	visibleCount := min(l.maxVisible, len(l.stations)-l.scrollOffset)
	for i := 0; i < visibleCount; i++ {
		idx := l.scrollOffset + i
		s := l.stations[idx]

		nameStyle := render.StyleListItem.Bold(true)
		cityStyle := render.StyleDim
		if idx == l.cursor && l.focused {
			nameStyle = render.StyleListSelected.Bold(true)
			cityStyle = render.StyleListSelected
		}

		y := l.y + i*rowHeight
		render.DrawString(screen, l.x, y, render.PadRight(" "+s.Name, l.width), l.width, nameStyle)
		render.DrawString(screen, l.x, y+1, render.PadRight(" "+s.City, l.width), l.width, cityStyle)
	}

	if len(l.stations) > l.maxVisible {
		screen.SetContent(l.x+l.width-1, l.y, '↕', nil, render.StyleLabel)
	}
}

// UpdateDimensions updates the view dimensions
func (l *ListView) UpdateDimensions(x, y, width, height int) {
	l.x = x
	l.y = y
	l.width = width
	l.height = height
	l.maxVisible = height / rowHeight
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.adjustScroll()
}
