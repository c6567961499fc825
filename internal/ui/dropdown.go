package ui

import (
	"github.com/gdamore/tcell/v2"

	"stationmap/internal/debug"
	"stationmap/internal/render"
)

const defaultPlaceholder = "Select..."

// Option is one choice offered by a Dropdown
type Option struct {
	Label string
	Value string
}

// Dropdown is a dismissible picker. It starts closed with nothing chosen;
// activating the trigger toggles it, choosing an option or pressing the
// pointer anywhere outside closes it.
type Dropdown struct {
	options     []Option
	placeholder string
	onChange    func(Option)

	open      bool
	chosen    *Option
	highlight int
	scroll    int
	sub       *Subscription

	x, y    int
	width   int
	maxRows int
}

// NewDropdown creates a closed dropdown. An empty placeholder becomes "Select...".
func NewDropdown(options []Option, placeholder string, onChange func(Option)) *Dropdown {
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}

	return &Dropdown{
		options:     options,
		placeholder: placeholder,
		onChange:    onChange,
		width:       20,
		maxRows:     8,
	}
}

// Mount attaches the outside-interaction listener to bus
func (d *Dropdown) Mount(bus *PointerBus) {
	if d.sub != nil {
		return
	}
	d.sub = bus.Subscribe(d.handleOutside)
	debug.Log("dropdown mounted (%d pointer listeners)", bus.Len())
}

// Unmount detaches the listener and closes the dropdown
func (d *Dropdown) Unmount() {
	d.sub.Close()
	d.sub = nil
	d.open = false
}

// Mounted reports whether the outside listener is attached
func (d *Dropdown) Mounted() bool {
	return d.sub != nil
}

// IsOpen reports whether the option list is showing
func (d *Dropdown) IsOpen() bool {
	return d.open
}

// Chosen returns the chosen option, if any
func (d *Dropdown) Chosen() (Option, bool) {
	if d.chosen == nil {
		return Option{}, false
	}
	return *d.chosen, true
}

// Options returns the options on offer
func (d *Dropdown) Options() []Option {
	return d.options
}

// Label returns the text shown on the trigger
func (d *Dropdown) Label() string {
	if d.chosen == nil {
		return d.placeholder
	}
	return d.chosen.Label
}

// Toggle activates the trigger. An unmounted dropdown never opens.
func (d *Dropdown) Toggle() {
	if d.open {
		d.open = false
		return
	}
	if !d.Mounted() {
		return
	}

	d.open = true
	d.highlight = 0
	if i := d.indexOf(d.chosen); i >= 0 {
		d.highlight = i
	}
	d.adjustScroll()
}

// Close hides the option list without choosing
func (d *Dropdown) Close() {
	d.open = false
}

// Choose picks an option of an open dropdown: it becomes the chosen option,
// onChange sees it once and the dropdown closes. Re-choosing the current
// option still notifies onChange. It returns false when the dropdown is closed.
func (d *Dropdown) Choose(o Option) bool {
	if !d.open {
		return false
	}

	chosen := o
	d.chosen = &chosen
	if d.onChange != nil {
		d.onChange(o)
	}
	d.open = false
	return true
}

// ChooseIndex chooses the option at index i
func (d *Dropdown) ChooseIndex(i int) bool {
	if i < 0 || i >= len(d.options) {
		return false
	}
	return d.Choose(d.options[i])
}

// ConfirmHighlight chooses the highlighted option
func (d *Dropdown) ConfirmHighlight() bool {
	return d.ChooseIndex(d.highlight)
}

// HighlightNext moves the keyboard highlight down
func (d *Dropdown) HighlightNext() {
	if d.open && d.highlight < len(d.options)-1 {
		d.highlight++
		d.adjustScroll()
	}
}

// HighlightPrev moves the keyboard highlight up
func (d *Dropdown) HighlightPrev() {
	if d.open && d.highlight > 0 {
		d.highlight--
		d.adjustScroll()
	}
}

// SetOptions replaces the options. The chosen option is kept only while an
// option with the same value is still offered.
func (d *Dropdown) SetOptions(options []Option) {
	d.options = options

	if d.chosen != nil {
		if i := d.indexOf(d.chosen); i >= 0 {
			chosen := options[i]
			d.chosen = &chosen
		} else {
			d.chosen = nil
		}
	}

	if d.highlight >= len(options) {
		d.highlight = max(len(options)-1, 0)
	}
	d.adjustScroll()
}

func (d *Dropdown) indexOf(o *Option) int {
	if o == nil {
		return -1
	}
	for i, opt := range d.options {
		if opt.Value == o.Value {
			return i
		}
	}
	return -1
}

// handleOutside closes the dropdown on a pointer-down outside its region
func (d *Dropdown) handleOutside(x, y int) {
	if d.open && !d.Contains(x, y) {
		d.open = false
	}
}

// Layout places the trigger at (x, y); the open list hangs below it
func (d *Dropdown) Layout(x, y, width, maxRows int) {
	d.x = x
	d.y = y
	d.width = width
	d.maxRows = max(maxRows, 1)
	d.adjustScroll()
}

func (d *Dropdown) visibleRows() int {
	return min(len(d.options), d.maxRows)
}

// adjustScroll keeps the highlighted option inside the visible rows
func (d *Dropdown) adjustScroll() {
	if d.highlight >= d.scroll+d.maxRows {
		d.scroll = d.highlight - d.maxRows + 1
	}
	if d.highlight < d.scroll {
		d.scroll = d.highlight
	}
	if d.scroll > len(d.options)-d.visibleRows() {
		d.scroll = len(d.options) - d.visibleRows()
	}
	if d.scroll < 0 {
		d.scroll = 0
	}
}

// Contains reports whether a cell belongs to the trigger or the open list
func (d *Dropdown) Contains(x, y int) bool {
	if x < d.x || x >= d.x+d.width {
		return false
	}
	if y == d.y {
		return true
	}
	return d.open && y > d.y && y <= d.y+d.visibleRows()
}

// HandleClick routes a pointer press inside the dropdown and reports
// whether it was consumed
func (d *Dropdown) HandleClick(x, y int) bool {
	if !d.Contains(x, y) {
		return false
	}

	if y == d.y {
		d.Toggle()
		return true
	}

	d.ChooseIndex(d.scroll + y - d.y - 1)
	return true
}

// Draw renders the trigger and, when open, the option list
func (d *Dropdown) Draw(screen tcell.Screen) {
	indicator := " ▾"
	if d.open {
		indicator = " ▴"
	}

	style := render.StyleListItem
	if d.chosen == nil {
		style = render.StylePlaceholder
	}
	render.FillRect(screen, d.x, d.y, d.width, 1, style.Underline(true))
	render.DrawString(screen, d.x, d.y, d.Label(), d.width-2, style.Underline(true))
	render.DrawString(screen, d.x+d.width-2, d.y, indicator, 2, render.StyleLabel.Underline(true))

	if !d.open {
		return
	}

	for row := 0; row < d.visibleRows(); row++ {
		i := d.scroll + row
		opt := d.options[i]

		rowStyle := render.StyleListItem
		if d.chosen != nil && d.chosen.Value == opt.Value {
			rowStyle = render.StyleOptionChosen
		}
		if i == d.highlight {
			rowStyle = render.StyleListSelected
		}

		render.DrawString(screen, d.x, d.y+1+row, render.PadRight(" "+opt.Label, d.width), d.width, rowStyle)
	}
}
