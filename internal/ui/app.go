package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"stationmap/internal/debug"
	"stationmap/internal/geo"
	"stationmap/internal/render"
	"stationmap/internal/station"
)

const (
	appTitle        = "Train Stations"
	loadingText     = "Loading..."
	keyHint         = "tab focus  r reload  +/- zoom  q quit"
	maxSidebarWidth = 34
	filterTop       = 3
	listTop         = 6
)

// StationSource is the asynchronous station collection the App displays
type StationSource interface {
	Start(ctx context.Context) bool
	Updates() <-chan struct{}
	State() station.State
}

// Config holds the initial viewport
type Config struct {
	Center      geo.LatLng
	Zoom        int
	AspectRatio float64
}

// Focus is the sidebar control receiving keyboard input
type Focus int

const (
	FocusFilter Focus = iota
	FocusList
)

// App is the main application controller
type App struct {
	screen   tcell.Screen
	source   StationSource
	state    *ViewState
	bus      *PointerBus
	filter   *CityFilter
	listView *ListView
	mapView  *MapView

	phase       Phase
	focus       Focus
	lastButtons tcell.ButtonMask

	quit     chan struct{}
	quitOnce sync.Once
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewApp creates a new application on the terminal
func NewApp(source StationSource, features map[geo.FeatureType][]*geo.Feature, cfg Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}
	return NewAppWithScreen(screen, source, features, cfg)
}

// NewAppWithScreen creates a new application drawing to screen
func NewAppWithScreen(screen tcell.Screen, source StationSource, features map[geo.FeatureType][]*geo.Feature, cfg Config) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize screen")
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()
	screen.Clear()

	if cfg.AspectRatio == 0 {
		cfg.AspectRatio = 2.0
	}
	if cfg.Zoom == 0 {
		cfg.Zoom = geo.DefaultZoom
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		screen: screen,
		source: source,
		state:  NewViewState(cfg.Center, cfg.Zoom),
		bus:    NewPointerBus(),
		phase:  PhaseLoading,
		focus:  FocusList,
		quit:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}

	a.filter = NewCityFilter(nil, a.onCityChange)
	a.listView = NewListView(a.onStationSelect)
	a.listView.SetFocused(true)

	width, height := screen.Size()
	sw := sidebarWidth(width)
	a.mapView = NewMapView(sw+1, width-sw-1, height, features, a.state.Camera(), cfg.AspectRatio)
	a.layout()

	return a, nil
}

// Run starts the initial fetch and the application main loop
func (a *App) Run() error {
	defer a.cleanup()

	a.reload()

	events := make(chan tcell.Event, 16)
	go a.screen.ChannelEvents(events, a.quit)

	a.render()

	for {
		select {
		case <-a.quit:
			return nil

		case <-a.source.Updates():
			a.onSourceUpdate()
			a.render()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
			a.render()
		}
	}
}

// Stop ends Run
func (a *App) Stop() {
	a.quitOnce.Do(func() {
		close(a.quit)
	})
}

// reload starts a fetch unless one is already running
func (a *App) reload() {
	if !a.source.Start(a.ctx) {
		debug.Log("reload ignored, fetch in flight")
		return
	}
	a.setPhase(PhaseOf(a.source.State()))
}

// onSourceUpdate installs the outcome of a finished fetch
func (a *App) onSourceUpdate() {
	st := a.source.State()
	if PhaseOf(st) == PhaseReady {
		a.state.SetData(st.Data, st.Version)
		if s, ok := a.mapView.Popup().Station(); ok && !containsStation(a.state.FilteredStations(), s.ID) {
			a.mapView.Popup().Close()
		}
	}
	a.setPhase(PhaseOf(st))
}

// setPhase switches the station pane. The filter listens for outside
// pointer presses only while the ready content is on screen.
func (a *App) setPhase(p Phase) {
	if p != a.phase {
		debug.WithFields(logrus.Fields{"from": a.phase, "to": p}).Debug("phase changed")
	}
	a.phase = p

	dropdown := a.filter.Dropdown()
	if p != PhaseReady {
		dropdown.Unmount()
		return
	}

	a.filter.SetCities(a.state.CityOptions())
	dropdown.Mount(a.bus)
	a.syncViews()
}

// syncViews pushes the derived stations and the camera to the views
func (a *App) syncViews() {
	a.listView.Update(a.state.FilteredStations())
	a.mapView.SetCamera(a.state.Camera())
}

func (a *App) onCityChange(city string) {
	a.state.SelectCity(city)
	a.mapView.Popup().Close()
	a.syncViews()
}

func (a *App) onStationSelect(s station.Station) {
	a.state.SelectStation(s)
	a.mapView.SetCamera(a.state.Camera())
}

func (a *App) setFocus(f Focus) {
	a.focus = f
	a.listView.SetFocused(f == FocusList)
	if f != FocusFilter {
		a.filter.Dropdown().Close()
	}
}

func (a *App) zoom(in bool) {
	changed := a.state.ZoomOut()
	if in {
		changed = a.state.ZoomIn()
	}
	if changed {
		a.mapView.SetCamera(a.state.Camera())
	}
}

// render renders the current view to the screen
func (a *App) render() {
	a.screen.Clear()
	width, height := a.screen.Size()
	sw := sidebarWidth(width)

	render.DrawString(a.screen, 1, 0, appTitle, sw-1, render.StyleTitle)

	switch a.phase {
	case PhaseLoading:
		a.drawPlaceholder(loadingText, render.StyleDim)

	case PhaseError:
		a.drawPlaceholder(a.source.State().Error, render.StyleError)

	case PhaseReady:
		filtered := a.state.FilteredStations()
		a.mapView.Draw(a.screen, filtered)

		for y := 0; y < height; y++ {
			a.screen.SetContent(sw, y, '│', nil, render.StyleBorder)
		}

		render.DrawString(a.screen, 1, 1, a.countLabel(filtered), sw-1, render.StyleDim)
		a.filter.DrawLabel(a.screen)
		a.listView.Draw(a.screen)
		render.DrawString(a.screen, 1, height-1, keyHint, sw-1, render.StyleDim)
		a.filter.Dropdown().Draw(a.screen)
	}

	a.screen.Show()
}

func (a *App) countLabel(filtered []station.Station) string {
	total := len(a.state.data)
	if len(filtered) == total {
		return fmt.Sprintf("%d Stations", total)
	}
	return fmt.Sprintf("%d of %d Stations", len(filtered), total)
}

func (a *App) drawPlaceholder(text string, style tcell.Style) {
	width, height := a.screen.Size()
	text = render.Truncate(text, width-2)
	x := max((width-len([]rune(text)))/2, 0)
	render.DrawString(a.screen, x, height/2, text, width-x, style)
}

// handleEvent processes keyboard and mouse events
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
		a.lastButtons = buttons
		if pressed {
			a.handlePointerDown(x, y)
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	dropdown := a.filter.Dropdown()
	ready := a.phase == PhaseReady

	switch ev.Key() {
	case tcell.KeyEscape:
		if dropdown.IsOpen() {
			dropdown.Close()
			return true
		}
		a.Stop()
		return false

	case tcell.KeyTab, tcell.KeyBacktab:
		if ready {
			if a.focus == FocusFilter {
				a.setFocus(FocusList)
			} else {
				a.setFocus(FocusFilter)
			}
		}

	case tcell.KeyEnter:
		switch {
		case !ready:
		case a.focus == FocusList:
			a.listView.Activate()
		case dropdown.IsOpen():
			dropdown.ConfirmHighlight()
		default:
			dropdown.Toggle()
		}

	case tcell.KeyUp:
		switch {
		case !ready:
		case a.focus == FocusFilter:
			dropdown.HighlightPrev()
		default:
			a.listView.SelectPrev()
		}

	case tcell.KeyDown:
		switch {
		case !ready:
		case a.focus == FocusFilter:
			dropdown.HighlightNext()
		default:
			a.listView.SelectNext()
		}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.Stop()
			return false

		case 'r', 'R':
			a.reload()

		case '+', '=':
			a.zoom(true)

		case '-', '_':
			a.zoom(false)
		}
	}

	return true
}

// handlePointerDown lets outside listeners see a press before it is routed
// to the control under it
func (a *App) handlePointerDown(x, y int) {
	a.bus.Publish(x, y)

	if a.phase != PhaseReady {
		return
	}

	switch {
	case a.filter.Dropdown().HandleClick(x, y):
		a.setFocus(FocusFilter)
	case a.listView.HandleClick(x, y):
		a.setFocus(FocusList)
	default:
		a.mapView.HandleClick(x, y)
	}
}

// handleResize handles terminal resize events
func (a *App) handleResize() {
	a.screen.Sync()
	a.layout()
}

func (a *App) layout() {
	width, height := a.screen.Size()
	sw := sidebarWidth(width)

	a.filter.Layout(1, filterTop, sw-2, height-filterTop-2)
	a.listView.UpdateDimensions(0, listTop, sw, height-listTop-1)
	a.mapView.UpdateDimensions(sw+1, width-sw-1, height)
}

func containsStation(stations []station.Station, id station.ID) bool {
	for _, s := range stations {
		if s.ID == id {
			return true
		}
	}
	return false
}

func sidebarWidth(screenWidth int) int {
	return max(min(maxSidebarWidth, screenWidth/2), 1)
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	a.Stop()

	if a.cancel != nil {
		a.cancel()
	}

	a.filter.Dropdown().Unmount()

	if a.screen != nil {
		a.screen.Fini()
	}
}
