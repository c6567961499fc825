package station

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"stationmap/internal/debug"
)

const (
	defaultTimeout  = 30 * time.Second
	maxPayloadBytes = 4 << 10
)

// Options is the optional request configuration of a Source
type Options struct {
	Header  http.Header
	Timeout time.Duration
	Client  *http.Client
}

// State is what a view sees of the Source: the data, whether a fetch is
// running and the display message of the last failure.
type State struct {
	Data      []Station
	Version   uint64
	IsLoading bool
	Error     string
}

// Source fetches the station collection from a URL or a local file
type Source struct {
	location string
	opts     Options

	mu       sync.RWMutex
	state    State
	inFlight bool
	updates  chan struct{}
}

// NewSource creates a data source. location is an http(s) URL, a file://
// URL or a plain path to a .json, .yaml or .csv file.
func NewSource(location string, opts Options) *Source {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	return &Source{
		location: location,
		opts:     opts,
		updates:  make(chan struct{}, 1),
	}
}

// Start runs one fetch in the background and reports whether it started.
// It refuses while another fetch is still in flight.
func (s *Source) Start(ctx context.Context) bool {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return false
	}
	s.inFlight = true
	s.state.IsLoading = true
	s.mu.Unlock()

	go func() {
		stations, err := s.Fetch(ctx)
		s.finish(stations, err)
	}()
	return true
}

// Updates signals after every finished fetch
func (s *Source) Updates() <-chan struct{} {
	return s.updates
}

// State returns a snapshot of the current state
func (s *Source) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Source) finish(stations []Station, err error) {
	s.mu.Lock()
	s.inFlight = false
	s.state.IsLoading = false
	if err != nil {
		s.state.Error = Message(err)
	} else {
		s.state.Data = stations
		s.state.Version++
		s.state.Error = ""
	}
	s.mu.Unlock()

	entry := debug.WithFields(logrus.Fields{"location": s.location})
	if err != nil {
		entry.WithError(err).Warn("station fetch failed")
	} else {
		entry.WithField("stations", len(stations)).Info("station fetch finished")
	}

	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Fetch loads the station collection synchronously
func (s *Source) Fetch(ctx context.Context) ([]Station, error) {
	if strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://") {
		return s.fetchHTTP(ctx)
	}
	return LoadFile(strings.TrimPrefix(s.location, "file://"))
}

func (s *Source) fetchHTTP(ctx context.Context) ([]Station, error) {
	client := s.opts.Client
	if client == nil {
		client = &http.Client{Timeout: s.opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknown, "building request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stationmap/1.0")
	for key, values := range s.opts.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Payload:    payloadMessage(body),
		}
	}

	var stations []Station
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		return nil, errors.Wrapf(ErrUnknown, "decoding stations: %v", err)
	}
	if stations == nil {
		stations = []Station{}
	}
	return stations, nil
}
