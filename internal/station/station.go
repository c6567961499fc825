// Package station holds the train station model, the data source that
// fetches it and the pure derivations the views are built from.
package station

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"stationmap/internal/geo"
)

// ID identifies a station. Feeds publish it either as a string or a number;
// both decode to the same textual key.
type ID string

// UnmarshalJSON accepts a JSON string or number
func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Wrap(err, "station id must be a string or number")
	}
	*id = ID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("station id must be a scalar (line %d)", value.Line)
	}
	*id = ID(value.Value)
	return nil
}

// Station is a train stop. Records are read-only once fetched.
type Station struct {
	ID   ID      `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	City string  `json:"city" yaml:"city"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
}

// Position returns the station coordinate
func (s Station) Position() geo.LatLng {
	return geo.LatLng{Lat: s.Lat, Lng: s.Lng}
}
