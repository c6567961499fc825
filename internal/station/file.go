package station

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a station collection from disk. .json files decode exactly
// like the HTTP endpoint, .csv files need a header row naming id, name, city,
// lat and lng, and every other extension is decoded as YAML.
func LoadFile(path string) ([]Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknown, "reading %s: %v", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(bytes.NewReader(data))
	case ".json":
		return parseJSON(data)
	default:
		return parseYAML(data)
	}
}

func parseJSON(data []byte) ([]Station, error) {
	var stations []Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, errors.Wrapf(ErrUnknown, "decoding stations: %v", err)
	}
	if stations == nil {
		return nil, ErrNoStations
	}
	return stations, nil
}

func parseYAML(data []byte) ([]Station, error) {
	var stations []Station
	if err := yaml.Unmarshal(data, &stations); err != nil {
		return nil, errors.Wrapf(ErrUnknown, "decoding stations: %v", err)
	}
	if stations == nil {
		return nil, ErrNoStations
	}
	return stations, nil
}

var csvColumns = map[string][]string{
	"id":   {"id"},
	"name": {"name"},
	"city": {"city"},
	"lat":  {"lat", "latitude"},
	"lng":  {"lng", "lon", "longitude"},
}

func parseCSV(r io.Reader) ([]Station, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoStations
	}
	if err != nil {
		return nil, errors.Wrapf(ErrUnknown, "reading CSV header: %v", err)
	}

	present := make(map[string]int)
	for i, col := range header {
		present[strings.ToLower(strings.TrimSpace(col))] = i
	}

	colIndices := make(map[string]int)
	for field, names := range csvColumns {
		for _, name := range names {
			if i, ok := present[name]; ok {
				colIndices[field] = i
				break
			}
		}
		if _, ok := colIndices[field]; !ok {
			return nil, errors.Wrapf(ErrUnknown, "missing required column: %s", field)
		}
	}

	stations := make([]Station, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		lat, err := strconv.ParseFloat(record[colIndices["lat"]], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(record[colIndices["lng"]], 64)
		if err != nil {
			continue
		}

		stations = append(stations, Station{
			ID:   ID(record[colIndices["id"]]),
			Name: record[colIndices["name"]],
			City: record[colIndices["city"]],
			Lat:  lat,
			Lng:  lng,
		})
	}

	return stations, nil
}
