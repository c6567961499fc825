package station

import (
	"github.com/bluele/gcache"
)

type citiesKey struct {
	version uint64
}

type filterKey struct {
	version uint64
	city    string
}

// Deriver memoizes Cities and Filter by data version and city, so repeated
// renders with unchanged inputs get back the very same slices.
type Deriver struct {
	cache gcache.Cache
}

// NewDeriver creates a Deriver holding at most size results
func NewDeriver(size int) *Deriver {
	if size <= 0 {
		size = 32
	}
	return &Deriver{
		cache: gcache.New(size).LRU().Build(),
	}
}

// Cities returns Cities(stations) for the given data version
func (d *Deriver) Cities(version uint64, stations []Station) []string {
	key := citiesKey{version: version}
	if v, err := d.cache.Get(key); err == nil {
		return v.([]string)
	}

	cities := Cities(stations)
	d.cache.Set(key, cities)
	return cities
}

// Filter returns Filter(stations, city) for the given data version
func (d *Deriver) Filter(version uint64, stations []Station, city string) []Station {
	key := filterKey{version: version, city: city}
	if v, err := d.cache.Get(key); err == nil {
		return v.([]Station)
	}

	filtered := Filter(stations, city)
	d.cache.Set(key, filtered)
	return filtered
}

// Purge drops every memoized result
func (d *Deriver) Purge() {
	d.cache.Purge()
}
