package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/peterbourgon/ff"

	"stationmap/internal/cache"
	"stationmap/internal/debug"
	"stationmap/internal/geo"
	"stationmap/internal/station"
	"stationmap/internal/ui"
)

// headerFlags collects repeated -header "Key: Value" flags
type headerFlags http.Header

func (h headerFlags) String() string {
	parts := make([]string, 0, len(h))
	for k, vs := range h {
		for _, v := range vs {
			parts = append(parts, k+": "+v)
		}
	}
	return strings.Join(parts, ", ")
}

func (h headerFlags) Set(value string) error {
	k, v, ok := strings.Cut(value, ":")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("header %q is not in Key: Value form", value)
	}
	http.Header(h).Add(strings.TrimSpace(k), strings.TrimSpace(v))
	return nil
}

func main() {
	fs := flag.NewFlagSet("stationmap", flag.ExitOnError)
	var (
		help        = fs.Bool("h", false, "Show help message")
		stationsURL = fs.String("stations", "", "Stations URL or local .json, .yaml or .csv file (required)")
		timeout     = fs.Duration("timeout", 30*time.Second, "Station request timeout")
		zoom        = fs.Int("zoom", geo.DefaultZoom, "Initial map zoom (3-12)")
		centerLat   = fs.Float64("center-lat", ui.DefaultCenter.Lat, "Initial map center latitude")
		centerLng   = fs.Float64("center-lng", ui.DefaultCenter.Lng, "Initial map center longitude")
		aspectRatio = fs.Float64("a", 2.0, "Character aspect ratio - adjust for font width (1.0-4.0, default: 2.0)")
		cacheDir    = fs.String("cache", "", "Cache directory for map data (default: ~/.stationmap/data)")
		noBasemap   = fs.Bool("no-basemap", false, "Skip downloading and drawing coastlines and borders")
		debugLog    = fs.String("d", "", "Debug log file (e.g., debug.log)")
		logLevel    = fs.String("log-level", "debug", "Debug log level")
		_           = fs.String("config", "", "Config file (optional)")
	)
	headers := headerFlags(http.Header{})
	fs.Var(headers, "header", "Extra request header as \"Key: Value\" (repeatable)")

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("STATIONMAP"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Show help if requested
	if *help {
		fmt.Println("stationmap - Terminal map of train stations with a city filter")
		fmt.Println("\nUsage: stationmap -stations <url|file> [options]")
		fmt.Println("\nOptions:")
		fs.PrintDefaults()
		os.Exit(0)
	}

	if *stationsURL == "" {
		fmt.Fprintf(os.Stderr, "Error: -stations is required\n")
		os.Exit(1)
	}

	if *aspectRatio < 1.0 || *aspectRatio > 4.0 {
		fmt.Fprintf(os.Stderr, "Error: Aspect ratio must be between 1.0 and 4.0\n")
		os.Exit(1)
	}

	if *zoom < geo.MinZoom || *zoom > geo.MaxZoom {
		fmt.Fprintf(os.Stderr, "Error: Zoom must be between %d and %d\n", geo.MinZoom, geo.MaxZoom)
		os.Exit(1)
	}

	if *centerLat < -90 || *centerLat > 90 || *centerLng < -180 || *centerLng > 180 {
		fmt.Fprintf(os.Stderr, "Error: Map center %.4f, %.4f is not a coordinate\n", *centerLat, *centerLng)
		os.Exit(1)
	}

	if *debugLog != "" {
		logFile, err := os.Create(*debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create debug log: %v\n", err)
		} else {
			defer logFile.Close()
			debug.SetOutput(logFile)
			if err := debug.SetLevel(*logLevel); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
			debug.Log("stationmap debug log started")
			fmt.Printf("Debug logging enabled: %s\n", *debugLog)
		}
	}

	var features map[geo.FeatureType][]*geo.Feature
	if !*noBasemap {
		features = loadBasemap(*cacheDir)
	}

	source := station.NewSource(*stationsURL, station.Options{
		Header:  http.Header(headers),
		Timeout: *timeout,
	})

	fmt.Printf("Starting stationmap (%s, zoom: %d, aspect: %.1f)...\n", *stationsURL, *zoom, *aspectRatio)
	app, err := ui.NewApp(source, features, ui.Config{
		Center:      geo.LatLng{Lat: *centerLat, Lng: *centerLng},
		Zoom:        *zoom,
		AspectRatio: *aspectRatio,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}

// loadBasemap fetches the Natural Earth layers once and loads whatever is
// available. The map still works without them.
func loadBasemap(cacheDir string) map[geo.FeatureType][]*geo.Feature {
	fmt.Println("Initializing map data cache...")
	cacheManager, err := cache.NewManager(cacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize cache: %v\n", err)
		return nil
	}

	fmt.Println("Checking Natural Earth data...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	for name, err := range cacheManager.EnsureData(ctx) {
		fmt.Fprintf(os.Stderr, "Warning: %s unavailable: %v\n", name, err)
	}

	fmt.Println("Loading geographic features...")
	features := cacheManager.LoadBasemap()
	fmt.Printf("Loaded %d feature types\n", len(features))
	return features
}
