package cache

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"stationmap/internal/debug"
	"stationmap/internal/geo"
)

const naturalEarthBaseURL = "https://naciscdn.org/naturalearth/50m"

// Manager handles downloading and caching Natural Earth basemap data
type Manager struct {
	cacheDir string
	baseURL  string
	client   *http.Client
}

// DataFile represents a Natural Earth dataset to download
type DataFile struct {
	Name string // Friendly name
	Path string // Path below the Natural Earth base URL
	Base string // Base filename (without extension)
}

// BasemapFiles lists the datasets behind geo.BasemapLayers
var BasemapFiles = []DataFile{
	{
		Name: "Coastlines",
		Path: "physical/ne_50m_coastline.zip",
		Base: "ne_50m_coastline",
	},
	{
		Name: "Country borders",
		Path: "cultural/ne_50m_admin_0_boundary_lines_land.zip",
		Base: "ne_50m_admin_0_boundary_lines_land",
	},
}

// NewManager creates a new cache manager.
// If cacheDir is empty, uses ~/.stationmap/data
func NewManager(cacheDir string) (*Manager, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".stationmap", "data")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Manager{
		cacheDir: cacheDir,
		baseURL:  naturalEarthBaseURL,
		client:   &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

// EnsureData downloads every missing basemap file. The basemap is optional,
// so failures are collected and returned per file instead of aborting.
func (m *Manager) EnsureData(ctx context.Context) map[string]error {
	failed := make(map[string]error)
	for _, file := range BasemapFiles {
		if err := m.ensureFile(ctx, file); err != nil {
			debug.Log("basemap %s unavailable: %v", file.Name, err)
			failed[file.Name] = err
		}
	}
	return failed
}

// Has reports whether the shapefile for base is cached
func (m *Manager) Has(base string) bool {
	_, err := os.Stat(m.GetDataPath(base))
	return err == nil
}

// ensureFile checks if a data file exists, downloads if needed
func (m *Manager) ensureFile(ctx context.Context, file DataFile) error {
	if m.Has(file.Base) {
		return nil
	}

	url := strings.TrimRight(m.baseURL, "/") + "/" + file.Path
	fmt.Printf("Downloading %s...\n", file.Name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stationmap/1.0)")

	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to download")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("download failed with status: %s (URL: %s)", resp.Status, url)
	}

	tmpFile, err := os.CreateTemp("", "ne_*.zip")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return errors.Wrap(err, "failed to save download")
	}
	tmpFile.Close()

	if err := m.extractZip(tmpFile.Name(), m.cacheDir); err != nil {
		return errors.Wrap(err, "failed to extract")
	}

	fmt.Printf("Downloaded and extracted %s\n", file.Name)
	return nil
}

// extractZip flattens the archive into destDir, skipping dot files
func (m *Manager) extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(filepath.Base(f.Name), ".") {
			continue
		}

		if err := extractFile(f, filepath.Join(destDir, filepath.Base(f.Name))); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(f *zip.File, destPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, rc)
	return err
}

// GetDataPath returns the shapefile path for a dataset base name
func (m *Manager) GetDataPath(base string) string {
	return filepath.Join(m.cacheDir, base+".shp")
}

// GetCacheDir returns the cache directory
func (m *Manager) GetCacheDir() string {
	return m.cacheDir
}

// LoadBasemap reads whatever basemap layers are cached
func (m *Manager) LoadBasemap() map[geo.FeatureType][]*geo.Feature {
	return geo.NewShapefileLoader(m.cacheDir).LoadAll()
}
