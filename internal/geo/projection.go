package geo

import (
	"math"
)

const (
	MinZoom     = 3
	MaxZoom     = 12
	DefaultZoom = 7

	earthCircumferenceKm = 40075.0
	kmPerDegreeLat       = 111.32
)

// Point represents a screen coordinate
type Point struct {
	X int
	Y int
}

// Projection handles conversion from lat/lng to screen cells
type Projection struct {
	center       LatLng
	zoom         int
	screenWidth  int
	screenHeight int
	aspectRatio  float64
	scaleX       float64
	scaleY       float64
}

// NewProjection creates an equirectangular projection around center at the given zoom level.
// aspectRatio compensates for character cells being taller than they are wide.
func NewProjection(center LatLng, zoom int, screenWidth, screenHeight int, aspectRatio float64) *Projection {
	p := &Projection{
		center:       center,
		zoom:         ClampZoom(zoom),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		aspectRatio:  aspectRatio,
	}

	p.calculateScale()
	return p
}

// ClampZoom limits a zoom level to the supported range
func ClampZoom(zoom int) int {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// RadiusKm returns the distance from the center to the nearest screen edge at a zoom level
func RadiusKm(zoom int) float64 {
	return earthCircumferenceKm / math.Pow(2, float64(ClampZoom(zoom))) * 1.5
}

// calculateScale computes the cells-per-degree scaling factors
func (p *Projection) calculateScale() {
	radius := RadiusKm(p.zoom)
	kmPerDegreeLng := kmPerDegreeLat * math.Cos(p.center.Lat*math.Pi/180.0)
	if kmPerDegreeLng < 1 {
		kmPerDegreeLng = 1
	}

	totalDegreesLat := 2 * radius / kmPerDegreeLat
	totalDegreesLng := 2 * radius / kmPerDegreeLng

	effectiveHeight := float64(p.screenHeight) * p.aspectRatio
	scaleY := effectiveHeight / totalDegreesLat
	scaleX := float64(p.screenWidth) / totalDegreesLng

	if scaleX < scaleY {
		p.scaleX = scaleX
		p.scaleY = scaleX / p.aspectRatio
	} else {
		p.scaleX = scaleY * p.aspectRatio
		p.scaleY = scaleY
	}
}

// Project converts lat/lng to screen coordinates with (0, 0) at top-left
func (p *Projection) Project(lat, lng float64) Point {
	x := int(math.Round((lng - p.center.Lng) * p.scaleX))
	y := int(math.Round(-(lat - p.center.Lat) * p.scaleY))

	return Point{X: x + p.screenWidth/2, Y: y + p.screenHeight/2}
}

// Unproject converts screen coordinates back to lat/lng
func (p *Projection) Unproject(x, y int) LatLng {
	x -= p.screenWidth / 2
	y -= p.screenHeight / 2

	return LatLng{
		Lat: p.center.Lat - float64(y)/p.scaleY,
		Lng: p.center.Lng + float64(x)/p.scaleX,
	}
}

// IsInBounds checks if a lat/lng point would be visible on screen
func (p *Projection) IsInBounds(lat, lng float64) bool {
	point := p.Project(lat, lng)
	return point.X >= 0 && point.X < p.screenWidth &&
		point.Y >= 0 && point.Y < p.screenHeight
}

// UpdateCenter moves the projection to a new center point
func (p *Projection) UpdateCenter(center LatLng) {
	p.center = center
	p.calculateScale()
}

// SetZoom changes the zoom level, clamped to the supported range
func (p *Projection) SetZoom(zoom int) {
	p.zoom = ClampZoom(zoom)
	p.calculateScale()
}

// UpdateDimensions updates the screen dimensions and recalculates scaling
func (p *Projection) UpdateDimensions(width, height int) {
	p.screenWidth = width
	p.screenHeight = height
	p.calculateScale()
}

// Center returns the current center point
func (p *Projection) Center() LatLng {
	return p.center
}

// Zoom returns the current zoom level
func (p *Projection) Zoom() int {
	return p.zoom
}

// Bounds returns the geographic bounds visible on screen
func (p *Projection) Bounds() *Bounds {
	topLeft := p.Unproject(0, 0)
	bottomRight := p.Unproject(p.screenWidth-1, p.screenHeight-1)

	return &Bounds{
		MinLat: math.Min(topLeft.Lat, bottomRight.Lat),
		MaxLat: math.Max(topLeft.Lat, bottomRight.Lat),
		MinLng: math.Min(topLeft.Lng, bottomRight.Lng),
		MaxLng: math.Max(topLeft.Lng, bottomRight.Lng),
	}
}
