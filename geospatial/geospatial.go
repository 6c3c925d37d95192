// Package geospatial provides great-circle distance and bounding-box
// calculations on the WGS-84 reference ellipsoid.
package geospatial

// Coordinate represents a geographic coordinate (WGS 84) in decimal
// degrees. Callers are responsible for keeping latitude in [-90, 90]
// and longitude in [-180, 180]; nothing here validates ranges.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// BoundingBox represents a geographic bounding box by its corner
// coordinates. Min is south-west of Max for non-pole,
// non-antimeridian inputs.
type BoundingBox struct {
	Min Coordinate `json:"min"`
	Max Coordinate `json:"max"`
}
