// Package lnglat models MapLibre coordinates: the canonical LngLat value and the
// LngLatLike family of shapes that the engine accepts wherever a coordinate is expected.
package lnglat

import "strconv"

// LngLat is a longitude and latitude pair measured in degrees (WGS84, EPSG:4326).
//
// Ranges are not validated; the engine decides what it accepts.
type LngLat struct {
	Lng float64 `json:"lng" yaml:"lng"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// New returns the LngLat for the given longitude and latitude.
func New(lng, lat float64) LngLat {
	return LngLat{Lng: lng, Lat: lat}
}

// FromArray builds a LngLat from a [longitude, latitude] pair.
func FromArray(v [2]float64) LngLat {
	return LngLat{Lng: v[0], Lat: v[1]}
}

// Longitude returns the longitude.
func (c LngLat) Longitude() float64 { return c.Lng }

// Latitude returns the latitude.
func (c LngLat) Latitude() float64 { return c.Lat }

// SetLng replaces the longitude.
func (c *LngLat) SetLng(lng float64) { c.Lng = lng }

// SetLat replaces the latitude.
func (c *LngLat) SetLat(lat float64) { c.Lat = lat }

// ToArray returns the coordinates as [longitude, latitude].
func (c LngLat) ToArray() [2]float64 {
	return [2]float64{c.Lng, c.Lat}
}

// DistanceTo returns the approximate distance to other in meters,
// computed by the Default normalizer's engine.
func (c LngLat) DistanceTo(other LngLat) float64 {
	return Default.DistanceTo(c, other)
}

// Wrap returns a copy whose longitude lies in (-180, 180],
// computed by the Default normalizer's engine.
func (c LngLat) Wrap() LngLat {
	return Default.Wrap(c)
}

// String formats the value the way the engine does, e.g. "LngLat(12.23, 14.42)".
func (c LngLat) String() string {
	return "LngLat(" + formatDegrees(c.Lng) + ", " + formatDegrees(c.Lat) + ")"
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
