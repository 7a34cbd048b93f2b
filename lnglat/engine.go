package lnglat

import "github.com/woozymasta/maplibre/internal/geo"

// Engine is the coordinate math owned by the map engine.
type Engine interface {
	// DistanceTo returns the approximate distance between a and b in meters.
	// It must be symmetric and zero for identical points.
	DistanceTo(a, b LngLat) float64
	// Wrap returns c with its longitude in (-180, 180] and latitude untouched.
	Wrap(c LngLat) LngLat
}

// Spherical is the bundled Engine. It reproduces MapLibre GL JS numbers:
// haversine distance on a 6371008.8 m sphere and longitude wrapping.
type Spherical struct{}

// DistanceTo implements Engine.
func (Spherical) DistanceTo(a, b LngLat) float64 {
	return geo.Distance(a.Lng, a.Lat, b.Lng, b.Lat)
}

// Wrap implements Engine.
func (Spherical) Wrap(c LngLat) LngLat {
	return LngLat{Lng: geo.WrapLongitude(c.Lng), Lat: c.Lat}
}

// Normalizer binds coordinate normalization to an Engine.
type Normalizer struct {
	engine Engine
}

// Default uses the Spherical engine.
var Default = NewNormalizer(Spherical{})

// NewNormalizer returns a Normalizer delegating math to engine.
// A nil engine falls back to Spherical.
func NewNormalizer(engine Engine) *Normalizer {
	if engine == nil {
		engine = Spherical{}
	}

	return &Normalizer{engine: engine}
}

// Normalize converts input into a LngLat, see the package level Normalize.
func (n *Normalizer) Normalize(input any) (LngLat, error) {
	return Normalize(input)
}

// DistanceTo returns the engine distance between a and b in meters.
func (n *Normalizer) DistanceTo(a, b LngLat) float64 {
	return n.engine.DistanceTo(a, b)
}

// Wrap returns c with the longitude wrapped by the engine.
func (n *Normalizer) Wrap(c LngLat) LngLat {
	return n.engine.Wrap(c)
}
