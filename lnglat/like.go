package lnglat

// Like is anything the engine accepts as a coordinate (LngLatLike).
//
// The set of implementations is closed: LngLat, LngLatObject, LonLatObject and Array.
// Every variant exposes its components without materializing a LngLat.
type Like interface {
	Longitude() float64
	Latitude() float64
	Shape() Shape
	isLike()
}

// Shape identifies the active variant of a Like.
type Shape int

const (
	// ShapeLngLat is a canonical LngLat.
	ShapeLngLat Shape = iota
	// ShapeLngLatObject is an object with lng and lat keys.
	ShapeLngLatObject
	// ShapeLonLatObject is an object with lon and lat keys.
	ShapeLonLatObject
	// ShapeArray is a [longitude, latitude] array.
	ShapeArray
)

func (s Shape) String() string {
	switch s {
	case ShapeLngLat:
		return "LngLat"
	case ShapeLngLatObject:
		return "{lng, lat}"
	case ShapeLonLatObject:
		return "{lon, lat}"
	case ShapeArray:
		return "[lng, lat]"
	default:
		return "unknown"
	}
}

// LngLatObject is the {lng, lat} object shape.
type LngLatObject struct {
	Lng float64 `json:"lng" yaml:"lng"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// LonLatObject is the {lon, lat} object shape.
type LonLatObject struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
}

// Array is the [longitude, latitude] shape.
type Array [2]float64

func (LngLat) isLike()       {}
func (LngLatObject) isLike() {}
func (LonLatObject) isLike() {}
func (Array) isLike()        {}

// Shape implements Like.
func (LngLat) Shape() Shape { return ShapeLngLat }

// Shape implements Like.
func (LngLatObject) Shape() Shape { return ShapeLngLatObject }

// Shape implements Like.
func (LonLatObject) Shape() Shape { return ShapeLonLatObject }

// Shape implements Like.
func (Array) Shape() Shape { return ShapeArray }

// Longitude implements Like.
func (o LngLatObject) Longitude() float64 { return o.Lng }

// Latitude implements Like.
func (o LngLatObject) Latitude() float64 { return o.Lat }

// Longitude implements Like.
func (o LonLatObject) Longitude() float64 { return o.Lon }

// Latitude implements Like.
func (o LonLatObject) Latitude() float64 { return o.Lat }

// Longitude implements Like.
func (a Array) Longitude() float64 { return a[0] }

// Latitude implements Like.
func (a Array) Latitude() float64 { return a[1] }

// isNil reports a nil Like or a nil pointer variant.
func isNil(l Like) bool {
	switch v := l.(type) {
	case nil:
		return true
	case *LngLat:
		return v == nil
	case *LngLatObject:
		return v == nil
	case *LonLatObject:
		return v == nil
	case *Array:
		return v == nil
	}

	return false
}

// Embed wraps a canonical coordinate as the LngLat variant of Like.
func Embed(c LngLat) Like {
	return c
}

// ToLngLat converts any variant into the canonical coordinate.
// The LngLat variant is returned as is, a nil l gives the zero LngLat.
func ToLngLat(l Like) LngLat {
	if isNil(l) {
		return LngLat{}
	}

	switch v := l.(type) {
	case LngLat:
		return v
	case *LngLat:
		return *v
	default:
		return New(l.Longitude(), l.Latitude())
	}
}

// SetLongitude replaces the longitude held by *l, keeping the active shape.
// Pointer variants are updated through the pointer.
func SetLongitude(l *Like, lng float64) {
	switch v := (*l).(type) {
	case LngLat:
		v.SetLng(lng)
		*l = v
	case *LngLat:
		v.SetLng(lng)
	case LngLatObject:
		v.Lng = lng
		*l = v
	case *LngLatObject:
		v.Lng = lng
	case LonLatObject:
		v.Lon = lng
		*l = v
	case *LonLatObject:
		v.Lon = lng
	case Array:
		v[0] = lng
		*l = v
	case *Array:
		v[0] = lng
	}
}

// SetLatitude replaces the latitude held by *l, keeping the active shape.
// Pointer variants are updated through the pointer.
func SetLatitude(l *Like, lat float64) {
	switch v := (*l).(type) {
	case LngLat:
		v.SetLat(lat)
		*l = v
	case *LngLat:
		v.SetLat(lat)
	case LngLatObject:
		v.Lat = lat
		*l = v
	case *LngLatObject:
		v.Lat = lat
	case LonLatObject:
		v.Lat = lat
		*l = v
	case *LonLatObject:
		v.Lat = lat
	case Array:
		v[1] = lat
		*l = v
	case *Array:
		v[1] = lat
	}
}
