package lnglat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Normalize converts any accepted coordinate input into a LngLat.
//
// See Parse for the accepted inputs and the order in which shapes are probed.
// Normalization is the identity for a LngLat and never rounds components.
func Normalize(input any) (LngLat, error) {
	l, err := Parse(input)
	if err != nil {
		return LngLat{}, err
	}

	return ToLngLat(l), nil
}

// Parse detects which Like shape input has. Shapes are probed in order:
//
//  1. exact types: the Like variants (values or non-nil pointers) and [2]float64;
//  2. key presence on string-keyed maps: "lng" selects LngLatObject, otherwise
//     "lon" selects LonLatObject; "lat" is required and values must be numeric;
//  3. arity on slices: exactly two numeric elements give an Array.
//
// Anything else is a shape mismatch.
func Parse(input any) (Like, error) {
	switch v := input.(type) {
	case nil:
		return nil, shapeMismatch("nil is not a coordinate")
	case LngLat:
		return v, nil
	case LngLatObject:
		return v, nil
	case LonLatObject:
		return v, nil
	case Array:
		return v, nil
	case [2]float64:
		return Array(v), nil
	case *LngLat:
		if v != nil {
			return *v, nil
		}
	case *LngLatObject:
		if v != nil {
			return *v, nil
		}
	case *LonLatObject:
		if v != nil {
			return *v, nil
		}
	case *Array:
		if v != nil {
			return *v, nil
		}
	case map[string]any:
		return parseObject(func(key string) (any, bool) {
			val, ok := v[key]
			return val, ok
		})
	case map[string]float64:
		return parseObject(func(key string) (any, bool) {
			val, ok := v[key]
			return val, ok
		})
	case map[any]any:
		return parseObject(func(key string) (any, bool) {
			val, ok := v[key]
			return val, ok
		})
	case []float64:
		return parsePair(len(v), func(i int) any { return v[i] })
	case []int:
		return parsePair(len(v), func(i int) any { return v[i] })
	case []any:
		return parsePair(len(v), func(i int) any { return v[i] })
	}

	return nil, shapeMismatch("unsupported coordinate input %T", input)
}

func parseObject(get func(key string) (any, bool)) (Like, error) {
	rawLat, ok := get("lat")
	if !ok {
		return nil, shapeMismatch("object has no lat key")
	}
	lat, ok := toFloat(rawLat)
	if !ok {
		return nil, shapeMismatch("lat is not a number: %v", rawLat)
	}

	if rawLng, ok := get("lng"); ok {
		lng, ok := toFloat(rawLng)
		if !ok {
			return nil, shapeMismatch("lng is not a number: %v", rawLng)
		}

		return LngLatObject{Lng: lng, Lat: lat}, nil
	}

	if rawLon, ok := get("lon"); ok {
		lon, ok := toFloat(rawLon)
		if !ok {
			return nil, shapeMismatch("lon is not a number: %v", rawLon)
		}

		return LonLatObject{Lon: lon, Lat: lat}, nil
	}

	return nil, shapeMismatch("object has neither lng nor lon key")
}

func parsePair(n int, at func(i int) any) (Like, error) {
	if n != 2 {
		return nil, shapeMismatch("array must hold exactly 2 numbers, got %d", n)
	}

	lng, ok := toFloat(at(0))
	if !ok {
		return nil, shapeMismatch("longitude is not a number: %v", at(0))
	}
	lat, ok := toFloat(at(1))
	if !ok {
		return nil, shapeMismatch("latitude is not a number: %v", at(1))
	}

	return Array{lng, lat}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Decode parses a JSON document holding one of the object or array shapes.
// Decoded objects come back as LngLatObject or LonLatObject, never as LngLat.
func Decode(data []byte) (Like, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &Error{Kind: KindConversion, Message: "lnglat: decode json", Err: err}
	}

	return Parse(raw)
}

// Value returns the payload form of l: a map with "lng"/"lat" or "lon"/"lat"
// keys for the object shapes and the canonical type, or a []float64 for Array.
// A nil l gives nil.
func Value(l Like) any {
	if isNil(l) {
		return nil
	}

	switch l.Shape() {
	case ShapeLonLatObject:
		return map[string]any{"lon": l.Longitude(), "lat": l.Latitude()}
	case ShapeArray:
		return []float64{l.Longitude(), l.Latitude()}
	default:
		return map[string]any{"lng": l.Longitude(), "lat": l.Latitude()}
	}
}

// Marshal encodes l as JSON in the shape it was given.
func Marshal(l Like) ([]byte, error) {
	if isNil(l) {
		return nil, &Error{Kind: KindConversion, Message: "lnglat: marshal nil coordinate"}
	}

	data, err := json.Marshal(Value(l))
	if err != nil {
		return nil, &Error{Kind: KindConversion, Message: fmt.Sprintf("lnglat: marshal %s", l.Shape()), Err: err}
	}

	return data, nil
}
