package mapoptions

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/woozymasta/maplibre/lnglat"
)

// deepCopy detaches the reference types a caller may keep mutating: the
// JSON-shaped slices and maps, raw documents and pointer coordinates.
// Scalars, arrays and element handles are returned as is.
func deepCopy(v any) any {
	switch t := v.(type) {
	case []float64:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	case []string:
		return slices.Clone(t)
	case []byte:
		return slices.Clone(t)
	case json.RawMessage:
		return slices.Clone(t)
	case map[string]string:
		return maps.Clone(t)
	case map[string]float64:
		return maps.Clone(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case map[any]any:
		if t == nil {
			return t
		}
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case Bounds:
		return Bounds{SouthWest: deepCopy(t.SouthWest), NorthEast: deepCopy(t.NorthEast)}
	case *lnglat.LngLat:
		if t != nil {
			return *t
		}
	case *lnglat.LngLatObject:
		if t != nil {
			return *t
		}
	case *lnglat.LonLatObject:
		if t != nil {
			return *t
		}
	case *lnglat.Array:
		if t != nil {
			return *t
		}
	}

	return v
}

// snapshotStyle copies a style on the way into the record. Inline documents of
// other Go types are encoded right away so later changes to them are not seen.
// A document that cannot be encoded is kept and reported by Finalize.
func snapshotStyle(v any) any {
	switch v.(type) {
	case nil, string, []byte, json.RawMessage, map[string]any, map[any]any, []any:
		return deepCopy(v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return v
	}

	return json.RawMessage(data)
}
