package mapoptions

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/woozymasta/maplibre/lnglat"
)

// codec turns a stored field value into its payload form.
// Stored values are kept as given so that conversion errors surface at Finalize.
type codec func(v any) (any, error)

var (
	floatCodec      codec = encodeFloat
	intCodec        codec = encodeInt
	stringCodec     codec = encodeString
	coordinateCodec codec = encodeCoordinate
	boundsCodec     codec = encodeBounds
	sizeCodec       codec = encodeSize
	positionCodec   codec = encodePosition
	localeCodec     codec = encodeLocale
	styleCodec      codec = encodeStyle
)

func conversionError(format string, args ...any) *lnglat.Error {
	return &lnglat.Error{
		Kind:    lnglat.KindConversion,
		Message: "mapoptions: " + fmt.Sprintf(format, args...),
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
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

func encodeFloat(v any) (any, error) {
	if d, ok := v.(time.Duration); ok {
		return float64(d) / float64(time.Millisecond), nil
	}

	f, ok := number(v)
	if !ok {
		return nil, conversionError("expected a number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, conversionError("number %v has no JSON representation", f)
	}

	return f, nil
}

func encodeInt(v any) (any, error) {
	f, ok := number(v)
	if !ok {
		return nil, conversionError("expected an integer, got %T", v)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, conversionError("expected an integer, got %v", f)
	}
	// float64(math.MinInt) is exact, its negation is one past math.MaxInt
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return nil, conversionError("integer %v out of range", f)
	}

	return int(f), nil
}

func encodeString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, conversionError("expected a string, got %T", v)
	}

	return s, nil
}

func encodeCoordinate(v any) (any, error) {
	l, err := lnglat.Parse(v)
	if err != nil {
		return nil, err
	}

	return lnglat.Value(l), nil
}

// Bounds is a LngLatBoundsLike given as south-west and north-east corners.
// Each corner accepts anything lnglat.Parse accepts.
type Bounds struct {
	SouthWest any
	NorthEast any
}

func encodeBounds(v any) (any, error) {
	var sw, ne any

	switch b := v.(type) {
	case Bounds:
		sw, ne = b.SouthWest, b.NorthEast
	case [2]lnglat.LngLat:
		sw, ne = b[0], b[1]
	case [4]float64:
		sw, ne = []float64{b[0], b[1]}, []float64{b[2], b[3]}
	case []float64:
		if len(b) != 4 {
			return nil, boundsMismatch(v)
		}
		sw, ne = b[:2], b[2:]
	case []any:
		switch len(b) {
		case 2:
			sw, ne = b[0], b[1]
		case 4:
			sw, ne = b[:2], b[2:]
		default:
			return nil, boundsMismatch(v)
		}
	default:
		return nil, boundsMismatch(v)
	}

	southWest, err := lnglat.Parse(sw)
	if err != nil {
		return nil, err
	}
	northEast, err := lnglat.Parse(ne)
	if err != nil {
		return nil, err
	}

	return []any{lnglat.Value(southWest), lnglat.Value(northEast)}, nil
}

func boundsMismatch(v any) *lnglat.Error {
	return &lnglat.Error{
		Kind:    lnglat.KindShapeMismatch,
		Message: fmt.Sprintf("mapoptions: bounds must be [sw, ne] or [west, south, east, north], got %T", v),
	}
}

func encodeSize(v any) (any, error) {
	var w, h any

	switch s := v.(type) {
	case [2]int:
		w, h = s[0], s[1]
	case []int:
		if len(s) != 2 {
			return nil, conversionError("size must hold 2 integers, got %d", len(s))
		}
		w, h = s[0], s[1]
	case []any:
		if len(s) != 2 {
			return nil, conversionError("size must hold 2 integers, got %d", len(s))
		}
		w, h = s[0], s[1]
	default:
		return nil, conversionError("expected a [width, height] size, got %T", v)
	}

	width, err := encodeInt(w)
	if err != nil {
		return nil, err
	}
	height, err := encodeInt(h)
	if err != nil {
		return nil, err
	}

	return []int{width.(int), height.(int)}, nil
}

func encodePosition(v any) (any, error) {
	var p Position

	switch s := v.(type) {
	case Position:
		p = s
	case string:
		p = Position(s)
	default:
		return nil, conversionError("expected a control position, got %T", v)
	}

	if !p.Valid() {
		return nil, conversionError("unknown control position %q", p)
	}

	return string(p), nil
}

func encodeLocale(v any) (any, error) {
	out := make(map[string]string)

	switch m := v.(type) {
	case map[string]string:
		for k, s := range m {
			out[k] = s
		}
	case map[string]any:
		for k, raw := range m {
			s, ok := raw.(string)
			if !ok {
				return nil, conversionError("locale %q must be a string, got %T", k, raw)
			}
			out[k] = s
		}
	default:
		return nil, conversionError("expected a locale map, got %T", v)
	}

	return out, nil
}

// encodeStyle keeps a URL string or an inline style document as given.
// Inline documents are only checked for being representable as JSON and are
// returned as copies, so the payload shares nothing with the record.
func encodeStyle(v any) (any, error) {
	switch s := v.(type) {
	case nil:
		return nil, conversionError("style is nil")
	case string:
		return s, nil
	case []byte:
		return encodeStyle(json.RawMessage(s))
	case json.RawMessage:
		if !json.Valid(s) {
			return nil, conversionError("inline style is not valid JSON")
		}

		return slices.Clone(s), nil
	}

	if _, err := json.Marshal(v); err != nil {
		return nil, &lnglat.Error{
			Kind:    lnglat.KindConversion,
			Message: fmt.Sprintf("mapoptions: inline style %T", v),
			Err:     err,
		}
	}

	return deepCopy(v), nil
}
