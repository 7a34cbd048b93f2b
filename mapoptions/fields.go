package mapoptions

import (
	"sort"
)

// Transition is the builder affordance a field exposes.
type Transition int

const (
	// TransitionValue fields store a converted value: WithZoom(3.2).
	TransitionValue Transition = iota
	// TransitionEnable fields default to false and can only be set to true: WithHash().
	TransitionEnable
	// TransitionDisable fields default to true and can only be set to false: WithoutKeyboard().
	TransitionDisable
)

func (t Transition) String() string {
	switch t {
	case TransitionValue:
		return "value"
	case TransitionEnable:
		return "enable"
	case TransitionDisable:
		return "disable"
	default:
		return "unknown"
	}
}

// Field describes one optional map option.
type Field struct {
	// Default is the engine default, informational for value fields.
	// It only holds scalars and arrays, so copies of a Field share nothing.
	Default any
	codec   codec
	// Name is the name used by the builder and by Set, Enable, Disable and Clear.
	Name string
	// Key is the MapLibre MapOptions key written to the payload.
	Key        string
	Transition Transition
}

// Internal field names.
const (
	FieldStyle                     = "style"
	FieldCenter                    = "center"
	FieldZoom                      = "zoom"
	FieldBearing                   = "bearing"
	FieldPitch                     = "pitch"
	FieldRoll                      = "roll"
	FieldElevation                 = "elevation"
	FieldMinZoom                   = "minZoom"
	FieldMaxZoom                   = "maxZoom"
	FieldMinPitch                  = "minPitch"
	FieldMaxPitch                  = "maxPitch"
	FieldBounds                    = "bounds"
	FieldMaxBounds                 = "maxBounds"
	FieldBearingSnap               = "bearingSnap"
	FieldClickTolerance            = "clickTolerance"
	FieldFadeDuration              = "fadeDuration"
	FieldPixelRatio                = "pixelRatio"
	FieldTileCacheSize             = "tileCacheSize"
	FieldTileCacheZoomLevels       = "tileCacheZoomLevels"
	FieldCanvasSize                = "canvasSize"
	FieldLogoPosition              = "logoPosition"
	FieldLocale                    = "locale"
	FieldIdeographFontFamily       = "ideographFontFamily"
	FieldLogo                      = "logo"
	FieldHash                      = "hash"
	FieldCooperativeGestures       = "cooperativeGestures"
	FieldResourceTiming            = "resourceTiming"
	FieldRollEnabled               = "rollEnabled"
	FieldInteractivity             = "interactivity"
	FieldAttribution               = "attribution"
	FieldRefreshExpiredTiles       = "refreshExpiredTiles"
	FieldScrollZoom                = "scrollZoom"
	FieldBoxZoom                   = "boxZoom"
	FieldDragRotate                = "dragRotate"
	FieldDragPan                   = "dragPan"
	FieldKeyboard                  = "keyboard"
	FieldDoubleClickZoom           = "doubleClickZoom"
	FieldTouchZoomRotate           = "touchZoomRotate"
	FieldTouchPitch                = "touchPitch"
	FieldPitchWithRotate           = "pitchWithRotate"
	FieldTrackResize               = "trackResize"
	FieldWorldCopies               = "worldCopies"
	FieldCrossSourceCollisions     = "crossSourceCollisions"
	FieldStyleValidation           = "styleValidation"
	FieldCancelPendingTileRequests = "cancelPendingTileRequests"
	FieldCenterClampedToGround     = "centerClampedToGround"
)

// KeyContainer is the payload key of the mandatory container.
const KeyContainer = "container"

var fields = []Field{
	{Name: FieldStyle, Key: "style", codec: styleCodec},
	{Name: FieldCenter, Key: "center", Default: [2]float64{0, 0}, codec: coordinateCodec},
	{Name: FieldZoom, Key: "zoom", Default: 0.0, codec: floatCodec},
	{Name: FieldBearing, Key: "bearing", Default: 0.0, codec: floatCodec},
	{Name: FieldPitch, Key: "pitch", Default: 0.0, codec: floatCodec},
	{Name: FieldRoll, Key: "roll", Default: 0.0, codec: floatCodec},
	{Name: FieldElevation, Key: "elevation", Default: 0.0, codec: floatCodec},
	{Name: FieldMinZoom, Key: "minZoom", Default: -2.0, codec: floatCodec},
	{Name: FieldMaxZoom, Key: "maxZoom", Default: 22.0, codec: floatCodec},
	{Name: FieldMinPitch, Key: "minPitch", Default: 0.0, codec: floatCodec},
	{Name: FieldMaxPitch, Key: "maxPitch", Default: 60.0, codec: floatCodec},
	{Name: FieldBounds, Key: "bounds", codec: boundsCodec},
	{Name: FieldMaxBounds, Key: "maxBounds", codec: boundsCodec},
	{Name: FieldBearingSnap, Key: "bearingSnap", Default: 7.0, codec: floatCodec},
	{Name: FieldClickTolerance, Key: "clickTolerance", Default: 3.0, codec: floatCodec},
	{Name: FieldFadeDuration, Key: "fadeDuration", Default: 300.0, codec: floatCodec},
	{Name: FieldPixelRatio, Key: "pixelRatio", codec: floatCodec},
	{Name: FieldTileCacheSize, Key: "maxTileCacheSize", codec: intCodec},
	{Name: FieldTileCacheZoomLevels, Key: "maxTileCacheZoomLevels", Default: 5, codec: intCodec},
	{Name: FieldCanvasSize, Key: "maxCanvasSize", Default: [2]int{4096, 4096}, codec: sizeCodec},
	{Name: FieldLogoPosition, Key: "logoPosition", Default: BottomLeft, codec: positionCodec},
	{Name: FieldLocale, Key: "locale", codec: localeCodec},
	{Name: FieldIdeographFontFamily, Key: "localIdeographFontFamily", Default: "sans-serif", codec: stringCodec},

	{Name: FieldLogo, Key: "maplibreLogo", Transition: TransitionEnable, Default: false},
	{Name: FieldHash, Key: "hash", Transition: TransitionEnable, Default: false},
	{Name: FieldCooperativeGestures, Key: "cooperativeGestures", Transition: TransitionEnable, Default: false},
	{Name: FieldResourceTiming, Key: "collectResourceTiming", Transition: TransitionEnable, Default: false},
	{Name: FieldRollEnabled, Key: "rollEnabled", Transition: TransitionEnable, Default: false},

	{Name: FieldInteractivity, Key: "interactive", Transition: TransitionDisable, Default: true},
	{Name: FieldAttribution, Key: "attributionControl", Transition: TransitionDisable, Default: true},
	{Name: FieldRefreshExpiredTiles, Key: "refreshExpiredTiles", Transition: TransitionDisable, Default: true},
	{Name: FieldScrollZoom, Key: "scrollZoom", Transition: TransitionDisable, Default: true},
	{Name: FieldBoxZoom, Key: "boxZoom", Transition: TransitionDisable, Default: true},
	{Name: FieldDragRotate, Key: "dragRotate", Transition: TransitionDisable, Default: true},
	{Name: FieldDragPan, Key: "dragPan", Transition: TransitionDisable, Default: true},
	{Name: FieldKeyboard, Key: "keyboard", Transition: TransitionDisable, Default: true},
	{Name: FieldDoubleClickZoom, Key: "doubleClickZoom", Transition: TransitionDisable, Default: true},
	{Name: FieldTouchZoomRotate, Key: "touchZoomRotate", Transition: TransitionDisable, Default: true},
	{Name: FieldTouchPitch, Key: "touchPitch", Transition: TransitionDisable, Default: true},
	{Name: FieldPitchWithRotate, Key: "pitchWithRotate", Transition: TransitionDisable, Default: true},
	{Name: FieldTrackResize, Key: "trackResize", Transition: TransitionDisable, Default: true},
	{Name: FieldWorldCopies, Key: "renderWorldCopies", Transition: TransitionDisable, Default: true},
	{Name: FieldCrossSourceCollisions, Key: "crossSourceCollisions", Transition: TransitionDisable, Default: true},
	{Name: FieldStyleValidation, Key: "validateStyle", Transition: TransitionDisable, Default: true},
	{Name: FieldCancelPendingTileRequests, Key: "cancelPendingTileRequestsWhileZooming", Transition: TransitionDisable, Default: true},
	{Name: FieldCenterClampedToGround, Key: "centerClampedToGround", Transition: TransitionDisable, Default: true},
}

var (
	fieldsByName = indexFields(func(f Field) string { return f.Name })
	fieldsByKey  = indexFields(func(f Field) string { return f.Key })
)

func indexFields(key func(Field) string) map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[key(f)] = i
	}

	return idx
}

// Fields returns a copy of the field table in payload order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)

	return out
}

// Lookup finds a field by its internal name.
func Lookup(name string) (Field, bool) {
	i, ok := fieldsByName[name]
	if !ok {
		return Field{}, false
	}

	return fields[i], true
}

// LookupKey finds a field by its payload key.
func LookupKey(key string) (Field, bool) {
	i, ok := fieldsByKey[key]
	if !ok {
		return Field{}, false
	}

	return fields[i], true
}

// Keys lists the payload keys known to the builder, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	sort.Strings(keys)

	return keys
}
