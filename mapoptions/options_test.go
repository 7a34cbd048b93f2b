package mapoptions

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/maplibre/lnglat"
)

type testElement struct {
	id string
}

func (e *testElement) ElementID() string { return e.id }

func TestFinalizeContainerOnly(t *testing.T) {
	payload, err := New("map").Finalize()
	require.NoError(t, err)
	assert.Equal(t, []string{"container"}, payload.Keys())
	assert.Equal(t, "map", payload["container"])
}

func TestFinalizeZoom(t *testing.T) {
	payload, err := New("map").WithZoom(3.2).Finalize()
	require.NoError(t, err)
	require.Len(t, payload, 2)
	assert.InDelta(t, 3.2, payload["zoom"], 1e-12)
}

func TestWithoutInteractivity(t *testing.T) {
	payload, err := New("map").WithoutInteractivity().Finalize()
	require.NoError(t, err)
	v, ok := payload["interactive"]
	require.True(t, ok)
	assert.Equal(t, false, v)

	payload, err = New("map").WithZoom(1).Finalize()
	require.NoError(t, err)
	assert.NotContains(t, payload, "interactive")
}

func TestFinalizeIsIdempotent(t *testing.T) {
	o := New("map").
		WithStyle(map[string]any{"version": 8, "sources": map[string]any{}, "layers": []any{}}).
		WithCenter([]float64{-74.5, 40}).
		WithBounds([2]float64{-75, 39}, lnglat.New(-74, 41)).
		WithZoom(2).
		WithLogo().
		WithoutKeyboard()

	first, err := o.Finalize()
	require.NoError(t, err)
	second, err := o.Finalize()
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Finalize() mismatch (-first +second):\n%s", diff)
	}
}

func TestTransitionsDoNotMutate(t *testing.T) {
	base := New("map")
	zoomed := base.WithZoom(1)
	rezoomed := zoomed.WithZoom(2)

	assert.Equal(t, 0, base.Len())
	assert.False(t, base.Has(FieldZoom))

	v, _ := zoomed.Get(FieldZoom)
	assert.Equal(t, 1.0, v)

	v, _ = rezoomed.Get(FieldZoom)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, 1, rezoomed.Len())

	cleared := rezoomed.Clear(FieldZoom)
	assert.False(t, cleared.Has(FieldZoom))
	assert.True(t, rezoomed.Has(FieldZoom))
	assert.Equal(t, cleared, cleared.Clear(FieldPitch))
}

func TestTypedTransitions(t *testing.T) {
	el := &testElement{id: "map"}

	tests := []struct {
		name string
		opts Options
		key  string
		want any
	}{
		{"style url", New("m").WithStyle("https://demotiles.maplibre.org/style.json"), "style", "https://demotiles.maplibre.org/style.json"},
		{"center lnglat", New("m").WithCenter(lnglat.New(1, 2)), "center", map[string]any{"lng": 1.0, "lat": 2.0}},
		{"center lon object", New("m").WithCenter(lnglat.LonLatObject{Lon: 1, Lat: 2}), "center", map[string]any{"lon": 1.0, "lat": 2.0}},
		{"center array", New("m").WithCenter([2]float64{1, 2}), "center", []float64{1, 2}},
		{"bearing", New("m").WithBearing(45), "bearing", 45.0},
		{"pitch", New("m").WithPitch(30), "pitch", 30.0},
		{"roll", New("m").WithRoll(5), "roll", 5.0},
		{"elevation", New("m").WithElevation(100), "elevation", 100.0},
		{"min zoom", New("m").WithMinZoom(1), "minZoom", 1.0},
		{"max zoom", New("m").WithMaxZoom(18), "maxZoom", 18.0},
		{"min pitch", New("m").WithMinPitch(10), "minPitch", 10.0},
		{"max pitch", New("m").WithMaxPitch(85), "maxPitch", 85.0},
		{"bounds", New("m").WithBounds([]float64{-1, -2}, map[string]any{"lng": 3.0, "lat": 4.0}), "bounds",
			[]any{[]float64{-1, -2}, map[string]any{"lng": 3.0, "lat": 4.0}}},
		{"max bounds", New("m").WithMaxBounds(lnglat.New(-1, -2), lnglat.New(3, 4)), "maxBounds",
			[]any{map[string]any{"lng": -1.0, "lat": -2.0}, map[string]any{"lng": 3.0, "lat": 4.0}}},
		{"bearing snap", New("m").WithBearingSnap(10), "bearingSnap", 10.0},
		{"click tolerance", New("m").WithClickTolerance(5), "clickTolerance", 5.0},
		{"fade duration", New("m").WithFadeDuration(150 * time.Millisecond), "fadeDuration", 150.0},
		{"pixel ratio", New("m").WithPixelRatio(2), "pixelRatio", 2.0},
		{"tile cache", New("m").WithTileCacheSize(512), "maxTileCacheSize", 512},
		{"tile cache zoom levels", New("m").WithTileCacheZoomLevels(3), "maxTileCacheZoomLevels", 3},
		{"canvas size", New("m").WithCanvasSize(2048, 1024), "maxCanvasSize", []int{2048, 1024}},
		{"logo position", New("m").WithLogoPosition(TopRight), "logoPosition", "top-right"},
		{"locale", New("m").WithLocale(map[string]string{"NavigationControl.ZoomIn": "Zoom in"}), "locale",
			map[string]string{"NavigationControl.ZoomIn": "Zoom in"}},
		{"ideograph font", New("m").WithIdeographFontFamily("Noto Sans"), "localIdeographFontFamily", "Noto Sans"},
		{"logo", New("m").WithLogo(), "maplibreLogo", true},
		{"hash", New("m").WithHash(), "hash", true},
		{"cooperative gestures", New("m").WithCooperativeGestures(), "cooperativeGestures", true},
		{"resource timing", New("m").WithResourceTiming(), "collectResourceTiming", true},
		{"roll enabled", New("m").WithRollEnabled(), "rollEnabled", true},
		{"attribution", New("m").WithoutAttribution(), "attributionControl", false},
		{"refresh expired", New("m").WithoutRefreshExpiredTiles(), "refreshExpiredTiles", false},
		{"scroll zoom", New("m").WithoutScrollZoom(), "scrollZoom", false},
		{"box zoom", New("m").WithoutBoxZoom(), "boxZoom", false},
		{"drag rotate", New("m").WithoutDragRotate(), "dragRotate", false},
		{"drag pan", New("m").WithoutDragPan(), "dragPan", false},
		{"keyboard", New("m").WithoutKeyboard(), "keyboard", false},
		{"double click", New("m").WithoutDoubleClickZoom(), "doubleClickZoom", false},
		{"touch zoom rotate", New("m").WithoutTouchZoomRotate(), "touchZoomRotate", false},
		{"touch pitch", New("m").WithoutTouchPitch(), "touchPitch", false},
		{"pitch with rotate", New("m").WithoutPitchWithRotate(), "pitchWithRotate", false},
		{"track resize", New("m").WithoutTrackResize(), "trackResize", false},
		{"world copies", New("m").WithoutWorldCopies(), "renderWorldCopies", false},
		{"cross source collisions", New("m").WithoutCrossSourceCollisions(), "crossSourceCollisions", false},
		{"style validation", New("m").WithoutStyleValidation(), "validateStyle", false},
		{"cancel pending", New("m").WithoutCancelPendingTileRequests(), "cancelPendingTileRequestsWhileZooming", false},
		{"center clamped", New("m").WithoutCenterClampedToGround(), "centerClampedToGround", false},
		{"element container", New(el).WithZoom(1), "container", el},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := tc.opts.Finalize()
			require.NoError(t, err)
			assert.LessOrEqual(t, len(payload), 2)
			assert.Equal(t, tc.want, payload[tc.key])
		})
	}
}

func TestInlineStyle(t *testing.T) {
	doc := json.RawMessage(`{"version":8,"sources":{},"layers":[]}`)

	payload, err := New("map").WithStyle(doc).Finalize()
	require.NoError(t, err)
	assert.Equal(t, doc, payload["style"])

	payload, err = New("map").WithStyle([]byte(doc)).Finalize()
	require.NoError(t, err)
	assert.Equal(t, doc, payload["style"])

	type layer struct {
		ID string `json:"id"`
	}
	inline := struct {
		Layers []layer `json:"layers"`
	}{Layers: []layer{{ID: "background"}}}

	// typed documents are held as their JSON encoding
	o := New("map").WithStyle(inline)
	inline.Layers[0].ID = "changed"

	payload, err = o.Finalize()
	require.NoError(t, err)
	raw, ok := payload["style"].(json.RawMessage)
	require.True(t, ok, "got %T", payload["style"])
	assert.JSONEq(t, `{"layers":[{"id":"background"}]}`, string(raw))
}

func TestRecordIsDetachedFromInputs(t *testing.T) {
	center := []float64{1, 2}
	corner := []any{3.0, 4.0}
	style := map[string]any{"version": 8, "layers": []any{map[string]any{"id": "bg"}}}
	raw := json.RawMessage(`{"version":8}`)
	point := &lnglat.LngLat{Lng: 5, Lat: 6}
	locale := map[string]string{"ScrollZoomBlocker.CtrlMessage": "Use ctrl"}

	o := New("map").
		WithCenter(center).
		WithMaxBounds(corner, point).
		WithStyle(style).
		WithLocale(locale)
	withRaw := New("map").WithStyle(raw)

	first, err := o.Finalize()
	require.NoError(t, err)
	firstRaw, err := withRaw.Finalize()
	require.NoError(t, err)

	want := Payload{
		"container": "map",
		"center":    []float64{1, 2},
		"maxBounds": []any{[]float64{3, 4}, map[string]any{"lng": 5.0, "lat": 6.0}},
		"style":     map[string]any{"version": 8, "layers": []any{map[string]any{"id": "bg"}}},
		"locale":    map[string]string{"ScrollZoomBlocker.CtrlMessage": "Use ctrl"},
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("first payload mismatch (-want +got):\n%s", diff)
	}

	// change every input after the transitions
	center[0] = 99
	corner[0] = 99.0
	style["version"] = 9
	style["layers"].([]any)[0].(map[string]any)["id"] = "changed"
	copy(raw, `{"version":9}`)
	point.Lng = 99
	locale["ScrollZoomBlocker.CtrlMessage"] = "changed"

	// and the payload handed out earlier
	first["style"].(map[string]any)["version"] = 10
	first["center"].([]float64)[1] = 99
	firstRaw["style"].(json.RawMessage)[11] = '7'

	again, err := o.Finalize()
	require.NoError(t, err)
	if diff := cmp.Diff(want, again); diff != "" {
		t.Errorf("record changed through a shared reference (-want +got):\n%s", diff)
	}

	againRaw, err := withRaw.Finalize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":8}`, string(againRaw["style"].(json.RawMessage)))

	// Get hands out copies as well
	v, ok := o.Get(FieldCenter)
	require.True(t, ok)
	v.([]float64)[0] = 42
	again, err = o.Finalize()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, again["center"])
}

func TestContainerValues(t *testing.T) {
	el := &testElement{id: "host"}

	tests := []struct {
		name      string
		container any
		want      any
	}{
		{"string", "map", "map"},
		{"container id", ContainerID("map"), "map"},
		{"container element", ContainerElement(el), el},
		{"element", el, el},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := New(tc.container).Finalize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, payload[KeyContainer])
		})
	}

	assert.True(t, ContainerElement(el).IsElement())
	assert.Equal(t, "host", ContainerElement(el).ID())
	assert.Equal(t, "element(host)", ContainerElement(el).String())
	assert.Equal(t, "map", ContainerID("map").String())
	assert.False(t, ContainerID("map").IsElement())
}

func TestFinalizeErrors(t *testing.T) {
	ch := make(chan int)

	tests := []struct {
		name  string
		opts  Options
		field string
		check func(error) bool
	}{
		{"container number", New(42), KeyContainer, lnglat.IsShapeMismatch},
		{"container nil", New(nil), KeyContainer, lnglat.IsShapeMismatch},
		{"center unknown keys", New("m").WithCenter(map[string]any{"foo": 1, "bar": 2}), FieldCenter, lnglat.IsShapeMismatch},
		{"center short array", New("m").WithCenter([]float64{1}), FieldCenter, lnglat.IsShapeMismatch},
		{"bounds corner", New("m").WithBounds("sw", []float64{1, 2}), FieldBounds, lnglat.IsShapeMismatch},
		{"style channel", New("m").WithStyle(map[string]any{"bad": ch}), FieldStyle, lnglat.IsConversionFailure},
		{"style invalid json", New("m").WithStyle(json.RawMessage(`{`)), FieldStyle, lnglat.IsConversionFailure},
		{"style nil", New("m").WithStyle(nil), FieldStyle, lnglat.IsConversionFailure},
		{"logo position", New("m").WithLogoPosition("middle"), FieldLogoPosition, lnglat.IsConversionFailure},
		{"tile cache overflow", New("m").with(FieldTileCacheSize, 1e300), FieldTileCacheSize, lnglat.IsConversionFailure},
		{"tile cache two to the 63", New("m").with(FieldTileCacheSize, 9223372036854775808.0), FieldTileCacheSize, lnglat.IsConversionFailure},
		{"tile cache underflow", New("m").with(FieldTileCacheZoomLevels, -1e19), FieldTileCacheZoomLevels, lnglat.IsConversionFailure},
		{"canvas overflow", New("m").with(FieldCanvasSize, []any{1e300, 2}), FieldCanvasSize, lnglat.IsConversionFailure},
		{"canvas fraction", New("m").WithCanvasSize(1, 2).with(FieldCanvasSize, []any{1.5, 2}), FieldCanvasSize, lnglat.IsConversionFailure},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := tc.opts.WithZoom(3).Finalize()
			require.Error(t, err)
			assert.Nil(t, payload)
			assert.True(t, tc.check(err), "unexpected error kind: %v", err)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestGenericTransitions(t *testing.T) {
	o, err := New("map").Set(FieldZoom, 4)
	require.NoError(t, err)
	o, err = o.Enable(FieldHash)
	require.NoError(t, err)
	o, err = o.Disable(FieldDragPan)
	require.NoError(t, err)

	payload, err := o.Finalize()
	require.NoError(t, err)
	assert.Equal(t, Payload{"container": "map", "zoom": 4.0, "hash": true, "dragPan": false}, payload)
	assert.Equal(t, []string{FieldDragPan, FieldHash, FieldZoom}, o.Names())

	_, err = o.Set("nope", 1)
	assert.True(t, lnglat.IsConversionFailure(err))

	_, err = o.Set(FieldHash, true)
	assert.Error(t, err)

	_, err = o.Enable(FieldDragPan)
	assert.Error(t, err)

	same, err := o.Disable(FieldZoom)
	assert.Error(t, err)
	assert.Equal(t, o, same)

	bad, err := New("map").Set(FieldZoom, "far")
	require.NoError(t, err)
	_, err = bad.Finalize()
	assert.True(t, lnglat.IsConversionFailure(err))
}

type fakeMap struct {
	payload Payload
}

type mockConstructor struct {
	err   error
	calls int
}

func (m *mockConstructor) Construct(p Payload) (*fakeMap, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	return &fakeMap{payload: p}, nil
}

func TestBuild(t *testing.T) {
	c := &mockConstructor{}

	m, err := Build[*fakeMap](New("map").WithZoom(2).WithLogo(), c)
	require.NoError(t, err)
	assert.Equal(t, Payload{"container": "map", "zoom": 2.0, "maplibreLogo": true}, m.payload)
	assert.Equal(t, 1, c.calls)
}

func TestBuildConstructionFailure(t *testing.T) {
	cause := errors.New("container 'map' not found")
	c := &mockConstructor{err: cause}

	m, err := Build[*fakeMap](New("map"), c)
	assert.Nil(t, m)
	assert.True(t, lnglat.IsConstructionFailure(err))
	assert.ErrorIs(t, err, cause)
}

func TestBuildSerializationFailure(t *testing.T) {
	c := &mockConstructor{}

	_, err := Build[*fakeMap](New("map").WithCenter("nowhere"), c)
	assert.True(t, lnglat.IsShapeMismatch(err))
	assert.Zero(t, c.calls)
}

func TestConstructorFunc(t *testing.T) {
	fn := ConstructorFunc[string](func(p Payload) (string, error) {
		return p["container"].(string), nil
	})

	got, err := Build[string](New("map"), fn)
	require.NoError(t, err)
	assert.Equal(t, "map", got)
}
