package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/maplibre/internal/geo"
	"github.com/woozymasta/maplibre/lnglat"
	"github.com/woozymasta/maplibre/mapoptions"
)

const galleryDoc = `
title: MapLibre examples
style: https://demotiles.maplibre.org/style.json
examples:
  - name: disable-interaction
    title: Disable map interactions
    options:
      center: [-74.5, 40]
      zoom: 9
      interactive: false
  - name: display-a-map
    index: 1
    container: viewport
    options:
      style: https://tiles.example.com/dark.json
      center: {lon: 2.35, lat: 48.85}
    markers:
      - name: Paris
        position: {lon: 2.35, lat: 48.85}
      - position: [-0.12, 51.5]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(galleryDoc))
	require.NoError(t, err)

	assert.Equal(t, "MapLibre examples", cfg.Title)
	require.Len(t, cfg.Examples, 2)

	// indexed entries sort first
	assert.Equal(t, "display-a-map", cfg.Examples[0].Name)
	assert.Equal(t, "viewport", cfg.Examples[0].Container)
	assert.Equal(t, "display-a-map", cfg.Examples[0].Title)

	assert.Equal(t, "disable-interaction", cfg.Examples[1].Name)
	assert.Equal(t, DefaultContainer, cfg.Examples[1].Container)

	_, ok := cfg.Find("display-a-map")
	assert.True(t, ok)
	_, ok = cfg.Find("missing")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no name", "examples:\n  - title: x\n"},
		{"duplicate", "examples:\n  - name: a\n  - name: a\n"},
		{"bad yaml", "examples: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(galleryDoc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Examples, 2)
	assert.Equal(t, filepath.Dir(path), cfg.Dir)
	assert.Equal(t, filepath.Join(cfg.Dir, "shots", "a.png"), cfg.Resolve("shots/a.png"))
	assert.Equal(t, "https://example.com/a.png", cfg.Resolve("https://example.com/a.png"))
	assert.Equal(t, "/abs/a.png", cfg.Resolve("/abs/a.png"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExamplePayload(t *testing.T) {
	cfg, err := Parse([]byte(galleryDoc))
	require.NoError(t, err)

	got, err := cfg.Examples[1].Payload(cfg.Style)
	require.NoError(t, err)

	want := mapoptions.Payload{
		"container":   "map",
		"style":       "https://demotiles.maplibre.org/style.json",
		"center":      []float64{-74.5, 40},
		"zoom":        9.0,
		"interactive": false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	// own style wins over the default one
	got, err = cfg.Examples[0].Payload(cfg.Style)
	require.NoError(t, err)
	assert.Equal(t, "https://tiles.example.com/dark.json", got["style"])
	assert.Equal(t, "viewport", got["container"])
}

func TestExamplePayloadErrors(t *testing.T) {
	unknown := Example{Name: "x", Container: "map", Options: map[string]any{"transformRequest": "fn"}}
	_, err := unknown.Payload(nil)
	assert.True(t, lnglat.IsConversionFailure(err))

	badCenter := Example{Name: "x", Container: "map", Options: map[string]any{"center": []any{1.0}}}
	_, err = badCenter.Payload(nil)
	assert.True(t, lnglat.IsShapeMismatch(err))
}

func TestMarkerCollection(t *testing.T) {
	cfg, err := Parse([]byte(galleryDoc))
	require.NoError(t, err)

	fc, err := cfg.Examples[0].MarkerCollection()
	require.NoError(t, err)

	want := geo.NewFeatureCollection()
	want.Features = []geo.Feature{
		geo.NewPoint(2.35, 48.85, map[string]interface{}{"name": "Paris"}),
		geo.NewPoint(-0.12, 51.5, map[string]interface{}{}),
	}
	if diff := cmp.Diff(want, fc); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}

	bad := Example{Name: "x", Markers: []Marker{{Position: map[string]any{"x": 1, "y": 2}}}}
	_, err = bad.MarkerCollection()
	assert.True(t, lnglat.IsShapeMismatch(err))
}

func TestSelect(t *testing.T) {
	cfg, err := Parse([]byte(galleryDoc))
	require.NoError(t, err)

	all, missing := cfg.Select(nil)
	assert.Len(t, all, 2)
	assert.Empty(t, missing)

	picked, missing := cfg.Select([]string{"disable-interaction", "nope", "disable-interaction"})
	require.Len(t, picked, 1)
	assert.Equal(t, "disable-interaction", picked[0].Name)
	assert.Equal(t, []string{"nope"}, missing)
}

func TestBundledGallery(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "gallery.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Examples)

	for _, ex := range cfg.Examples {
		t.Run(ex.Name, func(t *testing.T) {
			_, err := ex.Payload(cfg.Style)
			require.NoError(t, err)
			_, err = ex.MarkerCollection()
			require.NoError(t, err)
		})
	}

	ex, ok := cfg.Find("display-a-satellite-map")
	require.True(t, ok)

	payload, err := ex.Payload(cfg.Style)
	require.NoError(t, err)

	style, ok := payload["style"].(map[string]any)
	require.True(t, ok, "inline style decoded as %T", payload["style"])
	assert.Equal(t, 8, style["version"])
	sources := style["sources"].(map[string]any)
	assert.Contains(t, sources, "satellite")

	data, err := payload.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tiles":["https://tiles.maps.eox.at/wmts/1.0.0/s2cloudless-2020_3857/default/g/{z}/{y}/{x}.jpg"]`)
}
