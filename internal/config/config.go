// Package config handles the example gallery configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/maplibre/internal/geo"
	"github.com/woozymasta/maplibre/lnglat"
	"github.com/woozymasta/maplibre/mapoptions"

	"gopkg.in/yaml.v3"
)

// DefaultContainer is the element id used when an example does not name one.
const DefaultContainer = "map"

// Config represents the root configuration file structure.
type Config struct {
	// Style applies to every example without its own style option.
	Style       any       `yaml:"style,omitempty" json:"-"`
	Title       string    `yaml:"title" json:"title"`
	Attribution string    `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Examples    []Example `yaml:"examples" json:"examples"`

	// Dir is the directory of the loaded file, relative screenshots resolve against it.
	Dir string `yaml:"-" json:"-"`
}

// Example is a single gallery entry.
type Example struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	// MapLibre MapOptions keys, container excluded
	Options map[string]any `yaml:"options,omitempty" json:"-"`

	Name        string   `yaml:"name" json:"name"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Container   string   `yaml:"container,omitempty" json:"container"`
	Screenshot  string   `yaml:"screenshot,omitempty" json:"-"`
	Markers     []Marker `yaml:"markers,omitempty" json:"-"`
}

// Marker is a labelled point drawn on top of an example map.
type Marker struct {
	// Position accepts any coordinate shape: [lng, lat], {lng, lat} or {lon, lat}.
	Position any    `yaml:"position" json:"-"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(path)

	return cfg, nil
}

// Parse decodes a configuration document, fills defaults and sorts examples.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cfg.Examples))
	for i := range cfg.Examples {
		ex := &cfg.Examples[i]

		if ex.Name == "" {
			return nil, fmt.Errorf("example #%d has no name", i+1)
		}
		if seen[ex.Name] {
			return nil, fmt.Errorf("duplicate example name %q", ex.Name)
		}
		seen[ex.Name] = true

		if ex.Container == "" {
			ex.Container = DefaultContainer
		}
		if ex.Title == "" {
			ex.Title = ex.Name
		}
	}

	sort.SliceStable(cfg.Examples, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if cfg.Examples[i].Index != nil {
			idxI = *cfg.Examples[i].Index
		}
		if cfg.Examples[j].Index != nil {
			idxJ = *cfg.Examples[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return cfg.Examples[i].Name < cfg.Examples[j].Name
	})

	return &cfg, nil
}

// Find returns the example with the given name.
func (c *Config) Find(name string) (Example, bool) {
	for _, ex := range c.Examples {
		if ex.Name == name {
			return ex, true
		}
	}

	return Example{}, false
}

// Select returns the named examples in the given order, skipping repeats.
// Names without a matching example are returned as missing.
// An empty list selects every example.
func (c *Config) Select(names []string) (selected []Example, missing []string) {
	if len(names) == 0 {
		return c.Examples, nil
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if ex, ok := c.Find(name); ok {
			selected = append(selected, ex)
		} else {
			missing = append(missing, name)
		}
	}

	return selected, missing
}

// Resolve turns a screenshot reference into a loadable source.
// URLs and absolute paths are kept, relative paths are joined with Dir.
func (c *Config) Resolve(source string) string {
	if source == "" || c.Dir == "" || filepath.IsAbs(source) ||
		strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return source
	}

	return filepath.Join(c.Dir, source)
}

// MapOptions builds the map options of an example. defaultStyle is used when
// the example sets no style itself and may be nil.
func (e Example) MapOptions(defaultStyle any) (mapoptions.Options, error) {
	payload := make(mapoptions.Payload, len(e.Options)+2)
	for k, v := range e.Options {
		payload[k] = v
	}
	payload[mapoptions.KeyContainer] = e.Container

	if _, ok := payload["style"]; !ok && defaultStyle != nil {
		payload["style"] = defaultStyle
	}

	opts, err := mapoptions.FromPayload(payload)
	if err != nil {
		return mapoptions.Options{}, fmt.Errorf("example %s: %w", e.Name, err)
	}

	return opts, nil
}

// Payload finalizes the example options.
func (e Example) Payload(defaultStyle any) (mapoptions.Payload, error) {
	opts, err := e.MapOptions(defaultStyle)
	if err != nil {
		return nil, err
	}

	payload, err := opts.Finalize()
	if err != nil {
		return nil, fmt.Errorf("example %s: %w", e.Name, err)
	}

	return payload, nil
}

// MarkerCollection converts the example markers to GeoJSON points.
func (e Example) MarkerCollection() (geo.FeatureCollection, error) {
	fc := geo.NewFeatureCollection()

	for i, m := range e.Markers {
		c, err := lnglat.Normalize(m.Position)
		if err != nil {
			return geo.FeatureCollection{}, fmt.Errorf("example %s marker #%d: %w", e.Name, i+1, err)
		}

		props := map[string]interface{}{}
		if m.Name != "" {
			props["name"] = m.Name
		}
		fc.Features = append(fc.Features, geo.NewPoint(c.Lng, c.Lat, props))
	}

	return fc, nil
}
