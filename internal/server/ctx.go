package server

import (
	"encoding/json"
	"fmt"
	"hash/crc32"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/maplibre/assets"
	"github.com/woozymasta/maplibre/internal/config"
	"github.com/woozymasta/maplibre/internal/gallery"
	"github.com/woozymasta/maplibre/mapoptions"
)

// Example is the public description of a served example.
type Example struct {
	Payload mapoptions.Payload `json:"options"`
	config.Example
	Markers   bool `json:"markers"`
	Thumbnail bool `json:"thumbnail"`
}

type resource struct {
	data []byte
	etag string
}

func newResource(data []byte) *resource {
	if data == nil {
		return nil
	}

	return &resource{data: data, etag: fmt.Sprintf(`"%x-%x"`, len(data), crc32.ChecksumIEEE(data))}
}

type page struct {
	html      *resource
	markers   *resource
	thumbnail *resource
}

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config   *config.Config
	pages    map[string]*page
	index    *resource
	Favicon  []byte
	Examples []Example
}

// Options tunes how examples are prepared.
type Options struct {
	Client         *http.Client
	ThumbnailWidth int
}

// NewServerContext renders every example up front.
// Examples with invalid options are logged and left out.
func NewServerContext(cfg *config.Config, opts Options) (*ServerContext, error) {
	log.Info().Int("config_examples_count", len(cfg.Examples)).Msg("Initializing server context")

	renderer, err := gallery.NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &ServerContext{
		Config:   cfg,
		Favicon:  assets.Favicon,
		pages:    make(map[string]*page, len(cfg.Examples)),
		Examples: make([]Example, 0, len(cfg.Examples)),
	}
	entries := make([]gallery.IndexEntry, 0, len(cfg.Examples))

	for _, ex := range cfg.Examples {
		payload, err := ex.Payload(cfg.Style)
		if err != nil {
			log.Warn().Err(err).Str("example", ex.Name).Msg("Skipping example: invalid options")
			continue
		}

		p := &page{}
		var markersURL string
		if len(ex.Markers) > 0 {
			fc, err := ex.MarkerCollection()
			if err != nil {
				log.Warn().Err(err).Str("example", ex.Name).Msg("Skipping example: invalid markers")
				continue
			}
			data, err := json.Marshal(fc)
			if err != nil {
				return nil, err
			}
			p.markers = newResource(data)
			markersURL = gallery.MarkersFile
		}

		html, err := renderer.RenderPage(ex, payload, markersURL)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", ex.Name, err)
		}
		p.html = newResource(html)

		entry := gallery.IndexEntry{
			Title:       ex.Title,
			Description: ex.Description,
			Href:        "/examples/" + ex.Name + "/",
		}

		if ex.Screenshot != "" {
			thumb, err := gallery.Thumbnail(opts.Client, cfg.Resolve(ex.Screenshot), opts.ThumbnailWidth)
			if err != nil {
				log.Warn().
					Err(err).
					Str("example", ex.Name).
					Str("screenshot", ex.Screenshot).
					Msg("Thumbnail skipped")
			} else {
				p.thumbnail = newResource(thumb)
				entry.Thumbnail = entry.Href + gallery.ThumbnailFile
			}
		}

		log.Debug().
			Str("example", ex.Name).
			Bool("markers", p.markers != nil).
			Bool("thumbnail", p.thumbnail != nil).
			Msg("Example rendered and added to context")

		s.pages[ex.Name] = p
		s.Examples = append(s.Examples, Example{
			Example:   ex,
			Payload:   payload,
			Markers:   p.markers != nil,
			Thumbnail: p.thumbnail != nil,
		})
		entries = append(entries, entry)
	}

	index, err := renderer.RenderIndex(cfg, entries)
	if err != nil {
		return nil, err
	}
	s.index = newResource(index)

	log.Info().
		Int("valid_examples_count", len(s.Examples)).
		Msg("Server context initialized successfully")

	return s, nil
}
