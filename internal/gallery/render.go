// Package gallery renders example pages, marker layers and thumbnails.
package gallery

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"

	"github.com/woozymasta/maplibre/assets"
	"github.com/woozymasta/maplibre/internal/config"
	"github.com/woozymasta/maplibre/mapoptions"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

// File names written per example.
const (
	PageFile      = "index.html"
	MarkersFile   = "markers.geojson"
	ThumbnailFile = "thumbnail.webp"
)

type pageData struct {
	Title       string
	Description string
	Container   string
	Version     string
	MarkersURL  string
	MarkerSVG   string
	Payload     template.JS
	CSS         template.CSS
	JS          template.JS
}

type indexData struct {
	Title       string
	Attribution string
	CSS         template.CSS
	Examples    []IndexEntry
}

// IndexEntry is a single card on the gallery index page.
type IndexEntry struct {
	Title       string
	Description string
	Href        string
	Thumbnail   string
}

// Renderer turns examples into minified HTML pages.
type Renderer struct {
	m     *minify.M
	page  *template.Template
	index *template.Template
	css   string
	js    string
	svg   string
}

// NewRenderer parses the embedded templates and minifies the static assets once.
func NewRenderer() (*Renderer, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)

	cssMin, err := m.String("text/css", assets.Style)
	if err != nil {
		return nil, fmt.Errorf("minify css: %w", err)
	}
	jsMin, err := m.String("text/javascript", assets.Script)
	if err != nil {
		return nil, fmt.Errorf("minify js: %w", err)
	}
	svgMin, err := m.String("image/svg+xml", assets.Marker)
	if err != nil {
		return nil, fmt.Errorf("minify svg: %w", err)
	}

	page, err := template.New("page").Parse(assets.PageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	index, err := template.New("index").Parse(assets.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	return &Renderer{
		m:     m,
		page:  page,
		index: index,
		css:   cssMin,
		js:    jsMin,
		svg:   svgMin,
	}, nil
}

// RenderPage renders the map page of an example around a finalized payload.
// markersURL is left empty when the example has no markers.
func (r *Renderer) RenderPage(ex config.Example, payload mapoptions.Payload, markersURL string) ([]byte, error) {
	data, err := payload.JSON()
	if err != nil {
		return nil, err
	}

	return r.execute(r.page, pageData{
		Title:       ex.Title,
		Description: ex.Description,
		Container:   ex.Container,
		Version:     assets.MapLibreVersion,
		MarkersURL:  markersURL,
		MarkerSVG:   r.svg,
		Payload:     template.JS(data),
		CSS:         template.CSS(r.css),
		JS:          template.JS(r.js),
	})
}

// RenderIndex renders the gallery landing page.
func (r *Renderer) RenderIndex(cfg *config.Config, entries []IndexEntry) ([]byte, error) {
	return r.execute(r.index, indexData{
		Title:       cfg.Title,
		Attribution: cfg.Attribution,
		CSS:         template.CSS(r.css),
		Examples:    entries,
	})
}

func (r *Renderer) execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}

	out, err := r.m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify %s: %w", tmpl.Name(), err)
	}

	return out, nil
}
