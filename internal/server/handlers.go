// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/woozymasta/maplibre/internal/gallery"
)

// Handler wires every route on a new mux wrapped with RequestLogger.
func (s *ServerContext) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/examples", s.HandleExamplesList)
	mux.HandleFunc("/favicon.ico", s.HandleFavicon)
	mux.HandleFunc("/examples/", s.HandleExample)
	mux.HandleFunc("/", s.HandleIndex)

	return RequestLogger(mux)
}

// HandleExamplesList serves the JSON description of available examples.
func (s *ServerContext) HandleExamplesList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Examples)
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/favicon.ico" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/x-icon")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleIndex serves the gallery landing page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	serve(w, r, s.index, "text/html; charset=utf-8")
}

// HandleExample serves the page, marker layer and thumbnail of one example.
func (s *ServerContext) HandleExample(w http.ResponseWriter, r *http.Request) {
	// Path: /examples/{name}/[file]
	rest := strings.TrimPrefix(r.URL.Path, "/examples/")
	name, file, hasSlash := strings.Cut(rest, "/")

	p, ok := s.pages[name]
	if !ok || strings.Contains(file, "/") {
		http.NotFound(w, r)
		return
	}

	// relative marker URLs need the trailing slash
	if !hasSlash {
		http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
		return
	}

	switch file {
	case "", gallery.PageFile:
		serve(w, r, p.html, "text/html; charset=utf-8")
	case gallery.MarkersFile:
		serve(w, r, p.markers, "application/geo+json")
	case gallery.ThumbnailFile:
		serve(w, r, p.thumbnail, "image/webp")
	default:
		http.NotFound(w, r)
	}
}

// serve writes an in-memory resource with ETag revalidation.
func serve(w http.ResponseWriter, r *http.Request, res *resource, contentType string) {
	if res == nil {
		http.NotFound(w, r)
		return
	}

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == res.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", res.etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(res.data)
}
