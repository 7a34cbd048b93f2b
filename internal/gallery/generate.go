package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/woozymasta/maplibre/internal/config"

	"github.com/rs/zerolog/log"
)

// Options controls a gallery build.
type Options struct {
	// Client downloads remote screenshots, http.DefaultClient when nil.
	Client *http.Client

	// Limit restricts the build to the named examples.
	Limit []string

	Concurrency    int
	ThumbnailWidth int
	Force          bool
}

// Summary counts the outcome of a build.
type Summary struct {
	Written int
	Skipped int
	Failed  int
}

type result struct {
	err     error
	example config.Example
	entry   IndexEntry
	written int
	skipped int
}

// Generate writes a static gallery into outDir: one directory per example
// with its page, optional marker layer and thumbnail, plus the index page.
// Example failures are logged and reported together in the returned error.
func Generate(ctx context.Context, cfg *config.Config, outDir string, opts Options) (Summary, error) {
	var summary Summary

	renderer, err := NewRenderer()
	if err != nil {
		return summary, err
	}

	examples, missing := cfg.Select(opts.Limit)
	for _, name := range missing {
		log.Error().
			Str("name", name).
			Msg("Example specified in --limit not found in configuration")
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	log.Info().
		Int("examples_total", len(cfg.Examples)).
		Int("examples_queued", len(examples)).
		Int("concurrency", opts.Concurrency).
		Str("out", outDir).
		Msg("Starting gallery build")

	jobs := make(chan config.Example, len(examples))
	results := make(chan result, len(examples))

	go func() {
		defer close(jobs)
		for _, ex := range examples {
			select {
			case jobs <- ex:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ex := range jobs {
				if ctx.Err() != nil {
					results <- result{example: ex, err: ctx.Err()}
					continue
				}
				results <- buildExample(renderer, cfg, ex, outDir, opts)
			}
		}()
	}
	wg.Wait()
	close(results)

	byName := make(map[string]result, len(examples))
	for res := range results {
		byName[res.example.Name] = res
	}

	var errs []error
	entries := make([]IndexEntry, 0, len(examples))
	for _, ex := range examples {
		res, ok := byName[ex.Name]
		if !ok {
			res = result{example: ex, err: ctx.Err()}
		}

		summary.Written += res.written
		summary.Skipped += res.skipped

		if res.err != nil {
			summary.Failed++
			errs = append(errs, fmt.Errorf("example %s: %w", ex.Name, res.err))
			log.Error().Err(res.err).Str("example", ex.Name).Msg("Failed to build example")
			continue
		}
		entries = append(entries, res.entry)
	}

	index, err := renderer.RenderIndex(cfg, entries)
	if err != nil {
		return summary, err
	}
	// the index lists the current selection, so it is always rewritten
	if err := writeFile(filepath.Join(outDir, PageFile), index); err != nil {
		return summary, err
	}
	summary.Written++

	log.Info().
		Int("written", summary.Written).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Gallery build finished")

	if len(errs) > 0 {
		return summary, fmt.Errorf("%d of %d examples failed: %w", len(errs), len(examples), errors.Join(errs...))
	}

	return summary, nil
}

func buildExample(r *Renderer, cfg *config.Config, ex config.Example, outDir string, opts Options) result {
	res := result{
		example: ex,
		entry: IndexEntry{
			Title:       ex.Title,
			Description: ex.Description,
			Href:        ex.Name + "/",
		},
	}
	dir := filepath.Join(outDir, ex.Name)

	payload, err := ex.Payload(cfg.Style)
	if err != nil {
		res.err = err
		return res
	}

	var markersURL string
	if len(ex.Markers) > 0 {
		fc, err := ex.MarkerCollection()
		if err != nil {
			res.err = err
			return res
		}
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			res.err = err
			return res
		}
		if res.err = res.save(filepath.Join(dir, MarkersFile), data, opts.Force); res.err != nil {
			return res
		}
		markersURL = MarkersFile
	}

	page, err := r.RenderPage(ex, payload, markersURL)
	if err != nil {
		res.err = err
		return res
	}
	if res.err = res.save(filepath.Join(dir, PageFile), page, opts.Force); res.err != nil {
		return res
	}

	if ex.Screenshot != "" {
		res.entry.Thumbnail = ex.Name + "/" + ThumbnailFile
		path := filepath.Join(dir, ThumbnailFile)

		if !opts.Force && exists(path) {
			res.skipped++
		} else {
			data, err := Thumbnail(opts.Client, cfg.Resolve(ex.Screenshot), opts.ThumbnailWidth)
			if err != nil {
				res.err = fmt.Errorf("thumbnail: %w", err)
				return res
			}
			if res.err = writeFile(path, data); res.err != nil {
				return res
			}
			res.written++
		}
	}

	log.Debug().
		Str("example", ex.Name).
		Int("written", res.written).
		Int("skipped", res.skipped).
		Bool("markers", markersURL != "").
		Msg("Example built")

	return res
}

// save writes data unless the file exists and force is off.
func (res *result) save(path string, data []byte, force bool) error {
	if !force && exists(path) {
		res.skipped++
		return nil
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	res.written++

	return nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
