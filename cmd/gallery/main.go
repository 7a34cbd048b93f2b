package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/woozymasta/maplibre/internal/config"
	"github.com/woozymasta/maplibre/internal/gallery"
	"github.com/woozymasta/maplibre/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile     string   `short:"c" long:"config"          env:"CONFIG_FILE"     description:"Path to gallery configuration file" default:"gallery.yaml"`
	OutDir         string   `short:"o" long:"out"             env:"OUT_DIR"         description:"Output directory"                  default:"public"`
	Limit          []string `short:"l" long:"limit"           env:"LIMIT_NAMES"     description:"Limit processing to specific example names"`
	Concurrency    int      `short:"p" long:"concurrency"     env:"CONCURRENCY"     description:"Concurrency"                       default:"4"`
	ThumbnailWidth int      `short:"w" long:"thumbnail-width" env:"THUMBNAIL_WIDTH" description:"Thumbnail width in pixels"         default:"480"`
	Force          bool     `short:"f" long:"force"           description:"Force overwrite of existing files"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        opts.Concurrency,
			MaxIdleConnsPerHost: opts.Concurrency,
		},
		Timeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := gallery.Generate(ctx, cfg, opts.OutDir, gallery.Options{
		Client:         client,
		Limit:          opts.Limit,
		Concurrency:    opts.Concurrency,
		ThumbnailWidth: opts.ThumbnailWidth,
		Force:          opts.Force,
	})
	if err != nil {
		log.Fatal().
			Err(err).
			Int("failed", summary.Failed).
			Msg("Gallery build failed")
	}

	log.Info().Str("out", opts.OutDir).Msg("Gallery finished successfully")
}
