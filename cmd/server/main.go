package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/maplibre/internal/config"
	"github.com/woozymasta/maplibre/internal/gallery"
	"github.com/woozymasta/maplibre/internal/logger"
	"github.com/woozymasta/maplibre/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile     string `short:"c" long:"config"          env:"CONFIG_FILE"     description:"Path to gallery configuration file" default:"gallery.yaml"`
	Addr           string `short:"a" long:"addr"            env:"LISTEN_ADDRESS"  description:"Address to listen on"               default:"0.0.0.0"`
	Port           int    `short:"p" long:"port"            env:"LISTEN_PORT"     description:"Port to listen on"                  default:"8080"`
	ThumbnailWidth int    `short:"w" long:"thumbnail-width" env:"THUMBNAIL_WIDTH" description:"Thumbnail width in pixels"          default:"480"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.ThumbnailWidth <= 0 {
		opts.ThumbnailWidth = gallery.DefaultThumbnailWidth
	}

	srvCtx, err := server.NewServerContext(cfg, server.Options{
		Client:         &http.Client{Timeout: 15 * time.Second},
		ThumbnailWidth: opts.ThumbnailWidth,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare examples")
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("examples_loaded", len(srvCtx.Examples)).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, srvCtx.Handler()); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
