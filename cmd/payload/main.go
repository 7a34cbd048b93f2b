package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/woozymasta/maplibre/internal/logger"
	"github.com/woozymasta/maplibre/mapoptions"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input     string `short:"i" long:"in"        description:"Options file (YAML or JSON). Reads from stdin if empty"`
	Output    string `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	Container string `short:"c" long:"container" description:"Container element id, overrides the one in the input"`
	Format    string `short:"f" long:"format"    description:"Output format" choice:"json" choice:"yaml" default:"json"`
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

	// Read Input
	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
	} else {
		inputData, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal().Err(err).Str("in", opts.Input).Msg("Failed to read input")
	}

	raw, err := mapoptions.ParsePayload(inputData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse options")
	}
	if opts.Container != "" {
		raw[mapoptions.KeyContainer] = opts.Container
	}

	mapOpts, err := mapoptions.FromPayload(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}

	payload, err := mapOpts.Finalize()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to finalize options")
	}

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(map[string]any(payload))
	} else {
		outputData, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal payload")
	}

	if opts.Output == "" {
		_, _ = os.Stdout.Write(append(outputData, '\n'))
		return
	}

	if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
		log.Fatal().Err(err).Str("out", opts.Output).Msg("Failed to write output")
	}
	log.Info().
		Int("options", len(payload)-1).
		Str("out", opts.Output).
		Str("format", opts.Format).
		Msg("Payload written")
}
