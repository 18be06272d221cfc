package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/benmeehan/proxity/internal/services"
	"github.com/benmeehan/proxity/internal/utils"
	"github.com/benmeehan/proxity/pkg/file"
	"github.com/rs/zerolog"
)

type cli struct {
	Config   string `short:"c" default:"configs/config.yaml" type:"path" help:"Path to the configuration file."`
	LogLevel string `name:"log-level" help:"Override the log level of the configuration file."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("spxdistance"),
		kong.Description("Measures great-circle distances from an origin location."),
		kong.HelpOptions{Compact: true},
		kong.UsageOnError(),
	)

	// Set up structured logging with JSON output
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(args, file.NewFileService(), os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("Failed to measure distances")
	}
}

func run(args cli, fileClient file.FileOperations, stdout io.Writer, logger zerolog.Logger) error {
	exists, err := fileClient.IsFileExists(args.Config)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("configuration file %s does not exist", args.Config)
	}

	// Load configuration from file
	config, err := utils.LoadConfig(args.Config, fileClient)
	if err != nil {
		return err
	}

	levelName := config.LogLevel
	if args.LogLevel != "" {
		levelName = args.LogLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logger = logger.Level(level)

	origin := config.Origin.Location()
	distanceService := services.NewDistanceService(origin, logger)

	fixes, err := distanceService.ParseFixes(config.Fixes)
	if err != nil {
		return err
	}

	targets := make([]services.Target, 0, len(config.Targets))
	for _, p := range config.Targets {
		targets = append(targets, services.Target{Name: p.Name, Location: p.Location()})
	}

	logger.Info().
		Str("origin", config.Origin.Name).
		Str("format", config.Output.Format).
		Str("report_id", distanceService.ReportID()).
		Msg("Measuring distances")

	switch config.Output.Format {
	case utils.FormatGeoJSON:
		data, err := distanceService.Collection(targets, fixes).MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to encode feature collection: %w", err)
		}
		if config.Output.Path == "" {
			_, err = stdout.Write(append(data, '\n'))
			return err
		}
		err = fileClient.WriteFileRaw(config.Output.Path, data)
		if err != nil {
			return err
		}
	default:
		reports := distanceService.Measure(targets, fixes)
		if config.Output.Path == "" {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(reports)
		}
		err = fileClient.WriteJsonFile(config.Output.Path, reports)
		if err != nil {
			return err
		}
	}

	logger.Info().Str("path", config.Output.Path).Msg("Distance report written")
	return nil
}
