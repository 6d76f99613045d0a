package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/swellgrid/swellgrid/internal/buoy"
	"github.com/swellgrid/swellgrid/internal/config"
	"github.com/swellgrid/swellgrid/internal/forecast"
	"github.com/swellgrid/swellgrid/internal/observability"
	"github.com/swellgrid/swellgrid/internal/units"
)

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	var (
		inputPath  = flag.String("input", "", "WAVEWATCH III point spectra file")
		outputPath = flag.String("output", "-", "output path, - for stdout")
		angle      = flag.Float64("angle", cfg.BeachAngle, "shore normal compass angle in degrees")
		slope      = flag.Float64("slope", cfg.BeachSlope, "beach bottom slope")
		workers    = flag.Int("workers", cfg.Workers, "concurrent time steps")
		unitSystem = flag.String("units", "metric", "output unit system (metric or english)")
	)
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputPath).Msg("reading spectra file")
	}

	iterator, err := buoy.NewForecastSpectralIterator(string(data))
	if err != nil {
		log.Fatal().Err(err).Msg("parsing spectra header")
	}

	var records []*buoy.ForecastSpectralRecord
	for {
		record, err := iterator.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Msg("parsing spectral record")
		}
		records = append(records, record)
	}

	metadata := iterator.Metadata()
	log.Info().
		Int("steps", len(records)).
		Int("frequencies", len(metadata.Frequency)).
		Int("directions", len(metadata.Direction)).
		Msg("parsed spectra file")

	if len(records) > 0 {
		if _, count, err := records[0].Spectrum().Partition(cfg.PartitionSteps); err == nil {
			log.Debug().Int("partitions", count).Msg("first step partition count")
		}
	}

	conditions := forecast.BeachConditions{Angle: *angle, Slope: *slope}
	if len(records) > 0 && records[0].Depth.Value != nil {
		conditions.Depth = *records[0].Depth.Value
	}

	metrics := observability.NewMetrics()
	series := forecast.BuildSeries(context.Background(), records, conditions, *workers, metrics)

	if *unitSystem == string(units.English) {
		for _, record := range series {
			record.ToUnits(units.English)
		}
	}

	out := os.Stdout
	if *outputPath != "-" {
		out, err = os.Create(*outputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *outputPath).Msg("creating output file")
		}
		defer out.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(series); err != nil {
		log.Fatal().Err(err).Msg("encoding forecast series")
	}
}
