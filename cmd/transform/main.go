package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"geodir-transform/internal/addrcache"
	"geodir-transform/internal/category"
	"geodir-transform/internal/config"
	"geodir-transform/internal/export"
	"geodir-transform/internal/geo"
	"geodir-transform/internal/transform"
)

func main() {
	input := flag.String("input", "", "Path to the directory export file (.csv or .xlsx)")
	output := flag.String("output", "-", "Path for the import CSV, or - for stdout")
	categories := flag.String("categories", "", "Comma-separated category names to filter by")
	tags := flag.String("tags", "", "Comma-separated tag names to filter by")
	layouts := flag.String("layouts", "", "Comma-separated layout names to filter by")
	match := flag.String("match", "", "Filter match mode: contains or exact (default from config)")
	useCache := flag.Bool("use-address-cache", false, "Merge street addresses from the address cache")
	cachePath := flag.String("cache", "", "Address cache path (default from config)")
	mappingPath := flag.String("mapping", "", "Term mapping path (default from config)")
	lat := flag.String("lat", "", "Fixed latitude for all records")
	lng := flag.String("lng", "", "Fixed longitude for all records")
	skipGeocoding := flag.Bool("skip-geocoding", false, "Stamp the island center on all records")
	stripBuilder := flag.Bool("filter-builder-tags", false, "Strip page-builder tags from content")
	defaultAddress := flag.Bool("enable-default-address", false, "Use the default street when no address is cached")
	testMode := flag.Bool("test", false, "Process only the first few matched rows")
	listField := flag.String("list-field", "", "List unique values of one export column and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *input == "" {
		flag.Usage()
		log.Fatal().Msg("missing required -input flag")
	}

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	table, err := export.ReadTable(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("cannot read export")
	}

	if *listField != "" {
		values, err := table.UniqueValues(*listField)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot list field values")
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return
	}

	if *mappingPath == "" {
		*mappingPath = cfg.MappingFile
	}
	mapping, err := category.LoadMapping(*mappingPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load term mapping")
	}

	cache := addrcache.Empty()
	if *useCache {
		if *cachePath == "" {
			*cachePath = cfg.CacheFile
		}
		cache, err = addrcache.Load(*cachePath)
		if err != nil {
			log.Fatal().Err(err).Str("cache", *cachePath).Msg("cannot load address cache")
		}
		if cache.Warning {
			log.Warn().Str("cache", *cachePath).Msg("address cache not found or empty")
		} else {
			log.Info().Int("addresses", cache.Len()).Msg("loaded address cache")
		}
	}

	matchMode := category.ParseMatchMode(cfg.CategoryMatch)
	if *match != "" {
		matchMode = category.ParseMatchMode(*match)
	}

	opts := transform.Options{
		Categories:       splitNames(*categories),
		Tags:             splitNames(*tags),
		Layouts:          splitNames(*layouts),
		MatchMode:        matchMode,
		StripBuilderTags: *stripBuilder,
		TestMode:         *testMode,
	}
	if *defaultAddress {
		opts.DefaultStreet = cfg.DefaultStreet
	}
	switch {
	case *lat != "" || *lng != "":
		opts.FixedCoords = &geo.Coordinates{Lat: *lat, Lng: *lng}
	case *skipGeocoding:
		center := geo.IslandCenter
		opts.FixedCoords = &center
	}

	pipeline := transform.New(cfg, mapping, cache, opts)
	rows, summary := pipeline.Run(table.Records())

	var out io.Writer = os.Stdout
	if *output != "" && *output != "-" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("output", *output).Msg("cannot create output file")
		}
		defer file.Close()
		out = file
	}

	if err := export.WriteImportCSV(out, rows); err != nil {
		log.Fatal().Err(err).Msg("cannot write import CSV")
	}

	log.Info().
		Int("rows_read", summary.RowsRead).
		Int("rows_emitted", summary.RowsEmitted).
		Msg("transformation complete")
	if len(summary.Unmapped) > 0 {
		log.Warn().Strs("names", summary.Unmapped).Msg("unmapped taxonomy names fell back to Uncategorized")
	}
	if *testMode {
		log.Warn().Msg("test mode: only the first matched rows were processed")
	}
}

func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
