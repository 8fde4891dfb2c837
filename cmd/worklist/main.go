package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"geodir-transform/internal/export"
	"geodir-transform/internal/extract"
)

func main() {
	input := flag.String("input", "", "Path to the directory export file (.csv or .xlsx)")
	output := flag.String("output", "address_lookup_needed.txt", "Output path for the worklist")
	sample := flag.Bool("sample", false, "Write a sample address cache template and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *sample {
		if err := writeSampleCache("address_cache_sample.json"); err != nil {
			log.Fatal().Err(err).Msg("cannot write sample cache")
		}
		log.Info().Str("path", "address_cache_sample.json").Msg("wrote sample address cache template")
		return
	}

	if *input == "" {
		flag.Usage()
		log.Fatal().Msg("missing required -input flag")
	}

	table, err := export.ReadTable(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("cannot read export")
	}

	listings := extract.Businesses(table.Records())

	file, err := os.Create(*output)
	if err != nil {
		log.Fatal().Err(err).Str("output", *output).Msg("cannot create worklist file")
	}
	defer file.Close()

	if err := extract.WriteWorklist(file, listings); err != nil {
		log.Fatal().Err(err).Msg("cannot write worklist")
	}

	log.Info().
		Int("businesses", len(listings)).
		Str("output", *output).
		Msg("extracted businesses for address lookup")
}

// writeSampleCache emits a template showing the expected cache shape: exact
// business names from the worklist's first column mapped to street addresses.
func writeSampleCache(path string) error {
	sample := map[string]string{
		"Cane Bay Dive Shop": "10 Cane Bay",
		"Example Business":   "123 Main Street",
	}
	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
