// Copyright 2025 The GwangjuARDonMap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// geomap is the batch variant of the pipeline: it loads the dataset,
// geocodes it (with cache), runs the keyword analysis and writes the
// map HTML plus the keyword payload JSON to local files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/mindy15963/GwangjuARDonMap/cnf"
	"github.com/mindy15963/GwangjuARDonMap/dataset"
	"github.com/mindy15963/GwangjuARDonMap/geocode"
	"github.com/mindy15963/GwangjuARDonMap/keywords"
	"github.com/mindy15963/GwangjuARDonMap/mapview"
	"github.com/mindy15963/GwangjuARDonMap/morph"
)

const keywordPreviewSize = 10

func printSummary(result *keywords.AnalysisResult) {
	fmt.Println("[구별 분석 결과]")
	for _, ds := range result.Summary.Districts {
		tokens := result.Payload.TopTokens(ds.District, keywordPreviewSize)
		preview := "(결과 없음)"
		if len(tokens) > 0 {
			preview = strings.Join(tokens, ", ")
		}
		fmt.Printf("- %s (%d건): %s\n", ds.District, ds.NumRecords, preview)
	}
}

func writeKeywordsJSON(path string, payload keywords.Payload) error {
	rawData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to write keywords file: %w", err)
	}
	if err := os.WriteFile(path, rawData, 0644); err != nil {
		return fmt.Errorf("failed to write keywords file: %w", err)
	}
	return nil
}

func writeMapHTML(
	path string,
	records []dataset.Record,
	payload keywords.Payload,
	conf *mapview.Conf,
) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	defer f.Close()
	if err := mapview.Render(f, records, payload, conf); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	return nil
}

func main() {
	outMap := flag.String("out-map", "./gwangju_architecture_map.html", "path of the generated map HTML")
	outKeywords := flag.String("out-keywords", "./district_keywords.json", "path of the generated keyword payload JSON")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "geomap - batch geocoding and district keyword analysis\n\nUsage:\n\t%s [options] [config.json]\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	conf := cnf.LoadConfig(flag.Arg(0))
	logging.SetupLogging(conf.Logging)
	cnf.ApplyDefaults(conf)
	if err := conf.Dataset.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	geoClient := geocode.NewClient(conf.Geocoding)
	records, _, err := geocode.EnrichRecords(ctx, conf.Dataset, geoClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare records")
	}

	tokenizer := morph.NewTokenizerFromConf(conf.Morphology)
	result, err := keywords.Analyze(records, tokenizer, *conf.Analysis)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
	printSummary(result)

	if err := writeKeywordsJSON(*outKeywords, result.Payload); err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Str("path", *outKeywords).Msg("keyword payload written")

	if err := writeMapHTML(*outMap, records, result.Payload, conf.MapView); err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Str("path", *outMap).Msg("map written")
}
