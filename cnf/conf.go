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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/mindy15963/GwangjuARDonMap/dataset"
	"github.com/mindy15963/GwangjuARDonMap/db/mysql"
	"github.com/mindy15963/GwangjuARDonMap/geocode"
	"github.com/mindy15963/GwangjuARDonMap/keywords"
	"github.com/mindy15963/GwangjuARDonMap/mapview"
	"github.com/mindy15963/GwangjuARDonMap/morph"
)

const (
	dfltServerWriteTimeoutSecs = 10
	dfltAnalysisAlpha          = 0.01
	dfltAnalysisTopN           = 30
	dfltAnalysisMinCount       = 2
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string                `json:"listenAddress"`
	ListenPort             int                   `json:"listenPort"`
	ServerReadTimeoutSecs  int                   `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                   `json:"serverWriteTimeoutSecs"`
	Logging                logging.LoggingConf   `json:"logging"`
	Dataset                *dataset.Conf         `json:"dataset"`
	Geocoding              *geocode.Conf         `json:"geocoding"`
	Morphology             *morph.Conf           `json:"morphology"`
	Analysis               *keywords.RankingOpts `json:"analysis"`
	MapView                *mapview.Conf         `json:"mapView"`

	// KeywordDB is optional; when left out, analysis results are
	// kept in memory only
	KeywordDB *mysql.Conf `json:"keywordDb"`

	srcPath string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ApplyDefaults(conf *Conf) {
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.Analysis == nil {
		conf.Analysis = &keywords.RankingOpts{}
	}
	if conf.Analysis.Alpha == 0 {
		conf.Analysis.Alpha = dfltAnalysisAlpha
		log.Warn().Msgf(
			"analysis.alpha not specified, using default: %f", dfltAnalysisAlpha)
	}
	if conf.Analysis.TopN == 0 {
		conf.Analysis.TopN = dfltAnalysisTopN
		log.Warn().Msgf(
			"analysis.topN not specified, using default: %d", dfltAnalysisTopN)
	}
	if conf.Analysis.MinCount == 0 {
		conf.Analysis.MinCount = dfltAnalysisMinCount
		log.Warn().Msgf(
			"analysis.minCount not specified, using default: %d", dfltAnalysisMinCount)
	}
}
