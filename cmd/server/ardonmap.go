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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mindy15963/GwangjuARDonMap/cnf"
	"github.com/mindy15963/GwangjuARDonMap/db/mysql"
	"github.com/mindy15963/GwangjuARDonMap/general"
	"github.com/mindy15963/GwangjuARDonMap/geocode"
	"github.com/mindy15963/GwangjuARDonMap/jobs"
	"github.com/mindy15963/GwangjuARDonMap/keywords"
	"github.com/mindy15963/GwangjuARDonMap/mapview"
	"github.com/mindy15963/GwangjuARDonMap/morph"
	"github.com/mindy15963/GwangjuARDonMap/root"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func main() {
	version := general.VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "GwangjuARDonMap - Gwangju architecture resources district map\n\nUsage:\n\t%s [options] start [config.json]\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("ardonmap %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return

	} else if action != "start" {
		log.Fatal().Msgf("Unknown action %s", action)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.Logging)
	log.Info().Msg("Starting GwangjuARDonMap")
	cnf.ApplyDefaults(conf)
	if err := conf.Dataset.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var kwDB *mysql.Adapter
	if conf.KeywordDB != nil {
		var err error
		kwDB, err = mysql.OpenDB(*conf.KeywordDB)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		log.Info().Msgf("keyword archive SQL database: %s@%s", conf.KeywordDB.Name, conf.KeywordDB.Host)

	} else {
		log.Info().Msg("no keyword archive database configured, keeping results in memory only")
	}

	if !conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	rootActions := root.Actions{Version: version, Conf: conf}

	jobActions := jobs.NewActions()
	tokenizer := morph.NewTokenizerFromConf(conf.Morphology)
	geoClient := geocode.NewClient(conf.Geocoding)

	kwActions := keywords.NewActionHandler(
		conf.Dataset,
		geoClient,
		tokenizer,
		*conf.Analysis,
		jobActions,
		kwDB,
	)
	mapActions := mapview.NewActions(conf.MapView, kwActions)

	engine.GET(
		"/", rootActions.RootAction)
	engine.POST(
		"/analysis", kwActions.StartAnalysis)
	engine.GET(
		"/jobs/:jobId", kwActions.JobInfo)
	engine.GET(
		"/districts", kwActions.Districts)
	engine.GET(
		"/districts/keywords", kwActions.DistrictKeywords)
	engine.GET(
		"/map", mapActions.MapPage)

	log.Info().Msgf("starting to listen at %s:%d", conf.ListenAddress, conf.ListenPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Error().Err(err).Send()
		}
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
}
