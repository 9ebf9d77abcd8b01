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

package mapview

import (
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mindy15963/GwangjuARDonMap/dataset"
	"github.com/mindy15963/GwangjuARDonMap/keywords"
)

// DataProvider supplies the enriched records and keyword payload of
// the latest analysis run.
type DataProvider interface {
	Snapshot() ([]dataset.Record, keywords.Payload, bool)
}

// Actions contains the map related HTTP actions.
type Actions struct {
	conf *Conf
	data DataProvider
}

func NewActions(conf *Conf, data DataProvider) *Actions {
	return &Actions{conf: conf, data: data}
}

// MapPage serves the interactive map of the latest analysis.
func (a *Actions) MapPage(ctx *gin.Context) {
	records, payload, ok := a.data.Snapshot()
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("no analysis available yet"), http.StatusNotFound)
		return
	}
	ctx.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := Render(ctx.Writer, records, payload, a.conf); err != nil {
		log.Error().Err(err).Msg("failed to serve the map page")
	}
}
