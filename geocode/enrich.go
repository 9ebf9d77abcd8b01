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

package geocode

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mindy15963/GwangjuARDonMap/common"
	"github.com/mindy15963/GwangjuARDonMap/dataset"
)

// EnrichRecords provides the dataset with coordinates attached. When
// a usable geo-cache file exists it is taken as-is (the geocoding
// service is never touched), otherwise the source CSV is loaded,
// every address is geocoded and the result is written back as the new
// cache. Records the geocoder cannot resolve keep absent coordinates;
// they still take part in the keyword analysis, just not on the map.
func EnrichRecords(
	ctx context.Context,
	dsConf *dataset.Conf,
	client *Client,
) ([]dataset.Record, dataset.LoadStats, error) {
	if dsConf.GeoCachePath != "" {
		records, stats, err := dataset.LoadGeoCache(dsConf.GeoCachePath)
		if err == nil {
			return records, stats, nil
		}
		if !errors.Is(err, dataset.ErrUnusableGeoCache) {
			log.Warn().
				Err(err).
				Str("path", dsConf.GeoCachePath).
				Msg("failed to read geo cache, geocoding from scratch")
		}
	}
	records, stats, err := dataset.LoadRecords(dsConf.Path)
	if err != nil {
		return nil, stats, err
	}
	var numResolved int
	for i := range records {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		coords, ok := client.Geocode(ctx, records[i].Address)
		if !ok {
			continue
		}
		records[i].Lat = common.NewMaybe(coords.Lat)
		records[i].Lon = common.NewMaybe(coords.Lon)
		numResolved++
	}
	log.Info().
		Int("total", len(records)).
		Int("resolved", numResolved).
		Msg("geocoding finished")
	if dsConf.GeoCachePath != "" {
		if err := dataset.SaveGeoCache(dsConf.GeoCachePath, records); err != nil {
			log.Error().Err(err).Msg("failed to write geo cache")
		}
	}
	return records, stats, nil
}
