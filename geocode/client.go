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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

type nominatimItem struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Client resolves address strings against a Nominatim-compatible
// geocoding API. Requests are serialized with a minimum delay between
// them and retried a bounded number of times. Any failure is
// swallowed and reported as absence - the caller never sees a
// geocoding error for a single address.
type Client struct {
	conf        Conf
	httpClient  *http.Client
	lastRequest time.Time
}

func NewClient(conf *Conf) *Client {
	c := conf.WithDefaults()
	return &Client{
		conf:       c,
		httpClient: &http.Client{Timeout: c.Timeout()},
	}
}

func (c *Client) waitForSlot(ctx context.Context) error {
	wait := c.conf.MinDelay() - time.Since(c.lastRequest)
	if wait <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) fetch(ctx context.Context, address string) (Coordinates, bool, error) {
	reqURL := fmt.Sprintf(
		"%s?format=json&limit=1&q=%s", c.conf.APIURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, false, err
	}
	req.Header.Set("User-Agent", c.conf.UserAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return Coordinates{}, false, fmt.Errorf(
			"geocoding API returned unexpected status code %d", resp.StatusCode)
	}
	var items []nominatimItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return Coordinates{}, false, err
	}
	if len(items) == 0 {
		// a valid "not found" answer - no point in retrying
		return Coordinates{}, false, nil
	}
	lat, err1 := strconv.ParseFloat(items[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(items[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return Coordinates{}, false, fmt.Errorf("geocoding API returned malformed coordinates")
	}
	return Coordinates{Lat: lat, Lon: lon}, true, nil
}

// Geocode resolves a single address. The returned bool tells whether
// coordinates were obtained; false covers both "address unknown" and
// any transport/API failure after the configured retries.
func (c *Client) Geocode(ctx context.Context, address string) (Coordinates, bool) {
	for attempt := 0; attempt <= c.conf.MaxRetries; attempt++ {
		if err := c.waitForSlot(ctx); err != nil {
			return Coordinates{}, false
		}
		c.lastRequest = time.Now()
		coords, found, err := c.fetch(ctx, address)
		if err == nil {
			return coords, found
		}
		log.Warn().
			Err(err).
			Str("address", address).
			Int("attempt", attempt+1).
			Msg("geocoding attempt failed")
	}
	return Coordinates{}, false
}
