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
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testClientConf(apiURL string) *Conf {
	return &Conf{
		APIURL:      apiURL,
		UserAgent:   "test-agent",
		MinDelayMs:  1,
		MaxRetries:  2,
		TimeoutSecs: 5,
	}
}

func TestGeocodeSuccess(t *testing.T) {
	var seenUA string
	var seenQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seenUA = req.Header.Get("User-Agent")
		seenQuery = req.URL.Query().Get("q")
		fmt.Fprint(w, `[{"lat": "35.1466", "lon": "126.9190"}]`)
	}))
	defer srv.Close()

	client := NewClient(testClientConf(srv.URL))
	coords, found := client.Geocode(context.Background(), "광주광역시 동구 금남로 245")
	assert.True(t, found)
	assert.InDelta(t, 35.1466, coords.Lat, 1e-9)
	assert.InDelta(t, 126.9190, coords.Lon, 1e-9)
	assert.Equal(t, "test-agent", seenUA)
	assert.Equal(t, "광주광역시 동구 금남로 245", seenQuery)
}

func TestGeocodeNotFoundIsNotRetried(t *testing.T) {
	var numRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		numRequests++
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	client := NewClient(testClientConf(srv.URL))
	_, found := client.Geocode(context.Background(), "미지의 주소")
	assert.False(t, found)
	assert.Equal(t, 1, numRequests)
}

func TestGeocodeRetriesOnServerError(t *testing.T) {
	var numRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		numRequests++
		if numRequests == 1 {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `[{"lat": "35.15", "lon": "126.85"}]`)
	}))
	defer srv.Close()

	client := NewClient(testClientConf(srv.URL))
	coords, found := client.Geocode(context.Background(), "광주광역시 서구")
	assert.True(t, found)
	assert.InDelta(t, 35.15, coords.Lat, 1e-9)
	assert.Equal(t, 2, numRequests)
}

func TestGeocodeGivesUpAfterRetries(t *testing.T) {
	var numRequests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		numRequests++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(testClientConf(srv.URL))
	_, found := client.Geocode(context.Background(), "광주광역시 북구")
	assert.False(t, found)
	// initial attempt + MaxRetries
	assert.Equal(t, 3, numRequests)
}

func TestGeocodeMalformedCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `[{"lat": "not-a-number", "lon": "126.85"}]`)
	}))
	defer srv.Close()

	client := NewClient(testClientConf(srv.URL))
	_, found := client.Geocode(context.Background(), "광주광역시 남구")
	assert.False(t, found)
}

func TestGeocodeCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `[{"lat": "35.15", "lon": "126.85"}]`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewClient(testClientConf(srv.URL))
	_, found := client.Geocode(ctx, "광주광역시 동구")
	assert.False(t, found)
}

func TestConfWithDefaults(t *testing.T) {
	conf := (&Conf{}).WithDefaults()
	assert.Equal(t, dfltAPIURL, conf.APIURL)
	assert.Equal(t, dfltMinDelayMs, conf.MinDelayMs)
	var nilConf *Conf
	assert.Equal(t, dfltUserAgent, nilConf.WithDefaults().UserAgent)
}
