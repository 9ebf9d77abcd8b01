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

import "time"

const (
	dfltAPIURL      = "https://nominatim.openstreetmap.org/search"
	dfltUserAgent   = "gwangju_architecture_gis"
	dfltMinDelayMs  = 1000
	dfltMaxRetries  = 3
	dfltTimeoutSecs = 10
)

// Conf configures the geocoding collaborator. The defaults follow the
// Nominatim usage policy (single serialized request per second).
type Conf struct {
	APIURL      string `json:"apiUrl"`
	UserAgent   string `json:"userAgent"`
	MinDelayMs  int    `json:"minDelayMs"`
	MaxRetries  int    `json:"maxRetries"`
	TimeoutSecs int    `json:"timeoutSecs"`
}

func (conf *Conf) WithDefaults() Conf {
	ans := Conf{}
	if conf != nil {
		ans = *conf
	}
	if ans.APIURL == "" {
		ans.APIURL = dfltAPIURL
	}
	if ans.UserAgent == "" {
		ans.UserAgent = dfltUserAgent
	}
	if ans.MinDelayMs == 0 {
		ans.MinDelayMs = dfltMinDelayMs
	}
	if ans.MaxRetries == 0 {
		ans.MaxRetries = dfltMaxRetries
	}
	if ans.TimeoutSecs == 0 {
		ans.TimeoutSecs = dfltTimeoutSecs
	}
	return ans
}

func (conf Conf) MinDelay() time.Duration {
	return time.Duration(conf.MinDelayMs) * time.Millisecond
}

func (conf Conf) Timeout() time.Duration {
	return time.Duration(conf.TimeoutSecs) * time.Second
}
