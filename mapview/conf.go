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

// default view: Gwangju city center
const (
	dfltCenterLat = 35.1595
	dfltCenterLon = 126.8526
	dfltZoom      = 12
)

// districtColors assigns each district layer its marker color.
var districtColors = map[string]string{
	"동구":  "blue",
	"서구":  "red",
	"남구":  "green",
	"북구":  "purple",
	"광산구": "orange",
	"기타":  "gray",
}

// Conf configures the rendered map view.
type Conf struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	Zoom      int     `json:"zoom"`
}

func (conf *Conf) WithDefaults() Conf {
	ans := Conf{}
	if conf != nil {
		ans = *conf
	}
	if ans.CenterLat == 0 {
		ans.CenterLat = dfltCenterLat
	}
	if ans.CenterLon == 0 {
		ans.CenterLon = dfltCenterLon
	}
	if ans.Zoom == 0 {
		ans.Zoom = dfltZoom
	}
	return ans
}
