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

package dataset

import (
	"strings"

	"github.com/mindy15963/GwangjuARDonMap/common"
)

// DistrictOther is a sentinel bucket for records whose address
// does not mention any of the five Gwangju districts.
const DistrictOther = "기타"

// Districts lists the administrative districts of Gwangju. The order
// is significant - ExtractDistrict returns the first name found in
// an address and reports/payloads keep this ordering.
var Districts = []string{"동구", "서구", "남구", "북구", "광산구"}

// DistrictsWithOther is Districts plus the sentinel bucket.
var DistrictsWithOther = []string{"동구", "서구", "남구", "북구", "광산구", DistrictOther}

// Record is a single facility/building entry of the tourism resources table.
type Record struct {
	PlaceName   string
	Address     string
	Description string
	Purpose     string
	Era         string
	District    string
	Lat         common.Maybe[float64]
	Lon         common.Maybe[float64]
}

func (r Record) HasCoordinates() bool {
	return !r.Lat.Empty() && !r.Lon.Empty()
}

// ExtractDistrict searches an address for one of the known district
// names. The first match wins. An address mentioning none of them
// (or an empty address) yields DistrictOther - the function never
// returns an empty district.
func ExtractDistrict(address string) string {
	for _, d := range Districts {
		if strings.Contains(address, d) {
			return d
		}
	}
	return DistrictOther
}

// IsKnownDistrict tests district name membership, the sentinel
// bucket included.
func IsKnownDistrict(name string) bool {
	for _, d := range DistrictsWithOther {
		if d == name {
			return true
		}
	}
	return false
}
