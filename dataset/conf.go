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

import "fmt"

// Conf configures source data location of the service.
type Conf struct {
	// Path is the source CSV with the tourism resources table
	Path string `json:"path"`

	// GeoCachePath is a CSV with the source columns plus
	// latitude/longitude as resolved by previous geocoding runs.
	// When present and usable, it replaces fresh geocoding.
	GeoCachePath string `json:"geoCachePath"`
}

func (conf *Conf) Validate() error {
	if conf == nil {
		return fmt.Errorf("missing `dataset` configuration section")
	}
	if conf.Path == "" {
		return fmt.Errorf("dataset.path not specified")
	}
	return nil
}
