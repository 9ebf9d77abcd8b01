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

package jobs

// GeneralJobInfo defines a domain-independent job information
// as viewed by the job registry.
type GeneralJobInfo interface {

	// GetID provides an unique identifier of the job
	GetID() string

	// GetType provides a speaking identifier of the job type
	// (e.g. "keyword-analysis")
	GetType() string

	// GetStartDT provides a date and time when the job started
	GetStartDT() JSONTime

	// IsFinished returns true if the job has finished,
	// no matter what the result was
	IsFinished() bool

	// AsFinished returns a copy of the job info in the finished state
	AsFinished() GeneralJobInfo

	// GetError returns job's error in case it failed (nil otherwise)
	GetError() error

	// WithError returns a copy of the job info in a finished
	// state with the provided error attached
	WithError(err error) GeneralJobInfo

	// FullInfo returns a JSON-serializable variant of the info
	// (Go errors do not serialize to JSON out of the box)
	FullInfo() any
}

func ErrorToString(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
