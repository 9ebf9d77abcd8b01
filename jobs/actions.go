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

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrorJobNotFound = errors.New("job not found")
)

// JobFn is an enqueued function. It is expected to write job status
// updates to the provided channel and close it once finished.
type JobFn = func(updates chan<- GeneralJobInfo)

// Actions is a synchronized in-memory registry of batch jobs. The
// keyword analysis is a single batch pipeline so there is no need for
// frontier scheduling - each enqueued job runs in its own goroutine
// immediately and the registry just tracks the latest reported state.
type Actions struct {
	jobList map[string]GeneralJobInfo
	lock    sync.Mutex
}

func NewActions() *Actions {
	return &Actions{
		jobList: make(map[string]GeneralJobInfo),
	}
}

func (a *Actions) updateJob(info GeneralJobInfo) {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.jobList[info.GetID()] = info
}

// EnqueueJob registers the initial job state and starts the job
// function in the background. Updates sent by the function replace
// the stored state; once the updates channel is closed, the last
// state is marked as finished.
func (a *Actions) EnqueueJob(fn JobFn, initialState GeneralJobInfo) {
	a.updateJob(initialState)
	updates := make(chan GeneralJobInfo)
	go fn(updates)
	go func() {
		last := initialState
		for info := range updates {
			last = info
			a.updateJob(info)
		}
		if !last.IsFinished() {
			last = last.AsFinished()
		}
		a.updateJob(last)
		if last.GetError() != nil {
			log.Error().
				Err(last.GetError()).
				Str("jobId", last.GetID()).
				Str("type", last.GetType()).
				Msg("job finished with error")

		} else {
			log.Info().
				Str("jobId", last.GetID()).
				Str("type", last.GetType()).
				Msg("job finished")
		}
	}()
}

func (a *Actions) GetJob(jobID string) (GeneralJobInfo, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	info, ok := a.jobList[jobID]
	if !ok {
		return nil, ErrorJobNotFound
	}
	return info, nil
}

// AnyRunningOfType tests whether a job of the provided type is still
// running. It backs the single-flight policy of the analysis action.
func (a *Actions) AnyRunningOfType(jobType string) bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	for _, info := range a.jobList {
		if info.GetType() == jobType && !info.IsFinished() {
			return true
		}
	}
	return false
}

// AllJobs returns registered jobs ordered by their start time
// (newest first is left to the caller).
func (a *Actions) AllJobs() []GeneralJobInfo {
	a.lock.Lock()
	defer a.lock.Unlock()
	ans := make([]GeneralJobInfo, 0, len(a.jobList))
	for _, info := range a.jobList {
		ans = append(ans, info)
	}
	return ans
}
