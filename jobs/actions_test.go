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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJobInfo struct {
	ID       string
	Type     string
	StartDT  JSONTime
	Finished bool
	Err      error
}

func (info testJobInfo) GetID() string        { return info.ID }
func (info testJobInfo) GetType() string      { return info.Type }
func (info testJobInfo) GetStartDT() JSONTime { return info.StartDT }
func (info testJobInfo) IsFinished() bool     { return info.Finished }

func (info testJobInfo) AsFinished() GeneralJobInfo {
	info.Finished = true
	return info
}

func (info testJobInfo) GetError() error { return info.Err }

func (info testJobInfo) WithError(err error) GeneralJobInfo {
	info.Err = err
	info.Finished = true
	return info
}

func (info testJobInfo) FullInfo() any {
	return struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Finished bool   `json:"finished"`
		Error    string `json:"error,omitempty"`
	}{
		ID:       info.ID,
		Type:     info.Type,
		Finished: info.Finished,
		Error:    ErrorToString(info.Err),
	}
}

func TestEnqueueJobRunsAndFinishes(t *testing.T) {
	actions := NewActions()
	initial := testJobInfo{ID: "job1", Type: "testing", StartDT: CurrentDatetime()}
	actions.EnqueueJob(func(updates chan<- GeneralJobInfo) {
		updates <- initial
		close(updates)
	}, initial)

	assert.Eventually(t, func() bool {
		info, err := actions.GetJob("job1")
		return err == nil && info.IsFinished()
	}, time.Second, 10*time.Millisecond)
	info, err := actions.GetJob("job1")
	assert.NoError(t, err)
	assert.Nil(t, info.GetError())
}

func TestEnqueueJobKeepsReportedError(t *testing.T) {
	actions := NewActions()
	initial := testJobInfo{ID: "job2", Type: "testing", StartDT: CurrentDatetime()}
	jobErr := errors.New("dataset gone")
	actions.EnqueueJob(func(updates chan<- GeneralJobInfo) {
		updates <- initial.WithError(jobErr)
		close(updates)
	}, initial)

	assert.Eventually(t, func() bool {
		info, err := actions.GetJob("job2")
		return err == nil && info.IsFinished()
	}, time.Second, 10*time.Millisecond)
	info, _ := actions.GetJob("job2")
	assert.Equal(t, jobErr, info.GetError())
}

func TestGetJobUnknownID(t *testing.T) {
	actions := NewActions()
	_, err := actions.GetJob("no-such-job")
	assert.ErrorIs(t, err, ErrorJobNotFound)
}

func TestAnyRunningOfType(t *testing.T) {
	actions := NewActions()
	release := make(chan struct{})
	initial := testJobInfo{ID: "job3", Type: "blocking", StartDT: CurrentDatetime()}
	actions.EnqueueJob(func(updates chan<- GeneralJobInfo) {
		<-release
		close(updates)
	}, initial)

	assert.True(t, actions.AnyRunningOfType("blocking"))
	assert.False(t, actions.AnyRunningOfType("other-type"))

	close(release)
	assert.Eventually(t, func() bool {
		return !actions.AnyRunningOfType("blocking")
	}, time.Second, 10*time.Millisecond)
}

func TestAllJobs(t *testing.T) {
	actions := NewActions()
	for _, id := range []string{"a", "b"} {
		initial := testJobInfo{ID: id, Type: "testing", StartDT: CurrentDatetime()}
		actions.EnqueueJob(func(updates chan<- GeneralJobInfo) {
			close(updates)
		}, initial)
	}
	assert.Eventually(t, func() bool {
		return len(actions.AllJobs()) == 2
	}, time.Second, 10*time.Millisecond)
}
