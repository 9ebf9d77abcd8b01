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

package morph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Analyses [][]Morpheme `json:"analyses"`
}

// RemoteAnalyzer calls a morphological analyzer running as a separate
// service (typically a Kiwi HTTP wrapper). The service may return
// multiple analysis candidates ordered by likelihood; only the first
// one is used.
type RemoteAnalyzer struct {
	serviceURL string
	client     *http.Client
}

func NewRemoteAnalyzer(serviceURL string, timeout time.Duration) *RemoteAnalyzer {
	return &RemoteAnalyzer{
		serviceURL: serviceURL,
		client:     &http.Client{Timeout: timeout},
	}
}

func (ra *RemoteAnalyzer) Analyze(text string) ([]Morpheme, error) {
	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}
	resp, err := ra.client.Post(ra.serviceURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to analyze text - unexpected status code %d", resp.StatusCode)
	}
	var data analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}
	if len(data.Analyses) == 0 {
		return []Morpheme{}, nil
	}
	return data.Analyses[0], nil
}
