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

import "time"

const dfltAnalyzerTimeoutSecs = 10

// Conf configures morphological analysis. With an empty AnalyzerURL
// the built-in rule-based fallback is used.
type Conf struct {
	AnalyzerURL         string `json:"analyzerUrl"`
	AnalyzerTimeoutSecs int    `json:"analyzerTimeoutSecs"`

	// ExtraStopwords extends (never replaces) the default stopword set
	ExtraStopwords []string `json:"extraStopwords"`
}

func (conf *Conf) AnalyzerTimeout() time.Duration {
	secs := conf.AnalyzerTimeoutSecs
	if secs == 0 {
		secs = dfltAnalyzerTimeoutSecs
	}
	return time.Duration(secs) * time.Second
}

// NewTokenizerFromConf builds the process-wide noun tokenizer. The
// stopword set is assembled once here and stays read-only afterwards.
func NewTokenizerFromConf(conf *Conf) *NounTokenizer {
	var analyzer Analyzer
	if conf != nil && conf.AnalyzerURL != "" {
		analyzer = NewRemoteAnalyzer(conf.AnalyzerURL, conf.AnalyzerTimeout())

	} else {
		analyzer = NewRuleAnalyzer()
	}
	stopwords := make([]string, 0, len(DefaultStopwords)+8)
	stopwords = append(stopwords, DefaultStopwords...)
	if conf != nil {
		stopwords = append(stopwords, conf.ExtraStopwords...)
	}
	return NewNounTokenizer(analyzer, stopwords)
}
