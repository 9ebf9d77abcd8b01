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
	"github.com/rs/zerolog/log"
)

const dfltMinTokenRunes = 2

// NounTokenizer turns a normalized text into noun tokens. It owns the
// filtering policy (noun POS only, minimum token length, stopwords)
// while the segmentation itself is delegated to an Analyzer. The
// stopword set is fixed at construction time and never mutated, so a
// single instance can be shared freely.
type NounTokenizer struct {
	analyzer  Analyzer
	stopwords map[string]bool
	minRunes  int
}

func NewNounTokenizer(analyzer Analyzer, stopwords []string) *NounTokenizer {
	sw := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		sw[w] = true
	}
	return &NounTokenizer{
		analyzer:  analyzer,
		stopwords: sw,
		minRunes:  dfltMinTokenRunes,
	}
}

// Tokenize extracts noun tokens from a text, preserving their order
// and duplicates (downstream counting needs the frequencies). A
// failing or empty analysis contributes zero tokens - per-record
// analyzer problems must never abort a whole batch.
func (nt *NounTokenizer) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	morphemes, err := nt.analyzer.Analyze(text)
	if err != nil {
		log.Warn().Err(err).Msg("analyzer failed on a record, contributing no tokens")
		return []string{}
	}
	ans := make([]string, 0, len(morphemes))
	for _, m := range morphemes {
		if !m.IsNoun() {
			continue
		}
		if len([]rune(m.Form)) < nt.minRunes {
			continue
		}
		if nt.stopwords[m.Form] {
			continue
		}
		ans = append(ans, m.Form)
	}
	return ans
}
