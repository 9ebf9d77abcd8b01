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
	"strings"
	"unicode"
)

// frequent case/topic particles, longest first so e.g. 에서 wins over 에
var particleSuffixes = []string{
	"에서는", "으로는", "이라는", "에서", "으로", "에는", "에게", "까지",
	"부터", "처럼", "마다", "보다", "라는", "은", "는", "이", "가",
	"을", "를", "의", "에", "로", "와", "과", "도", "만",
}

// word-final sequences marking predicates (verbs/adjectives/copula)
var predicateEndings = []string{
	"하다", "되다", "있다", "없다", "이다", "한다", "된다", "하여",
	"되어", "했다", "됐다", "였다", "이며", "하며", "되며", "하고",
	"되고", "아서", "어서", "지만",
}

// RuleAnalyzer is a dictionary-less fallback used when no external
// analyzer service is configured. It treats each whitespace-separated
// eojeol as one unit: a trailing particle is stripped, predicate-like
// words are tagged as verbs (and thus dropped by the noun filter) and
// the remaining Hangul stems are tagged as common nouns. This is much
// cruder than a real morphological analysis but good enough to keep
// the batch pipeline self-contained.
type RuleAnalyzer struct{}

func NewRuleAnalyzer() *RuleAnalyzer {
	return &RuleAnalyzer{}
}

func isHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}

func allHangul(s string) bool {
	for _, r := range s {
		if !isHangul(r) && r != '·' {
			return false
		}
	}
	return s != ""
}

func stripParticle(word string) string {
	for _, suffix := range particleSuffixes {
		if strings.HasSuffix(word, suffix) {
			stem := strings.TrimSuffix(word, suffix)
			// never strip a word down below two runes; a single
			// leftover syllable is more likely a mis-split than a stem
			if len([]rune(stem)) >= 2 {
				return stem
			}
		}
	}
	return word
}

func isPredicate(word string) bool {
	for _, suffix := range predicateEndings {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

func (ra *RuleAnalyzer) Analyze(text string) ([]Morpheme, error) {
	if text == "" {
		return []Morpheme{}, nil
	}
	ans := make([]Morpheme, 0, 20)
	for _, word := range strings.Fields(text) {
		if !allHangul(word) {
			continue
		}
		if isPredicate(word) {
			ans = append(ans, Morpheme{Form: word, Tag: "VV"})
			continue
		}
		ans = append(ans, Morpheme{Form: stripParticle(word), Tag: TagCommonNoun})
	}
	return ans, nil
}
