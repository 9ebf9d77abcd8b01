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

// Sejong-style POS tags as produced by Korean morphological analyzers
// (Kiwi, Mecab-ko etc.). Only the noun tags matter here.
const (
	TagCommonNoun = "NNG"
	TagProperNoun = "NNP"
)

// Morpheme is a single segmented unit with its part-of-speech tag.
type Morpheme struct {
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

func (m Morpheme) IsNoun() bool {
	return m.Tag == TagCommonNoun || m.Tag == TagProperNoun
}

// Analyzer segments a text into morphemes. Implementations may call
// an external analyzer service or fall back to built-in heuristics.
// An analysis that yields nothing is a legitimate empty result, not
// an error.
type Analyzer interface {
	Analyze(text string) ([]Morpheme, error)
}
