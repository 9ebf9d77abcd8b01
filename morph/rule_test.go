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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleAnalyzerStripsParticles(t *testing.T) {
	ra := NewRuleAnalyzer()
	ans, err := ra.Analyze("정원에서 한옥을 마당은")
	assert.NoError(t, err)
	assert.Equal(t, []Morpheme{
		{Form: "정원", Tag: "NNG"},
		{Form: "한옥", Tag: "NNG"},
		{Form: "마당", Tag: "NNG"},
	}, ans)
}

func TestRuleAnalyzerNeverStripsBelowTwoRunes(t *testing.T) {
	ra := NewRuleAnalyzer()
	// stripping 을 would leave a single syllable, so the word stays whole
	ans, err := ra.Analyze("물을")
	assert.NoError(t, err)
	assert.Equal(t, []Morpheme{{Form: "물을", Tag: "NNG"}}, ans)
}

func TestRuleAnalyzerTagsPredicates(t *testing.T) {
	ra := NewRuleAnalyzer()
	ans, err := ra.Analyze("건립되다 아름다운 지정했다")
	assert.NoError(t, err)
	assert.Equal(t, "VV", ans[0].Tag)
	assert.Equal(t, "VV", ans[2].Tag)
	// no recognizable predicate ending - falls through as a noun
	assert.Equal(t, TagCommonNoun, ans[1].Tag)
}

func TestRuleAnalyzerSkipsNonHangul(t *testing.T) {
	ra := NewRuleAnalyzer()
	ans, err := ra.Analyze("ACC빌딩 2025 한옥")
	assert.NoError(t, err)
	assert.Equal(t, []Morpheme{{Form: "한옥", Tag: "NNG"}}, ans)
}

func TestRuleAnalyzerKeepsInterpunctCompounds(t *testing.T) {
	ra := NewRuleAnalyzer()
	ans, err := ra.Analyze("동·서양")
	assert.NoError(t, err)
	assert.Equal(t, []Morpheme{{Form: "동·서양", Tag: "NNG"}}, ans)
}

func TestRuleAnalyzerEmptyInput(t *testing.T) {
	ra := NewRuleAnalyzer()
	ans, err := ra.Analyze("")
	assert.NoError(t, err)
	assert.Empty(t, ans)
}
