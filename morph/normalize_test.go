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

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeMay18Substitution(t *testing.T) {
	ans := Normalize("5·18 민주화운동의 현장")
	assert.Contains(t, ans, "오월민주화")
	assert.NotContains(t, ans, "5·18")
}

func TestNormalizeOrdinals(t *testing.T) {
	assert.Equal(t, "국가등록문화재 로 지정", Normalize("국가등록문화재 제522호로 지정"))
	assert.Equal(t, "전시회", Normalize("제 3 회 전시회"))
}

func TestNormalizeYears(t *testing.T) {
	ans := Normalize("1963년에 지어진 건물")
	assert.NotContains(t, ans, "1963")
	assert.NotContains(t, ans, "년")
}

func TestNormalizeNumbersAndPunctuation(t *testing.T) {
	ans := Normalize("면적 1,234.5 규모! (벽돌조)")
	assert.NotContains(t, ans, "1")
	assert.NotContains(t, ans, "!")
	assert.NotContains(t, ans, "(")
	assert.Equal(t, "면적 규모 벽돌조", ans)
}

func TestNormalizeKeepsInterpunct(t *testing.T) {
	// '·' joins compound nouns and must survive
	assert.Equal(t, "동·서양 절충식", Normalize("동·서양 절충식"))
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "광장 주변", Normalize("  광장   주변  "))
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"",
		"5·18 당시 제1호 건물, 1930년대 완공 (연면적 1,234㎡)",
		"국가등록문화재 제522호로 지정된 양림동 선교사 사택",
		"동·서양 절충식! 한옥?",
		"제 12 회 비엔날레 전시관 2004년 개관",
	}
	for _, s := range samples {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input: %s", s)
	}
}
