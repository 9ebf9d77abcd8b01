package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogOddsDirichletConcreteScenario(t *testing.T) {
	one := FreqCounter{"한옥": 5, "정원": 3}
	rest := FreqCounter{"한옥": 1, "아파트": 4}
	ans := LogOddsDirichlet(one, rest, RankingOpts{Alpha: 0.01, TopN: 30, MinCount: 2})

	byValue := make(map[string]RankedKeyword)
	for _, kw := range ans {
		byValue[kw.Value] = kw
	}
	garden, ok := byValue["정원"]
	assert.True(t, ok)
	assert.Greater(t, garden.Score, 0.0)
	assert.Equal(t, 3, garden.CountInDistrict)
	assert.Equal(t, 0, garden.CountInOthers)
	// zero occurrences in the target district - never a candidate here
	_, ok = byValue["아파트"]
	assert.False(t, ok)
}

func TestLogOddsDirichletTargetOnlyTokenScoresPositive(t *testing.T) {
	one := FreqCounter{"양림동": 4, "공통어": 10}
	rest := FreqCounter{"공통어": 12}
	ans := LogOddsDirichlet(one, rest, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	for _, kw := range ans {
		if kw.Value == "양림동" {
			assert.Greater(t, kw.Score, 0.0)
			return
		}
	}
	t.Fatal("expected 양림동 in the ranking")
}

func TestLogOddsDirichletEqualRatioApproachesZero(t *testing.T) {
	// same relative frequency on both sides => score must vanish
	// along with alpha
	one := FreqCounter{"마을": 2, "성당": 4}
	rest := FreqCounter{"마을": 1, "성당": 2}
	ans := LogOddsDirichlet(one, rest, RankingOpts{Alpha: 1e-6, TopN: 10, MinCount: 1})
	assert.NotEmpty(t, ans)
	for _, kw := range ans {
		assert.InDelta(t, 0.0, kw.Score, 0.001)
	}
}

func TestLogOddsDirichletOrderingAndTopN(t *testing.T) {
	one := FreqCounter{"a1": 10, "b2": 5, "c3": 3, "d4": 2}
	rest := FreqCounter{"a1": 1, "b2": 20, "c3": 3, "e5": 7}
	ans := LogOddsDirichlet(one, rest, RankingOpts{Alpha: 0.01, TopN: 3, MinCount: 2})
	assert.LessOrEqual(t, len(ans), 3)
	for i := 1; i < len(ans); i++ {
		assert.GreaterOrEqual(t, ans[i-1].Score, ans[i].Score)
	}
}

func TestLogOddsDirichletMinCountGatesTargetOnly(t *testing.T) {
	one := FreqCounter{"희귀어": 1, "빈출어": 5}
	rest := FreqCounter{"빈출어": 1}
	ans := LogOddsDirichlet(one, rest, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	for _, kw := range ans {
		assert.NotEqual(t, "희귀어", kw.Value)
	}
	// a token below min count in the *rest* is still a candidate
	assert.Equal(t, "빈출어", ans[0].Value)
}

func TestLogOddsDirichletEmptyTarget(t *testing.T) {
	ans := LogOddsDirichlet(FreqCounter{}, FreqCounter{"한옥": 3}, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	assert.Empty(t, ans)
}

func TestLogOddsDirichletBothEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		ans := LogOddsDirichlet(FreqCounter{}, FreqCounter{}, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 0})
		assert.Empty(t, ans)
	})
}

func TestRankByFrequency(t *testing.T) {
	fc := FreqCounter{"국악": 2, "사직공원": 5, "전망대": 3}
	ans := RankByFrequency(fc, 2)
	assert.Equal(t, 2, len(ans))
	assert.Equal(t, "사직공원", ans[0].Value)
	assert.Equal(t, 5, ans[0].CountInDistrict)
	assert.Equal(t, "전망대", ans[1].Value)
	for _, kw := range ans {
		assert.Equal(t, 0.0, kw.Score)
	}
}

func TestRankByFrequencyTieBreaksLexically(t *testing.T) {
	fc := FreqCounter{"나비": 2, "가로수": 2}
	ans := RankByFrequency(fc, 10)
	assert.Equal(t, "가로수", ans[0].Value)
	assert.Equal(t, "나비", ans[1].Value)
}

func TestFreqCounterTotal(t *testing.T) {
	fc := FreqCounter{}
	fc.Add("한옥", "정원", "한옥")
	assert.Equal(t, 3, fc.Total())
	assert.Equal(t, 2, fc["한옥"])

	other := FreqCounter{"정원": 2}
	fc.Update(other)
	assert.Equal(t, 5, fc.Total())
	assert.Equal(t, 3, fc["정원"])
}
