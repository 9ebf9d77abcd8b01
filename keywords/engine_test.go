package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindy15963/GwangjuARDonMap/dataset"
)

// splitTokenizer stands in for the morphological tokenizer - the
// pipeline tests care about aggregation and ranking, not segmentation
type splitTokenizer struct{}

func (st splitTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

func testRecords() []dataset.Record {
	return []dataset.Record{
		{PlaceName: "한옥마을", District: "동구", Description: "한옥 정원 한옥"},
		{PlaceName: "골목길", District: "동구", Description: "정원 골목"},
		{PlaceName: "아파트단지", District: "서구", Description: "아파트 아파트 상가"},
		{PlaceName: "무명시설", District: "기타", Description: "창고 창고"},
	}
}

func TestAggregateCounterConservation(t *testing.T) {
	agg := Aggregate(testRecords(), splitTokenizer{})
	// 5 tokens in 동구, 3 in 서구, 2 in 기타
	assert.Equal(t, 5, agg.Counters["동구"].Total())
	assert.Equal(t, 3, agg.Counters["서구"].Total())
	assert.Equal(t, 2, agg.Counters["기타"].Total())
	assert.Equal(t, 2, agg.Counters["동구"]["한옥"])
	assert.Equal(t, 2, agg.Counters["동구"]["정원"])
}

func TestAggregateEmptyDistrict(t *testing.T) {
	agg := Aggregate(testRecords(), splitTokenizer{})
	assert.Empty(t, agg.Counters["광산구"])
	assert.Equal(t, 0, agg.NumRecords["광산구"])
}

func TestPooledRestExcludesTargetAndSentinel(t *testing.T) {
	agg := Aggregate(testRecords(), splitTokenizer{})
	rest := agg.PooledRest("동구")
	assert.Equal(t, 0, rest["한옥"])
	assert.Equal(t, 2, rest["아파트"])
	// sentinel bucket tokens never leak into the pool
	assert.Equal(t, 0, rest["창고"])
}

func TestAnalyzeProducesPayloadForAllBuckets(t *testing.T) {
	result, err := Analyze(
		testRecords(), splitTokenizer{}, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	assert.NoError(t, err)
	for _, d := range dataset.DistrictsWithOther {
		_, ok := result.Payload[d]
		assert.True(t, ok, "missing district %s in payload", d)
	}
	// 한옥 occurs twice in 동구 and nowhere else
	assert.NotEmpty(t, result.Payload["동구"])
	assert.Greater(t, result.Payload["동구"][0].Score, 0.0)
}

func TestAnalyzeSentinelBucketHasZeroScores(t *testing.T) {
	result, err := Analyze(
		testRecords(), splitTokenizer{}, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	assert.NoError(t, err)
	etc := result.Payload["기타"]
	assert.NotEmpty(t, etc)
	for _, entry := range etc {
		assert.Equal(t, 0.0, entry.Score)
	}
	assert.Equal(t, "창고", etc[0].Token)
	assert.Equal(t, 2, etc[0].Count)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, err := Analyze([]dataset.Record{}, splitTokenizer{}, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	assert.ErrorIs(t, err, ErrorNoRecords)
}

func TestAnalyzeSummary(t *testing.T) {
	result, err := Analyze(
		testRecords(), splitTokenizer{}, RankingOpts{Alpha: 0.01, TopN: 10, MinCount: 2})
	assert.NoError(t, err)
	assert.Equal(t, 4, result.Summary.TotalRecords)
	byDistrict := make(map[string]DistrictSummary)
	for _, ds := range result.Summary.Districts {
		byDistrict[ds.District] = ds
	}
	assert.Equal(t, 2, byDistrict["동구"].NumRecords)
	assert.Equal(t, 5, byDistrict["동구"].NumTokens)
	assert.InDelta(t, 2.5, byDistrict["동구"].MeanTokensPerRecord, 1e-9)
	// districts without a single record are reported, not dropped
	assert.Equal(t, 0, byDistrict["광산구"].NumRecords)
}

func TestBuildPayloadKeepsOrder(t *testing.T) {
	ranked := map[string][]RankedKeyword{
		"동구": {
			{Value: "한옥", Score: 2.5, CountInDistrict: 4, CountInOthers: 1},
			{Value: "정원", Score: 1.5, CountInDistrict: 3, CountInOthers: 0},
		},
	}
	payload := BuildPayload(ranked)
	assert.Equal(t, "한옥", payload["동구"][0].Token)
	assert.Equal(t, 4, payload["동구"][0].Count)
	assert.Equal(t, "정원", payload["동구"][1].Token)
}
