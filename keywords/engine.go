package keywords

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/mindy15963/GwangjuARDonMap/dataset"
)

var (
	ErrorNoRecords = errors.New("no records to analyze")
)

// DistrictSummary characterizes one district's share of the analysis.
type DistrictSummary struct {
	District             string  `json:"district"`
	NumRecords           int     `json:"numRecords"`
	NumTokens            int     `json:"numTokens"`
	MeanTokensPerRecord  float64 `json:"meanTokensPerRecord"`
	StdevTokensPerRecord float64 `json:"stdevTokensPerRecord"`
	NumKeywords          int     `json:"numKeywords"`
}

// Summary is the user-visible report of an analysis run. Degraded
// inputs (empty districts, records without usable text) show up here
// instead of aborting the batch.
type Summary struct {
	TotalRecords      int               `json:"totalRecords"`
	Districts         []DistrictSummary `json:"districts"`
	EmptyResultCount  int               `json:"emptyResultCount"`
	RankingParameters RankingOpts       `json:"rankingParameters"`
}

// AnalysisResult bundles everything one ranking pass produces.
type AnalysisResult struct {
	Payload Payload `json:"keywords"`
	Summary Summary `json:"summary"`

	// Ranked keeps the full entries (including counts in the rest
	// of the corpus) for archiving; the JSON payload above is the
	// presentation-layer view
	Ranked map[string][]RankedKeyword `json:"-"`
}

func districtSummary(agg *Aggregation, district string, numKeywords int) DistrictSummary {
	perRecord := agg.TokensPerRecord[district]
	ans := DistrictSummary{
		District:    district,
		NumRecords:  agg.NumRecords[district],
		NumTokens:   agg.Counters[district].Total(),
		NumKeywords: numKeywords,
	}
	if len(perRecord) > 0 {
		ans.MeanTokensPerRecord = stat.Mean(perRecord, nil)
	}
	if len(perRecord) > 1 {
		ans.StdevTokensPerRecord = stat.StdDev(perRecord, nil)
	}
	return ans
}

// Analyze runs the whole keyword pipeline over already loaded
// records: aggregation per district, one-vs-rest log-odds ranking for
// the proper districts, frequency ranking for the sentinel bucket and
// the payload + summary assembly. The only hard failure is an empty
// input batch.
func Analyze(records []dataset.Record, tokenizer Tokenizer, opts RankingOpts) (*AnalysisResult, error) {
	if len(records) == 0 {
		return nil, ErrorNoRecords
	}
	agg := Aggregate(records, tokenizer)
	ranked := make(map[string][]RankedKeyword, len(dataset.DistrictsWithOther))
	summary := Summary{
		TotalRecords:      len(records),
		Districts:         make([]DistrictSummary, 0, len(dataset.DistrictsWithOther)),
		RankingParameters: opts,
	}
	for _, district := range dataset.Districts {
		kws := LogOddsDirichlet(agg.Counters[district], agg.PooledRest(district), opts)
		ranked[district] = kws
		summary.Districts = append(summary.Districts, districtSummary(agg, district, len(kws)))
		if len(kws) == 0 {
			summary.EmptyResultCount++
		}
	}
	etcKws := RankByFrequency(agg.Counters[dataset.DistrictOther], opts.TopN)
	ranked[dataset.DistrictOther] = etcKws
	summary.Districts = append(
		summary.Districts, districtSummary(agg, dataset.DistrictOther, len(etcKws)))
	if len(etcKws) == 0 {
		summary.EmptyResultCount++
	}
	for _, ds := range summary.Districts {
		log.Debug().
			Str("district", ds.District).
			Int("numRecords", ds.NumRecords).
			Int("numTokens", ds.NumTokens).
			Int("numKeywords", ds.NumKeywords).
			Msg("district analyzed")
	}
	return &AnalysisResult{
		Payload: BuildPayload(ranked),
		Summary: summary,
		Ranked:  ranked,
	}, nil
}
