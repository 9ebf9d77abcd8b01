package keywords

import (
	"math"
	"slices"
	"strings"
)

// epsilon guards the log-odds formula against a smoothed proportion
// of exactly 1 which would otherwise produce a division by zero
const epsilon = 1e-12

// RankedKeyword is one scored token of a district's ranking.
type RankedKeyword struct {
	Value           string  `json:"value"`
	Score           float64 `json:"score"`
	CountInDistrict int     `json:"countInDistrict"`
	CountInOthers   int     `json:"countInOthers"`
}

// RankingOpts parameterizes the one-vs-rest ranking.
type RankingOpts struct {

	// Alpha is the Dirichlet pseudo-count added to every token
	Alpha float64 `json:"alpha"`

	// TopN limits the number of returned keywords per district
	TopN int `json:"topN"`

	// MinCount suppresses tokens with fewer occurrences in the
	// target district. Occurrences in the rest are deliberately
	// not gated.
	MinCount int `json:"minCount"`
}

func cmpRanked(k1, k2 RankedKeyword) int {
	if k1.Score < k2.Score {
		return 1
	}
	if k1.Score > k2.Score {
		return -1
	}
	// secondary lexical order keeps the ranking reproducible
	// across runs despite map iteration order
	return strings.Compare(k1.Value, k2.Value)
}

// LogOddsDirichlet compares a district's token counts against the
// pooled counts of all other districts and returns the tokens most
// characteristic for the district, best first.
//
// For each token the smoothed proportions
//
//	p1 = (c1 + alpha) / (n1 + alpha*V)
//	p0 = (c0 + alpha) / (n0 + alpha*V)
//
// are turned into the empirical log-odds difference
// ln(p1/(1-p1)) - ln(p0/(1-p0)). A large positive score means the
// token occurs disproportionately often in the target district. The
// pseudo-count alpha (over the joint vocabulary of size V) keeps
// zero-count tokens from producing infinite ratios.
func LogOddsDirichlet(one, rest FreqCounter, opts RankingOpts) []RankedKeyword {
	vocab := make(map[string]bool, len(one)+len(rest))
	for tok := range one {
		vocab[tok] = true
	}
	for tok := range rest {
		vocab[tok] = true
	}
	v := float64(len(vocab))
	if v == 0 {
		v = 1
	}
	n1 := float64(one.Total())
	n0 := float64(rest.Total())

	ans := make([]RankedKeyword, 0, len(one))
	for tok := range vocab {
		c1, c0 := one[tok], rest[tok]
		if c1 < opts.MinCount {
			continue
		}
		p1 := (float64(c1) + opts.Alpha) / (n1 + opts.Alpha*v)
		p0 := (float64(c0) + opts.Alpha) / (n0 + opts.Alpha*v)
		score := math.Log(p1/(1-p1+epsilon)) - math.Log(p0/(1-p0+epsilon))
		ans = append(ans, RankedKeyword{
			Value:           tok,
			Score:           score,
			CountInDistrict: c1,
			CountInOthers:   c0,
		})
	}
	slices.SortFunc(ans, cmpRanked)
	if opts.TopN > 0 && len(ans) > opts.TopN {
		ans = ans[:opts.TopN]
	}
	return ans
}

// RankByFrequency ranks a counter by plain descending frequency with
// all scores fixed at zero. This is the policy for the sentinel
// "unclassified" bucket where a one-vs-rest comparison against the
// proper districts would not mean anything.
func RankByFrequency(fc FreqCounter, topN int) []RankedKeyword {
	ans := make([]RankedKeyword, 0, len(fc))
	for tok, cnt := range fc {
		ans = append(ans, RankedKeyword{
			Value:           tok,
			Score:           0.0,
			CountInDistrict: cnt,
		})
	}
	slices.SortFunc(ans, func(k1, k2 RankedKeyword) int {
		if k1.CountInDistrict != k2.CountInDistrict {
			return k2.CountInDistrict - k1.CountInDistrict
		}
		return strings.Compare(k1.Value, k2.Value)
	})
	if topN > 0 && len(ans) > topN {
		ans = ans[:topN]
	}
	return ans
}
