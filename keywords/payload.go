package keywords

import (
	"github.com/mindy15963/GwangjuARDonMap/common"
)

// KeywordEntry is the presentation-layer form of a ranked keyword.
type KeywordEntry struct {
	Token string  `json:"token"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

// Payload maps a district name to its ordered keyword list. This is
// the read-only artifact handed to the map renderer and the HTTP API.
type Payload map[string][]KeywordEntry

// TopTokens returns up to n keyword strings of a district, used for
// map marker popups.
func (p Payload) TopTokens(district string, n int) []string {
	entries := p[district]
	if len(entries) > n {
		entries = entries[:n]
	}
	return common.MapSlice(entries, func(e KeywordEntry, _ int) string {
		return e.Token
	})
}

// BuildPayload converts ranked keyword lists into the serializable
// payload. Pure structural transform, ordering is preserved.
func BuildPayload(ranked map[string][]RankedKeyword) Payload {
	ans := make(Payload, len(ranked))
	for district, kws := range ranked {
		ans[district] = common.MapSlice(kws, func(kw RankedKeyword, _ int) KeywordEntry {
			return KeywordEntry{
				Token: kw.Value,
				Count: kw.CountInDistrict,
				Score: kw.Score,
			}
		})
	}
	return ans
}
