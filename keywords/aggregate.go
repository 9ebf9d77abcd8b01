package keywords

import (
	"github.com/mindy15963/GwangjuARDonMap/dataset"
	"github.com/mindy15963/GwangjuARDonMap/morph"
)

// Tokenizer is the part of morph.NounTokenizer the aggregation needs.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Aggregation groups tokenized descriptions by district. Besides the
// counters themselves it keeps per-record token counts so the summary
// report can characterize how much text each district contributes.
type Aggregation struct {
	Counters        map[string]FreqCounter
	NumRecords      map[string]int
	TokensPerRecord map[string][]float64
}

// Aggregate normalizes and tokenizes every record's description and
// builds one frequency counter per district (the sentinel bucket
// included - its special ranking policy is applied later). Districts
// without any record end up with an empty counter.
func Aggregate(records []dataset.Record, tokenizer Tokenizer) *Aggregation {
	agg := &Aggregation{
		Counters:        make(map[string]FreqCounter, len(dataset.DistrictsWithOther)),
		NumRecords:      make(map[string]int, len(dataset.DistrictsWithOther)),
		TokensPerRecord: make(map[string][]float64, len(dataset.DistrictsWithOther)),
	}
	for _, d := range dataset.DistrictsWithOther {
		agg.Counters[d] = FreqCounter{}
		agg.TokensPerRecord[d] = []float64{}
	}
	for _, rec := range records {
		district := rec.District
		if _, ok := agg.Counters[district]; !ok {
			district = dataset.DistrictOther
		}
		tokens := tokenizer.Tokenize(morph.Normalize(rec.Description))
		agg.Counters[district].Add(tokens...)
		agg.NumRecords[district]++
		agg.TokensPerRecord[district] = append(
			agg.TokensPerRecord[district], float64(len(tokens)))
	}
	return agg
}

// PooledRest sums the counters of all proper districts except the
// provided one. The sentinel bucket never contributes to the pool.
func (agg *Aggregation) PooledRest(district string) FreqCounter {
	rest := FreqCounter{}
	for _, other := range dataset.Districts {
		if other == district {
			continue
		}
		rest.Update(agg.Counters[other])
	}
	return rest
}
