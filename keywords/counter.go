package keywords

// FreqCounter maps a token to its number of occurrences within one
// district's descriptions. Instances live only for the duration of a
// single analysis pass.
type FreqCounter map[string]int

func (fc FreqCounter) Add(tokens ...string) {
	for _, tok := range tokens {
		fc[tok]++
	}
}

// Update adds all counts of other into fc (Python's Counter.update).
func (fc FreqCounter) Update(other FreqCounter) {
	for tok, cnt := range other {
		fc[tok] += cnt
	}
}

// Total returns the sum of all token occurrences.
func (fc FreqCounter) Total() int {
	var ans int
	for _, cnt := range fc {
		ans += cnt
	}
	return ans
}
