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
	"regexp"
	"strings"
)

// The May 18 date pattern must be rewritten to its semantic label
// before any numeric stripping, otherwise the digits are destroyed
// and the reference to the democratization movement is lost.
const (
	may18Literal = "5·18"
	may18Label   = "오월민주화"
)

var (
	// ordinal/ceremonial numbering, e.g. 제5호, 제 12 회
	reOrdinal = regexp.MustCompile(`제\s*\d+\s*(?:호|회)`)
	// 3-4 digit year mentions, e.g. 1963년
	reYear = regexp.MustCompile(`\d{3,4}\s*년`)
	// remaining integer/decimal tokens
	reNumber = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\b`)
	// punctuation; the interpunct '·' stays, it joins compound nouns
	rePunct = regexp.MustCompile(`[^\p{L}\p{N}_\s·]`)
	reSpace = regexp.MustCompile(`\s+`)
)

// Normalize strips boilerplate patterns from a description text:
// ordinal numbering, year mentions, generic numbers and punctuation,
// in this order (numeric patterns contain punctuation so they must
// go first). The result has single-space separated words with no
// leading/trailing space. Empty input produces an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ReplaceAll(text, may18Literal, may18Label)
	t = reOrdinal.ReplaceAllString(t, " ")
	t = reYear.ReplaceAllString(t, " ")
	t = reNumber.ReplaceAllString(t, " ")
	t = rePunct.ReplaceAllString(t, " ")
	t = reSpace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
