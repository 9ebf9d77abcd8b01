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

// DefaultStopwords enumerates domain boilerplate which carries no
// district-distinguishing signal: administrative names, heritage
// registration vocabulary, generic architecture terms, overly common
// predicate words and the district names themselves.
var DefaultStopwords = []string{
	"광주", "광주광역시", "대한민국", "국가", "등록", "등록문화재", "국가등록문화재",
	"유형문화재", "문화재자료", "기념물", "명승", "사적", "지정", "승격",
	"조선시대", "일제강점기", "근대", "현대", "개관", "준공", "완공", "증축", "중건",
	"복원", "보수", "이전", "신축", "리모델링",
	"건물", "건축", "건축물", "시설", "공간", "장소", "지역", "현재", "당시",
	"규모", "구성", "가치", "특징", "활용", "사용", "부문",
	"있다", "이다", "한다", "있는", "대한", "위해", "관련",
	"동구", "서구", "남구", "북구", "광산구",
}
