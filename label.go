// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package commonmark

import (
	"strings"

	"golang.org/x/text/cases"
)

// normalizeLabel implements reference-label normalization: trim
// surrounding whitespace, collapse internal whitespace runs to a single
// space, and fold Unicode case to lower, special-casing U+1E9E (LATIN
// CAPITAL LETTER SHARP S) to "ss" the way the CommonMark reference
// implementation's case folding table does but [strings.ToLower] does
// not.
func normalizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	space := false
	started := false
	hasHigh := false
	for _, r := range label {
		switch r {
		case ' ', '\t', '\n', '\r':
			if started {
				space = true
			}
			continue
		case 'ẞ':
			if space {
				b.WriteByte(' ')
				space = false
			}
			b.WriteString("ss")
			started = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		if r >= 0x80 {
			hasHigh = true
		}
		b.WriteRune(r)
		started = true
	}
	s := b.String()
	if hasHigh {
		s = cases.Fold().String(s)
	} else {
		s = strings.ToLower(s)
	}
	return s
}
