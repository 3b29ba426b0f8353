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

import "testing"

func TestEmphasisFlanking(t *testing.T) {
	tests := []struct {
		prefix    string
		run       string
		suffix    string
		delimChar byte
		wantOpen  bool
		wantClose bool
	}{
		// Official examples for left-flanking and right-flanking runs.
		{"", "***", "abc", '*', true, false},
		{"  ", "_", "abc", '_', true, false},
		{"", "**", `"abc"`, '*', true, false},
		{" ", "_", `"abc"`, '_', true, false},
		{" abc", "***", "", '*', false, true},
		{" abc", "_", "", '_', false, true},
		{`"abc"`, "**", "", '*', false, true},
		{`"abc"`, "_", "", '_', false, true},
		{" abc", "***", "def", '*', true, true},
		{`"abc"`, "_", `"def"`, '_', true, true},
		{"abc ", "***", " def", '*', false, false},
		{"a ", "_", " b", '_', false, false},

		// Intraword underscores cannot open or close emphasis, unlike '*'.
		{"aa", "_", `"bb"`, '_', false, true},
		{`"bb"`, "_", "cc", '_', true, false},
		{"foo-", "_", "(bar)", '_', true, true},
		{"(bar)", "_", "", '_', false, true},
		{"abc", "_", "def", '_', false, false},
	}
	for _, test := range tests {
		source := test.prefix + test.run + test.suffix
		start := len(test.prefix)
		end := start + len(test.run)
		gotOpen, gotClose := emphasisFlanking(source, start, end, test.delimChar)
		if gotOpen != test.wantOpen || gotClose != test.wantClose {
			t.Errorf("emphasisFlanking(%q, %d, %d, %q) = %t, %t; want %t, %t",
				source, start, end, test.delimChar, gotOpen, gotClose, test.wantOpen, test.wantClose)
		}
	}
}

func TestStrikethroughFlanking(t *testing.T) {
	tests := []struct {
		prefix    string
		run       string
		suffix    string
		wantOpen  bool
		wantClose bool
	}{
		{"", "~~", "abc", true, false},
		{"abc", "~~", "", false, true},
		{"abc", "~~", "def", true, true},
		{"abc ", "~~", " def", false, false},
	}
	for _, test := range tests {
		source := test.prefix + test.run + test.suffix
		start := len(test.prefix)
		end := start + len(test.run)
		gotOpen, gotClose := strikethroughFlanking(source, start, end)
		if gotOpen != test.wantOpen || gotClose != test.wantClose {
			t.Errorf("strikethroughFlanking(%q, %d, %d) = %t, %t; want %t, %t",
				source, start, end, gotOpen, gotClose, test.wantOpen, test.wantClose)
		}
	}
}
