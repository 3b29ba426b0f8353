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

func TestIsThematicBreak(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"---\n", true},
		{"***\n", true},
		{"___\n", true},
		{"+++\n", false},
		{"===\n", false},
		{"--\n", false},
		{"**\n", false},
		{"__\n", false},
		{"_____________________________________\n", true},
		{"- - -\n", true},
		{"**  * ** * ** * **\n", true},
		{"-     -      -      -\n", true},
		{"- - - -    \n", true},
		{"_ _ _ _ a\n", false},
		{"a------\n", false},
		{"---a---\n", false},
		{"*-*\n", false},
		{"    ---\n", false},
	}
	for _, test := range tests {
		if got := isThematicBreak(test.line); got != test.want {
			t.Errorf("isThematicBreak(%q) = %t; want %t", test.line, got, test.want)
		}
	}
}

func TestMatchATXHeading(t *testing.T) {
	tests := []struct {
		line        string
		wantLevel   int
		wantContent string
		wantOK      bool
	}{
		{"# foo\n", 1, "foo", true},
		{"## foo\n", 2, "foo", true},
		{"### foo\n", 3, "foo", true},
		{"###### foo\n", 6, "foo", true},
		{"####### foo\n", 0, "", false},
		{"#5 bolt\n", 0, "", false},
		{"#hashtag\n", 0, "", false},
		{"## foo ##\n", 2, "foo", true},
		{"# foo ##################################\n", 1, "foo", true},
		{"### foo ### b\n", 3, "foo ### b", true},
		{"## \n", 2, "", true},
		{"#\n", 1, "", true},
		{"### ###\n", 3, "", true},
	}
	for _, test := range tests {
		level, content, ok := matchATXHeading(test.line)
		if level != test.wantLevel || content != test.wantContent || ok != test.wantOK {
			t.Errorf("matchATXHeading(%q) = %d, %q, %t; want %d, %q, %t",
				test.line, level, content, ok, test.wantLevel, test.wantContent, test.wantOK)
		}
	}
}

func TestMatchSetextUnderline(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantOK    bool
	}{
		{"===\n", 1, true},
		{"---\n", 2, true},
		{"= =\n", 0, false},
		{"--- -\n", 0, false},
		{"\n", 0, false},
		{"    ===\n", 0, false},
	}
	for _, test := range tests {
		level, ok := matchSetextUnderline(test.line)
		if level != test.wantLevel || ok != test.wantOK {
			t.Errorf("matchSetextUnderline(%q) = %d, %t; want %d, %t", test.line, level, ok, test.wantLevel, test.wantOK)
		}
	}
}
