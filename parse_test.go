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
	"testing"
	"unicode/utf8"
)

func TestInsecureCharacters(t *testing.T) {
	const input = "Hello,\x00World\n"
	const want = "Hello,�World"

	doc := Parse(input, ParseOptions{})
	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	if got := doc.Blocks[0].BlockKind(); got != ParagraphKind {
		t.Fatalf("doc.Blocks[0].BlockKind() = %v; want %v", got, ParagraphKind)
	}
	ins := doc.Blocks[0].Inlines
	if len(ins) != 1 {
		t.Fatalf("len(doc.Blocks[0].Inlines) = %d; want 1", len(ins))
	}
	if got := ins[0].InlineKind(); got != TextKind {
		t.Fatalf("doc.Blocks[0].Inlines[0].InlineKind() = %v; want %v", got, TextKind)
	}
	if got := ins[0].Literal; got != want {
		t.Errorf("doc.Blocks[0].Inlines[0].Literal = %q; want %q", got, want)
	}
}

func FuzzParse(f *testing.F) {
	for _, test := range loadTestSuite(f, "spec-0.30.json") {
		f.Add(test.Markdown)
	}

	f.Fuzz(func(t *testing.T, markdown string) {
		if !utf8.ValidString(markdown) {
			t.Skip("Invalid UTF-8")
		}
		doc := Parse(markdown, ParseOptions{Extensions: GFMExtensions()})
		// Rendering should never panic on any parsed document.
		Render(doc, RenderOptions{})
	})
}
